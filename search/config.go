package search

import "github.com/rs/zerolog"

// Config configures a Searcher.
type Config struct {
	// PruneSubtrees marks every node below a cut off sibling as pruned, one
	// frame each. When false only the cut off siblings themselves are marked.
	PruneSubtrees bool

	// DisablePruning turns the search into a plain minimax that still records
	// frames. No node is ever pruned.
	DisablePruning bool

	// InitialFrame records a frame with no current node before the root is entered.
	InitialFrame bool
}

func DefaultConfig() Config {
	return Config{
		PruneSubtrees: true,
	}
}

type Option func(s *Searcher)

func WithConfig(conf Config) Option {
	return func(s *Searcher) {
		s.Config = conf
	}
}

// WithRecorder sets the collaborator that receives frames. Without one no
// frame is ever captured.
func WithRecorder(r Recorder) Option {
	return func(s *Searcher) {
		s.rec = r
	}
}

// WithFrames records every frame into a fresh Frames, returned by Run.
func WithFrames() Option {
	return func(s *Searcher) {
		s.rec = new(Frames)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Searcher) {
		s.log = logger
	}
}
