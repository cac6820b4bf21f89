// Command abtrace runs an instrumented alpha-beta search over a game tree and
// writes out every frame of it.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorgonia/abtrace/encoding/dot"
	"github.com/gorgonia/abtrace/encoding/gif"
	"github.com/gorgonia/abtrace/encoding/jsonframes"
	"github.com/gorgonia/abtrace/search"
	"github.com/gorgonia/abtrace/tree"
	"github.com/gorgonia/abtrace/tree/treefile"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

const (
	gifHeight = 2000
	gifWidth  = 2000
)

func main() {
	conf, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(conf.Debug)
	if err := run(conf, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("abtrace")
	}
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Debug().Msg("Debug logging is on")
}

func run(conf Config, stdout io.Writer) error {
	root, err := buildTree(conf)
	if err != nil {
		return err
	}
	t, err := tree.New(root)
	if err != nil {
		return err
	}
	log.Info().Int("nodes", t.Len()).Str("root", t.Name(t.Root())).Msg("tree loaded")

	sc := search.DefaultConfig()
	sc.PruneSubtrees = !conf.ShallowPrune
	sc.DisablePruning = conf.NoPrune
	sc.InitialFrame = conf.InitialFrame
	res := search.Run(t,
		search.WithConfig(sc),
		search.WithFrames(),
		search.WithLogger(log.Logger),
	)

	if conf.Verify {
		if want := search.Minimax(t, t.Root()); want != res.Value {
			return errors.Errorf("alpha-beta found %v, minimax found %v", res.Value, want)
		}
		log.Info().Msg("result agrees with plain minimax")
	}

	if conf.Print {
		for i, f := range res.Frames {
			fmt.Fprintf(stdout, "%4d %s\n", i, f)
		}
	}
	pruned := lo.Map(res.State.WithStatus(search.Pruned), func(id tree.ID, _ int) string { return t.Name(id) })
	fmt.Fprintf(stdout, "value: %s\n", search.FormatValue(res.Value))
	fmt.Fprintf(stdout, "frames: %d\n", len(res.Frames))
	fmt.Fprintf(stdout, "pruned: %s\n", strings.Join(pruned, " "))
	fmt.Fprintf(stdout, "stats: %+v\n", res.Stats)

	return writeOutputs(conf, t, res)
}

func writeOutputs(conf Config, t *tree.Tree, res search.Result) error {
	if conf.Dot != "" {
		if err := dot.WriteAll(conf.Dot, t, res.Frames); err != nil {
			return err
		}
		log.Info().Str("dir", conf.Dot).Int("frames", len(res.Frames)).Msg("wrote dot files")
	}
	if conf.Gif != "" {
		if err := writeFile(conf.Gif, func(w io.Writer) error {
			return gif.EncodeAll(w, res.Frames, gifHeight, gifWidth)
		}); err != nil {
			return err
		}
		log.Info().Str("file", conf.Gif).Msg("wrote gif")
	}
	if conf.JSON != "" {
		if err := writeFile(conf.JSON, func(w io.Writer) error {
			return jsonframes.Write(w, t, res)
		}); err != nil {
			return err
		}
		log.Info().Str("file", conf.JSON).Msg("wrote json")
	}
	return nil
}

func writeFile(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create %q", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "unable to close %q", path)
		}
	}()
	return errors.WithMessagef(fn(f), "writing %q", path)
}

func buildTree(conf Config) (*tree.Node, error) {
	switch {
	case conf.Tree != "":
		return treefile.Load(conf.Tree)
	case conf.Values != "":
		values, err := parseValues(conf.Values)
		if err != nil {
			return nil, err
		}
		top, err := tree.ParseKind(conf.Top)
		if err != nil {
			return nil, err
		}
		return tree.FromValues(top, conf.Branching, values)
	case conf.Random:
		rng := rand.New(rand.NewSource(conf.Seed))
		return tree.Random(rng, conf.Depth, conf.Branching, -9, 9), nil
	}
	return tree.Sample(), nil
}

func parseValues(s string) ([]float32, error) {
	fields := lo.Compact(lo.Map(strings.Split(s, ","), func(f string, _ int) string {
		return strings.TrimSpace(f)
	}))
	retVal := make([]float32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid leaf value %q", f)
		}
		retVal = append(retVal, float32(v))
	}
	if len(retVal) == 0 {
		return nil, errors.Errorf("no leaf values in %q", s)
	}
	return retVal, nil
}
