package main

import (
	"flag"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "ABTRACE"

// Config is everything the driver can be told. Every field can come from a
// flag, an ABTRACE_* environment variable or the -config file, in that order
// of precedence.
type Config struct {
	Config string `mapstructure:"config"`

	// tree sources; at most one of Tree, Values and Random
	Tree      string `mapstructure:"tree"`
	Values    string `mapstructure:"values"`
	Branching int    `mapstructure:"branching"`
	Top       string `mapstructure:"top"`
	Random    bool   `mapstructure:"random"`
	Depth     int    `mapstructure:"depth"`
	Seed      uint64 `mapstructure:"seed"`

	// outputs
	Dot   string `mapstructure:"dot"`
	Gif   string `mapstructure:"gif"`
	JSON  string `mapstructure:"json"`
	Print bool   `mapstructure:"print"`

	Debug        bool `mapstructure:"debug"`
	ShallowPrune bool `mapstructure:"shallow-prune"`
	NoPrune      bool `mapstructure:"no-prune"`
	InitialFrame bool `mapstructure:"initial-frame"`
	Verify       bool `mapstructure:"verify"`
}

func flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", "", "optional config file (yaml, json or toml)")
	fs.String("tree", "", "YAML file holding the tree to search")
	fs.String("values", "", "comma separated leaf values of a complete tree")
	fs.Int("branching", 2, "branching factor of a -values or -random tree")
	fs.String("top", "max", "kind of the root of a -values tree")
	fs.Bool("random", false, "search a random tree")
	fs.Int("depth", 4, "depth of a -random tree")
	fs.Uint64("seed", 1337, "seed of a -random tree")
	fs.String("dot", "", "directory to write one DOT file per frame into")
	fs.String("gif", "", "file to write an animated GIF of the frames into")
	fs.String("json", "", "file to write the result and frames into as JSON")
	fs.Bool("print", false, "print every frame label")
	fs.Bool("debug", false, "debug logging")
	fs.Bool("shallow-prune", false, "mark only the cut off children, not their subtrees")
	fs.Bool("no-prune", false, "never cut off (plain minimax)")
	fs.Bool("initial-frame", false, "record a frame before the root is entered")
	fs.Bool("verify", false, "check the result against plain minimax")
	return fs
}

// loadConfig parses args and layers them over the environment and the
// config file.
func loadConfig(args []string, stderr io.Writer) (Config, error) {
	var conf Config
	fs := flags("abtrace")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return conf, err
	}
	if fs.NArg() > 0 {
		return conf, errors.Errorf("unexpected arguments %q", fs.Args())
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	fs.VisitAll(func(f *flag.Flag) {
		v.SetDefault(f.Name, f.DefValue)
	})
	fs.Visit(func(f *flag.Flag) {
		v.Set(f.Name, f.Value.String())
	})

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return conf, errors.Wrapf(err, "unable to read config file %q", path)
		}
	}
	if err := v.Unmarshal(&conf); err != nil {
		return conf, errors.Wrap(err, "unable to decode configuration")
	}
	return conf, conf.validate()
}

func (c Config) validate() error {
	sources := 0
	for _, set := range []bool{c.Tree != "", c.Values != "", c.Random} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("-tree, -values and -random are mutually exclusive")
	}
	if c.Random && c.Depth < 0 {
		return errors.Errorf("invalid depth %d", c.Depth)
	}
	if (c.Random || c.Values != "") && c.Branching < 1 {
		return errors.Errorf("invalid branching factor %d", c.Branching)
	}
	return nil
}
