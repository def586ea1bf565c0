package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type config struct {
	Language   string `env:"BGAMMON_LANG"`
	Seed       uint64 `env:"BGAMMON_SEED"`
	White      string `env:"BGAMMON_WHITE"`
	Black      string `env:"BGAMMON_BLACK"`
	Debug      bool   `env:"BGAMMON_DEBUG"`
	Statistics bool
}

// loadConfig reads the environment and then applies command-line flags,
// which take precedence.
func loadConfig(args []string) (*config, error) {
	c := &config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("bgammon", flag.ContinueOnError)
	fs.StringVar(&c.Language, "lang", c.Language, "Interface language (en, es)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Dice seed (0 for a random seed)")
	fs.StringVar(&c.White, "white", c.White, "Name of the White player (prompted when empty)")
	fs.StringVar(&c.Black, "black", c.Black, "Name of the Black player (prompted when empty)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Print debug information")
	fs.BoolVar(&c.Statistics, "statistics", false, "Print dice roll statistics and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}
