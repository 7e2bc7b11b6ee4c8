package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/divergentflow/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   capture API base URL
//	-e string   environment name
//	-m string   default neuro mode (typical|divergent)
//	-d string   local preferences database path
//	-l string   log level (debug|info|warn|error)
//
// Only these flags are parsed (see flagx.FilterArgs). Panics on bad input.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], "a", "e", "m", "d", "l")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "capture API base URL")
	fs.StringVar(&cfg.Environment, "e", cfg.Environment, "environment name")
	fs.StringVar(&cfg.NeuroMode, "m", cfg.NeuroMode, "default neuro mode (typical|divergent)")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local preferences database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if cfg.NeuroMode != "typical" && cfg.NeuroMode != "divergent" {
		panic(fmt.Sprintf("invalid neuro mode %q", cfg.NeuroMode))
	}
}
