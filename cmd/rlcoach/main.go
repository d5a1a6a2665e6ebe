// Command rlcoach is a thin CLI wrapper around the rlcoach library: it
// parses a single replay file, writes the validated JSON report, and
// optionally renders a Markdown dossier from the same JSON shape.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	appName    = "rlcoach"
	appVersion = "v0.1.0"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
