package logging

import (
	"io"
	"log/slog"

	"github.com/kortschak/utter"
	"github.com/urfave/cli/v2"
)

var Flags = []cli.Flag{
	&cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "Set logging level more verbose to include info level logs",
		Value:       false,
		Destination: &Opts.Verbose,
	},

	&cli.BoolFlag{
		Name:        "veryverbose",
		Aliases:     []string{"vv"},
		Usage:       "Set logging level more verbose to include debug level logs",
		Destination: &Opts.VeryVerbose,
	},

	&cli.BoolFlag{
		Name:        "log-json",
		Usage:       "Emit logs as JSON",
		Destination: &Opts.JSON,
	},
}

var Opts struct {
	Verbose     bool
	VeryVerbose bool
	JSON        bool
}

// Level returns the level selected by the flags.
func Level() slog.Level {
	switch {
	case Opts.VeryVerbose:
		return slog.LevelDebug
	case Opts.Verbose:
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

func SetupWriter(w io.Writer) {
	logLevel := new(slog.LevelVar)
	logLevel.Set(Level())

	opts := &slog.HandlerOptions{Level: logLevel}
	var h slog.Handler
	if Opts.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(h))
}

var (
	Default = slog.Default
	Info    = slog.Info
	Warn    = slog.Warn
)

// Fdump writes a detailed dump of v to w.
func Fdump(w io.Writer, v any) {
	utter.Fdump(w, v)
}
