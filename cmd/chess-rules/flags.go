// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"io"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// cliFlags holds the flags shared by every subcommand.
type cliFlags struct {
	// Position
	fen     *string
	pgnFile *string
	pgnGame *int

	// Output options
	outputFile *string
	format     *string
	color      *bool
	noCoords   *bool
	squareSize *int
	lineLength *int

	// Logging
	logLevel *string

	// Perft
	depth   *int
	workers *int
	divide  *bool
	unique  *bool
	timeout *time.Duration
}

// newFlagSet registers the flags for a subcommand. Parse errors are
// returned, not fatal.
func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *cliFlags) {
	defaults := config.NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &cliFlags{
		fen:        fs.String("fen", defaults.StartFEN, "Start position in FEN"),
		pgnFile:    fs.String("pgn", "", "Start from a game in this PGN file"),
		pgnGame:    fs.Int("game", defaults.PGNGame, "Which game of the -pgn file to replay"),
		outputFile: fs.String("o", "", "Output file (default: stdout)"),
		format:     fs.String("format", defaults.Output.Format.String(), "Output format: text, json, svg"),
		color:      fs.Bool("color", false, "Colour the text board"),
		noCoords:   fs.Bool("nocoords", false, "Don't draw file and rank labels"),
		squareSize: fs.Int("square", defaults.Output.SquareSize, "SVG square size in pixels"),
		lineLength: fs.Int("w", defaults.Output.MaxLineLength, "Maximum PGN line length"),
		logLevel:   fs.String("log-level", defaults.LogLevel, "Log level: trace, debug, info, warn, error, disabled"),
		depth:      fs.Int("depth", defaults.Perft.Depth, "Perft depth"),
		workers:    fs.Int("workers", defaults.Perft.Workers, "Perft worker goroutines"),
		divide:     fs.Bool("divide", false, "Print perft counts per root move"),
		unique:     fs.Bool("unique", false, "Also count distinct perft leaf positions"),
		timeout:    fs.Duration("timeout", defaults.Perft.Timeout, "Abandon perft after this long (0 for no limit)"),
	}
	return fs, f
}

// buildConfig turns parsed flags into a validated configuration writing to
// stdout and stderr.
func buildConfig(f *cliFlags, stdout, stderr io.Writer) (*config.Config, error) {
	format, err := config.ParseOutputFormat(*f.format)
	if err != nil {
		return nil, err
	}

	cfg := config.NewConfigBuilder().
		WithStartFEN(*f.fen).
		WithPGN(*f.pgnFile, *f.pgnGame).
		WithLogLevel(*f.logLevel).
		WithOutputFormat(format).
		WithColor(*f.color).
		WithCoordinates(!*f.noCoords).
		WithSquareSize(*f.squareSize).
		WithMaxLineLength(*f.lineLength).
		WithPerftDepth(*f.depth).
		WithWorkers(*f.workers).
		WithDivide(*f.divide).
		WithUniqueLeaves(*f.unique).
		WithPerftTimeout(*f.timeout).
		WithOutput(stdout).
		WithLogOutput(stderr).
		Build()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
