// chess-rules validates moves, plays games and counts move trees.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// command is one subcommand. args are the positional arguments left after
// flag parsing.
type command struct {
	name    string
	summary string
	run     func(ctx context.Context, e *env, args []string) error
}

var commands = []command{
	{"play", "Play moves from the arguments or stdin and print the game", runPlay},
	{"moves", "Show a position and its legal moves", runMoves},
	{"fen", "Print the normalised FEN, after any moves given", runFEN},
	{"perft", "Count the leaves of the legal move tree", runPerft},
	{"pgn", "Replay the games in PGN files and report any that are invalid", runPGN},
}

// env is what a subcommand runs with.
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	stdin  io.Reader
	out    io.Writer
	render output.Renderer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "chess-rules version %s\n", programVersion)
		return exitOK
	}

	cmd, ok := findCommand(args[0])
	if !ok {
		fmt.Fprintf(stderr, "Unknown command %q\n\n", args[0])
		usage(stderr)
		return exitUsage
	}

	fs, f := newFlagSet(cmd.name, stderr)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := buildConfig(f, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	closeOutput, err := setupOutputFile(cfg, *f.outputFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	e := &env{
		cfg:    cfg,
		log:    newLogger(cfg).With().Str("command", cmd.name).Logger(),
		stdin:  stdin,
		out:    cfg.OutputFile,
		render: output.NewRenderer(cfg.Output),
	}
	err = cmd.run(ctx, e, fs.Args())
	if cerr := closeOutput(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// newLogger writes human readable logs to cfg.LogFile. cfg must be valid.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, _ := cfg.Level()
	w := zerolog.ConsoleWriter{
		Out:        cfg.LogFile,
		NoColor:    !cfg.Output.Color,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// setupOutputFile points cfg at the -o file, if any. The returned function
// closes it.
func setupOutputFile(cfg *config.Config, path string) (func() error, error) {
	if path == "" {
		return func() error { return nil }, nil
	}
	file, err := os.Create(path) //nolint:gosec // G304: path comes from the user
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", path, err)
	}
	cfg.SetOutput(file)
	return file.Close, nil
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: chess-rules <command> [options] [moves...]\n\n")
	fmt.Fprintf(w, "Chess move validation, game play and perft from the command line.\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-6s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nMoves may be SAN (Nf3, exd5, e8=Q, O-O) or coordinates (g1f3, e7e8n).\n")
	fmt.Fprintf(w, "The play command also accepts undo, redo and reset.\n")
	fmt.Fprintf(w, "The pgn command takes PGN file names instead of moves.\n")
	fmt.Fprintf(w, "\nOptions:\n")
	fs, _ := newFlagSet("chess-rules", w)
	fs.PrintDefaults()
}
