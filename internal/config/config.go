// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how boards and move lists are rendered.
type OutputFormat int

const (
	Text OutputFormat = iota // ASCII board, optionally coloured
	JSON                     // machine readable snapshot
	SVG                      // board diagram
)

var formatNames = []string{"text", "json", "svg"}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range formatNames {
		if name == s {
			return OutputFormat(i), nil
		}
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	// StartFEN is the position commands start from.
	StartFEN string

	// PGNFile names a PGN file whose game PGNGame (1-based) is replayed
	// before any moves given on the command line. It overrides StartFEN.
	PGNFile string
	PGNGame int

	// LogLevel is a zerolog level name: trace, debug, info, warn, error or disabled.
	LogLevel string

	Output *OutputConfig
	Perft  *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		StartFEN:   engine.InitialFEN,
		PGNGame:    1,
		LogLevel:   "warn",
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Level returns the parsed log level.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	return level, nil
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	if c.PGNGame < 1 {
		return fmt.Errorf("game number %d: %w", c.PGNGame, errors.ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output writer: %w", errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
