package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects the renderer.
	Format OutputFormat

	// Color enables ANSI colours in text output
	Color bool

	// Coordinates adds file letters and rank numbers around the board
	Coordinates bool

	// SquareSize is the edge of one square in SVG output, in pixels
	SquareSize int

	// MaxLineLength is the maximum line length for PGN output
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Text,
		Coordinates:   true,
		SquareSize:    45,
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < Text || o.Format > SVG {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.SquareSize < 8 {
		return fmt.Errorf("square size %d below 8: %w", o.SquareSize, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d below 20: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
