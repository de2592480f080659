package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the perft command; deeper trees take hours.
const MaxPerftDepth = 10

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	Depth   int
	Workers int

	// Divide prints the node count below each root move
	Divide bool

	// CountUnique also counts distinct leaf positions
	CountUnique bool

	// Timeout abandons the search after this long; zero means no limit
	Timeout time.Duration
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   3,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers %d below 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.Timeout < 0 {
		return fmt.Errorf("perft timeout %v is negative: %w", p.Timeout, errors.ErrInvalidConfig)
	}
	return nil
}
