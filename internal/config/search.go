package config

import (
	"fmt"

	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/search"
)

// MaxDepth bounds the search depth accepted from the command line.
const MaxDepth = 8

// SearchConfig holds settings for the automated player.
type SearchConfig struct {
	// Depth is the search depth in plies.
	Depth int

	// Workers is the number of goroutines the root moves are split across.
	Workers int

	// Seed seeds tie-breaking between equally good moves. Zero means
	// seed from the clock.
	Seed int64
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   search.DefaultDepth,
		Workers: 1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 || s.Depth > MaxDepth {
		return fmt.Errorf("depth %d not in 1..%d: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// Options converts the configuration to searcher options.
func (s *SearchConfig) Options(logf search.Logger) []search.Option {
	opts := []search.Option{
		search.WithDepth(s.Depth),
		search.WithWorkers(s.Workers),
		search.WithLogger(logf),
	}
	if s.Seed != 0 {
		opts = append(opts, search.WithSeed(s.Seed))
	}
	return opts
}
