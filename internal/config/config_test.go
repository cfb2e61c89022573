package config

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	chesserrors "github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/game"
	"github.com/lgbarn/termchess-go/internal/search"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Mode != game.HumanVsEngineBlack {
		t.Errorf("Mode = %v, want %v", cfg.Mode, game.HumanVsEngineBlack)
	}
	if cfg.Verbosity != Silent {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Silent)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.Search.Depth != 2 {
		t.Errorf("Search.Depth = %d, want 2", cfg.Search.Depth)
	}
	if cfg.Search.Workers != 1 {
		t.Errorf("Search.Workers = %d, want 1", cfg.Search.Workers)
	}
	if cfg.Search.Seed != 0 {
		t.Errorf("Search.Seed = %d, want 0", cfg.Search.Seed)
	}
	if !cfg.Display.Colour {
		t.Error("Display.Colour should be true by default")
	}
	if cfg.Display.Flip {
		t.Error("Display.Flip should be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "deepest allowed depth",
			modify:  func(c *Config) { c.Search.Depth = MaxDepth },
			wantErr: false,
		},
		{
			name:    "zero depth",
			modify:  func(c *Config) { c.Search.Depth = 0 },
			wantErr: true,
		},
		{
			name:    "depth too large",
			modify:  func(c *Config) { c.Search.Depth = MaxDepth + 1 },
			wantErr: true,
		},
		{
			name:    "no workers",
			modify:  func(c *Config) { c.Search.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "unknown mode",
			modify:  func(c *Config) { c.Mode = game.Mode(9) },
			wantErr: true,
		},
		{
			name:    "verbosity out of range",
			modify:  func(c *Config) { c.Verbosity = 3 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestParseMode verifies mode names and the error for unknown ones
func TestParseMode(t *testing.T) {
	m, err := ParseMode("hw")
	if err != nil {
		t.Fatalf("ParseMode(hw) error = %v", err)
	}
	if m != game.HumanVsEngineWhite {
		t.Errorf("ParseMode(hw) = %v, want %v", m, game.HumanVsEngineWhite)
	}

	_, err = ParseMode("bw")
	if !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("ParseMode(bw) error = %v, want ErrInvalidConfig", err)
	}
}

// TestConfig_Logf verifies log lines are gated by verbosity
func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogFile = &buf
	cfg.Verbosity = MoveLog

	cfg.Logf(MoveLog, "ply %d", 1)
	cfg.Logf(SearchInfo, "nodes %d", 99)
	cfg.Logger(MoveLog)("ply %d", 2)

	want := "ply 1\nply 2\n"
	if got := buf.String(); got != want {
		t.Errorf("log = %q, want %q", got, want)
	}

	cfg.LogFile = nil
	cfg.Logf(Silent, "dropped") // must not panic
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestSearchConfig_Options verifies the searcher built from the config
func TestSearchConfig_Options(t *testing.T) {
	sc := &SearchConfig{Depth: 3, Workers: 2, Seed: 7}
	var lines []string
	s := search.New(sc.Options(func(format string, args ...interface{}) {
		lines = append(lines, format)
	})...)

	if s.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", s.Depth())
	}
	if _, err := s.Search(context.Background(), chess.NewGameState(), 1); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(lines) != 1 {
		t.Errorf("logged %d lines, want 1", len(lines))
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out, log strings.Builder
	cfg := NewConfigBuilder().
		WithMode(game.HumanVsHuman).
		WithDepth(3).
		WithWorkers(4).
		WithSeed(42).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithColour(false).
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(SearchInfo).
		Build()

	if cfg.Mode != game.HumanVsHuman {
		t.Errorf("Mode = %v, want hh", cfg.Mode)
	}
	if cfg.Search.Depth != 3 || cfg.Search.Workers != 4 || cfg.Search.Seed != 42 {
		t.Errorf("Search = %+v, want depth 3, workers 4, seed 42", *cfg.Search)
	}
	if cfg.StartFEN == "" {
		t.Error("StartFEN should be set")
	}
	if cfg.Display.Colour {
		t.Error("Display.Colour should be false")
	}
	if cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("output streams not set")
	}
	if cfg.Verbosity != SearchInfo {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, SearchInfo)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("built config should be valid: %v", err)
	}
}
