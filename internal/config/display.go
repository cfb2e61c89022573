package config

// DisplayConfig holds settings related to board rendering.
type DisplayConfig struct {
	// Colour enables ANSI colours. It is switched off when the output is
	// not a terminal.
	Colour bool

	// Flip draws the board from Black's side.
	Flip bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour: true,
	}
}
