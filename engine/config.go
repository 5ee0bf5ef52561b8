package engine

import (
	"fmt"

	"github.com/lixenwraith/lanesim/parameter"
)

// Config is the construction input of a Simulation
type Config struct {
	Width  int
	Height int

	// InitialAgents and FastAgents are only honoured by LayoutSpread
	InitialAgents int
	FastAgents    int

	FaultRate float64
	WrapX     bool
	WrapY     bool
	Layout    LayoutKind
}

// DefaultConfig is the classic 8x20 road with a 10% fault rate
func DefaultConfig() Config {
	return Config{
		Width:         parameter.DefaultGridWidth,
		Height:        parameter.DefaultGridHeight,
		InitialAgents: 2,
		FastAgents:    2,
		FaultRate:     parameter.DefaultFaultRate,
		WrapX:         true,
		WrapY:         true,
		Layout:        LayoutClassic,
	}
}

// Validate checks dimensions, fault rate and layout name
func (c Config) Validate() error {
	if c.Width < parameter.MinLayoutWidth || c.Height < 1 {
		return fmt.Errorf("%dx%d (need width >= %d, height >= 1): %w",
			c.Width, c.Height, parameter.MinLayoutWidth, ErrInvalidDimensions)
	}
	if c.FaultRate < 0 || c.FaultRate > 1 {
		return fmt.Errorf("fault rate %v: %w", c.FaultRate, ErrInvalidFaultRate)
	}
	if c.InitialAgents < 0 || c.FastAgents < 0 {
		return fmt.Errorf("negative agent count %d/%d: %w", c.InitialAgents, c.FastAgents, ErrLayoutFull)
	}
	if _, err := ParseLayout(string(c.Layout)); err != nil {
		return err
	}
	return nil
}
