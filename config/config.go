// Package config loads the lanesim run configuration from TOML
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/lanesim/engine"
	"github.com/lixenwraith/lanesim/parameter"
)

// DefaultPath is looked up in the working directory when no -config flag is given
const DefaultPath = "lanesim.toml"

// File mirrors the TOML document
type File struct {
	Grid   GridSection   `toml:"grid"`
	Agents AgentsSection `toml:"agents"`
	Run    RunSection    `toml:"run"`
	Feed   FeedSection   `toml:"feed"`
	View   ViewSection   `toml:"view"`
	Log    LogSection    `toml:"log"`
}

type GridSection struct {
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	WrapX  bool `toml:"wrap_x"`
	WrapY  bool `toml:"wrap_y"`
}

type AgentsSection struct {
	Layout    string  `toml:"layout"`
	Initial   int     `toml:"initial"`
	Fast      int     `toml:"fast"`
	FaultRate float64 `toml:"fault_rate"`
}

type RunSection struct {
	// Seed 0 picks a time-based seed
	Seed  uint64 `toml:"seed"`
	Steps int    `toml:"steps"`
	// Interval paces steps when the view or feed is active
	Interval Duration `toml:"interval"`
}

type FeedSection struct {
	// Addr empty disables the feed
	Addr string `toml:"addr"`
}

type ViewSection struct {
	Enabled bool `toml:"enabled"`
	Sound   bool `toml:"sound"`
}

type LogSection struct {
	Debug bool `toml:"debug"`
}

// Duration decodes TOML strings like "250ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the classic run: 8x20 torus, four agents, 100 steps
func Default() *File {
	ec := engine.DefaultConfig()
	return &File{
		Grid: GridSection{
			Width:  ec.Width,
			Height: ec.Height,
			WrapX:  ec.WrapX,
			WrapY:  ec.WrapY,
		},
		Agents: AgentsSection{
			Layout:    string(ec.Layout),
			Initial:   ec.InitialAgents,
			Fast:      ec.FastAgents,
			FaultRate: ec.FaultRate,
		},
		Run: RunSection{
			Steps:    parameter.DefaultStepBudget,
			Interval: Duration{parameter.StepInterval},
		},
	}
}

// Load reads path over the defaults
// A missing file is not an error, the defaults are returned with found=false
func Load(path string) (cfg *File, found bool, err error) {
	cfg = Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), false, nil
		}
		return nil, true, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, true, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, true, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, true, nil
}

// Validate checks the engine section and run settings
func (f *File) Validate() error {
	ec, err := f.Engine()
	if err != nil {
		return err
	}
	if err := ec.Validate(); err != nil {
		return err
	}
	if f.Run.Steps < 0 {
		return fmt.Errorf("run.steps %d must not be negative", f.Run.Steps)
	}
	if f.Run.Interval.Duration < 0 {
		return fmt.Errorf("run.interval %s must not be negative", f.Run.Interval)
	}
	return nil
}

// Engine converts the file into the simulation construction input
func (f *File) Engine() (engine.Config, error) {
	layout, err := engine.ParseLayout(f.Agents.Layout)
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		Width:         f.Grid.Width,
		Height:        f.Grid.Height,
		InitialAgents: f.Agents.Initial,
		FastAgents:    f.Agents.Fast,
		FaultRate:     f.Agents.FaultRate,
		WrapX:         f.Grid.WrapX,
		WrapY:         f.Grid.WrapY,
		Layout:        layout,
	}, nil
}

// WriteDefault creates path with the default configuration unless it already exists
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(Default()); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	return nil
}
