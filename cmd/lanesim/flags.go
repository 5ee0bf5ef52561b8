package main

import (
	"flag"
	"io"
	"time"

	"github.com/lixenwraith/lanesim/config"
)

// options holds parsed flags; only flags the user set override the config file
type options struct {
	configPath string
	writeConf  bool

	seed     uint64
	steps    int
	fault    float64
	layout   string
	view     bool
	sound    bool
	feed     string
	interval time.Duration
	debug    bool

	set map[string]bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	o := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("lanesim", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.configPath, "config", config.DefaultPath, "TOML configuration file")
	fs.BoolVar(&o.writeConf, "write-config", false, "Write the default configuration to -config and exit")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed, 0 picks one from the clock")
	fs.IntVar(&o.steps, "steps", 0, "Step budget, 0 runs until halted")
	fs.Float64Var(&o.fault, "fault", 0, "Fault rate of lane agents in [0,1]")
	fs.StringVar(&o.layout, "layout", "", "Initial layout: classic or spread")
	fs.BoolVar(&o.view, "view", false, "Draw every step in the terminal")
	fs.BoolVar(&o.sound, "sound", false, "Play audio cues on collision, fault and halt")
	fs.StringVar(&o.feed, "feed", "", "Serve the websocket state feed on this address")
	fs.DurationVar(&o.interval, "interval", 0, "Delay between steps when the view or feed is active")
	fs.BoolVar(&o.debug, "debug", false, "Write debug logs to "+logDir+"/"+logFileName)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply copies explicitly set flags over the file values
func (o *options) apply(f *config.File) {
	if o.set["seed"] {
		f.Run.Seed = o.seed
	}
	if o.set["steps"] {
		f.Run.Steps = o.steps
	}
	if o.set["fault"] {
		f.Agents.FaultRate = o.fault
	}
	if o.set["layout"] {
		f.Agents.Layout = o.layout
	}
	if o.set["view"] {
		f.View.Enabled = o.view
	}
	if o.set["sound"] {
		f.View.Sound = o.sound
	}
	if o.set["feed"] {
		f.Feed.Addr = o.feed
	}
	if o.set["interval"] {
		f.Run.Interval = config.Duration{Duration: o.interval}
	}
	if o.set["debug"] {
		f.Log.Debug = o.debug
	}
}
