package main

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/lanesim/config"
	"github.com/lixenwraith/lanesim/engine"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestParseFlags_OnlySetFlagsOverride(t *testing.T) {
	opts, err := parseFlags([]string{"-seed", "42", "-layout", "spread", "-fault", "0"}, io.Discard)
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	cfg := config.Default()
	cfg.Run.Steps = 33
	opts.apply(cfg)

	if cfg.Run.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Run.Seed)
	}
	if cfg.Agents.Layout != "spread" {
		t.Errorf("Expected layout spread, got %q", cfg.Agents.Layout)
	}
	if cfg.Agents.FaultRate != 0 {
		t.Errorf("Expected explicit zero fault rate, got %f", cfg.Agents.FaultRate)
	}
	if cfg.Run.Steps != 33 {
		t.Errorf("Expected unset -steps to keep 33, got %d", cfg.Run.Steps)
	}
}

func TestParseFlags_Rejects(t *testing.T) {
	if _, err := parseFlags([]string{"-steps", "many"}, io.Discard); err == nil {
		t.Error("Expected error for non-numeric -steps")
	}
}

func TestRun_ReportsSeries(t *testing.T) {
	cfg := config.Default()
	cfg.Run.Seed = 11
	cfg.Run.Steps = 25

	var out bytes.Buffer
	if err := run(context.Background(), cfg, quietLogger(), &out); err != nil {
		t.Fatalf("Unexpected run error: %v", err)
	}

	// Replay the same seed directly to know the expected total
	sim, err := engine.New(engine.DefaultConfig(), engine.NewSource(11))
	if err != nil {
		t.Fatalf("Failed to build reference simulation: %v", err)
	}
	sim.Run(context.Background(), 25)

	text := out.String()
	if !strings.HasPrefix(text, "seed 11  steps ") {
		t.Errorf("Expected header line, got %q", text)
	}
	want := "total movements: " + strconv.Itoa(sim.TotalMovements())
	if !strings.Contains(text, want) {
		t.Errorf("Expected %q in report, got %q", want, text)
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	// header, column titles, one line per step, total
	if got, want := len(lines), 3+sim.StepCount(); got != want {
		t.Errorf("Expected %d report lines, got %d", want, got)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	cfg := config.Default()
	cfg.Run.Seed = 5
	cfg.Run.Steps = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := run(ctx, cfg, quietLogger(), &out); err != nil {
		t.Fatalf("Unexpected run error: %v", err)
	}
	if !strings.Contains(out.String(), "steps 0 ") {
		t.Errorf("Expected no steps after cancellation, got %q", out.String())
	}
}

func TestDrive_PublishesEveryStep(t *testing.T) {
	sim, err := engine.New(engine.DefaultConfig(), engine.NewSource(3))
	if err != nil {
		t.Fatalf("Failed to build simulation: %v", err)
	}

	var steps []int
	drive(context.Background(), sim, 10, time.Millisecond, []sink{func(s engine.Snapshot) {
		steps = append(steps, s.Step)
	}})

	if len(steps) != sim.StepCount()+1 {
		t.Fatalf("Expected %d snapshots, got %d", sim.StepCount()+1, len(steps))
	}
	for i, s := range steps {
		if s != i {
			t.Errorf("Expected snapshot %d to carry step %d, got %d", i, i, s)
		}
	}
}

func TestRun_WithFeed(t *testing.T) {
	cfg := config.Default()
	cfg.Run.Seed = 9
	cfg.Run.Steps = 5
	cfg.Run.Interval = config.Duration{Duration: time.Millisecond}
	cfg.Feed.Addr = "127.0.0.1:0"

	var out bytes.Buffer
	if err := run(context.Background(), cfg, quietLogger(), &out); err != nil {
		t.Fatalf("Unexpected run error: %v", err)
	}
	if !strings.Contains(out.String(), "total movements: ") {
		t.Errorf("Expected report after feed run, got %q", out.String())
	}
}
