package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/lanesim/core"
	"github.com/lixenwraith/lanesim/parameter"
)

// LayoutKind selects how the initial roster is built
type LayoutKind string

const (
	// LayoutClassic is the fixed four-agent setup; agent counts in Config are ignored
	LayoutClassic LayoutKind = "classic"

	// LayoutSpread places InitialAgents mobile and FastAgents fast agents row by row
	LayoutSpread LayoutKind = "spread"
)

// ParseLayout accepts a layout name, case-insensitive
func ParseLayout(name string) (LayoutKind, error) {
	switch k := LayoutKind(strings.ToLower(strings.TrimSpace(name))); k {
	case LayoutClassic, LayoutSpread:
		return k, nil
	case "":
		return LayoutClassic, nil
	default:
		return "", fmt.Errorf("layout %q: %w", name, ErrUnknownLayout)
	}
}

type placement struct {
	kind Kind
	pos  core.Point
}

// classicAgents is the fixed starting row, in creation order
var classicAgents = []placement{
	{KindFast, core.Point{X: 2, Y: 0}},
	{KindMobile, core.Point{X: 4, Y: 0}},
	{KindFast, core.Point{X: 5, Y: 0}},
	{KindMobile, core.Point{X: 3, Y: 0}},
}

// wallCells lists both walls column by column, the order ids are assigned in
func wallCells(height int) []core.Point {
	cells := make([]core.Point, 0, 4*height)
	for x := 0; x < parameter.LeftWallEnd; x++ {
		for y := 0; y < height; y++ {
			cells = append(cells, core.Point{X: x, Y: y})
		}
	}
	for x := parameter.RightWallStart; x < parameter.RightWallEnd; x++ {
		for y := 0; y < height; y++ {
			cells = append(cells, core.Point{X: x, Y: y})
		}
	}
	return cells
}

// buildLayout returns the agent placements for cfg, walls excluded
func buildLayout(cfg Config) ([]placement, error) {
	switch cfg.Layout {
	case LayoutClassic, "":
		return classicAgents, nil
	case LayoutSpread:
		return spreadAgents(cfg)
	default:
		return nil, fmt.Errorf("layout %q: %w", cfg.Layout, ErrUnknownLayout)
	}
}

// spreadAgents fills the corridor left to right, bottom row first, fast agents first
func spreadAgents(cfg Config) ([]placement, error) {
	lanes := parameter.RightWallStart - parameter.LeftWallEnd
	total := cfg.FastAgents + cfg.InitialAgents
	if total > lanes*cfg.Height {
		return nil, fmt.Errorf("%d agents in %d cells: %w", total, lanes*cfg.Height, ErrLayoutFull)
	}

	out := make([]placement, 0, total)
	for i := 0; i < total; i++ {
		kind := KindMobile
		if i < cfg.FastAgents {
			kind = KindFast
		}
		out = append(out, placement{
			kind: kind,
			pos:  core.Point{X: parameter.LeftWallEnd + i%lanes, Y: i / lanes},
		})
	}
	return out, nil
}
