package engine

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/lanesim/core"
)

// Grid is a dense 2D cell space where any number of entities may share a cell
// Cells are stored row-major (index = y*Width + x); each axis wraps independently
type Grid struct {
	Width  int
	Height int
	WrapX  bool
	WrapY  bool

	cells     [][]core.Entity
	positions map[core.Entity]core.Point
}

// NewGrid creates an empty grid, both axes toroidal unless disabled
func NewGrid(width, height int, wrapX, wrapY bool) *Grid {
	return &Grid{
		Width:     width,
		Height:    height,
		WrapX:     wrapX,
		WrapY:     wrapY,
		cells:     make([][]core.Entity, width*height),
		positions: make(map[core.Entity]core.Point),
	}
}

// Normalize folds p onto the grid along wrapping axes
// Returns false if p lies outside a non-wrapping axis
func (g *Grid) Normalize(p core.Point) (core.Point, bool) {
	if g.WrapX {
		p.X = core.Wrap(p.X, g.Width)
	}
	if g.WrapY {
		p.Y = core.Wrap(p.Y, g.Height)
	}
	if p.X < 0 || p.X >= g.Width || p.Y < 0 || p.Y >= g.Height {
		return p, false
	}
	return p, true
}

// InBounds reports whether p addresses a cell after wrapping
func (g *Grid) InBounds(p core.Point) bool {
	_, ok := g.Normalize(p)
	return ok
}

// Place inserts e at p
func (g *Grid) Place(e core.Entity, p core.Point) error {
	if _, ok := g.positions[e]; ok {
		return fmt.Errorf("place entity %d: %w", e, ErrAlreadyPlaced)
	}
	np, ok := g.Normalize(p)
	if !ok {
		return fmt.Errorf("place entity %d at %s: %w", e, p, ErrOutOfBounds)
	}
	g.insert(e, np)
	return nil
}

// Move relocates e to p without checking what already occupies p
func (g *Grid) Move(e core.Entity, p core.Point) error {
	old, placed := g.positions[e]
	if !placed {
		return fmt.Errorf("move entity %d: %w", e, ErrNotPlaced)
	}
	np, ok := g.Normalize(p)
	if !ok {
		return fmt.Errorf("move entity %d to %s: %w", e, p, ErrOutOfBounds)
	}
	g.remove(e, old)
	g.insert(e, np)
	return nil
}

// ContentsAt returns a copy of the entities at p, nil if none
func (g *Grid) ContentsAt(p core.Point) []core.Entity {
	cell := g.cell(p)
	if len(cell) == 0 {
		return nil
	}
	return slices.Clone(cell)
}

// CountAt returns the number of entities at p
func (g *Grid) CountAt(p core.Point) int {
	return len(g.cell(p))
}

// PositionOf returns the cell holding e
func (g *Grid) PositionOf(e core.Entity) (core.Point, bool) {
	p, ok := g.positions[e]
	return p, ok
}

// cell returns the live slice at p, callers must not retain it
func (g *Grid) cell(p core.Point) []core.Entity {
	np, ok := g.Normalize(p)
	if !ok {
		return nil
	}
	return g.cells[np.Y*g.Width+np.X]
}

func (g *Grid) insert(e core.Entity, p core.Point) {
	idx := p.Y*g.Width + p.X
	g.cells[idx] = append(g.cells[idx], e)
	g.positions[e] = p
}

// remove uses swap-remove, cell order is not preserved
func (g *Grid) remove(e core.Entity, p core.Point) {
	idx := p.Y*g.Width + p.X
	cell := g.cells[idx]
	for i, other := range cell {
		if other == e {
			last := len(cell) - 1
			cell[i] = cell[last]
			cell[last] = 0
			g.cells[idx] = cell[:last]
			break
		}
	}
	delete(g.positions, e)
}
