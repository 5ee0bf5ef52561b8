package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lanesim/core"
	"github.com/lixenwraith/lanesim/engine"
)

// CellWidth is the number of terminal columns per grid cell, keeps the road roughly square
const CellWidth = 2

// GridView paints simulation snapshots onto a terminal screen
// Grid row y=0 is drawn at the bottom, the status line sits under the grid
type GridView struct {
	screen  tcell.Screen
	originX int
	originY int
}

// NewGridView creates a view anchored at the top-left corner of screen
func NewGridView(screen tcell.Screen) *GridView {
	return &GridView{screen: screen}
}

// ScreenPos maps a grid cell to the terminal cell holding its glyph
func (v *GridView) ScreenPos(p core.Point, height int) (int, int) {
	return v.originX + p.X*CellWidth, v.originY + (height - 1 - p.Y)
}

// StatusRow is the terminal row of the status line for a grid of the given height
func (v *GridView) StatusRow(height int) int {
	return v.originY + height + 1
}

// Draw renders one full frame
func (v *GridView) Draw(snap engine.Snapshot) {
	base := tcell.StyleDefault.Background(RgbBackground)
	v.screen.Fill(' ', base)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			sx, sy := v.ScreenPos(core.Point{X: x, Y: y}, snap.Height)
			v.screen.SetContent(sx, sy, GlyphRoad, nil, base.Foreground(RgbRoad))
		}
	}

	for _, p := range snap.Obstacles {
		sx, sy := v.ScreenPos(p, snap.Height)
		style := base.Foreground(RgbWall)
		for i := 0; i < CellWidth; i++ {
			v.screen.SetContent(sx+i, sy, GlyphWall, nil, style)
		}
	}

	for p, agents := range groupByCell(snap.Agents) {
		sx, sy := v.ScreenPos(p, snap.Height)
		r, fg := agentGlyph(agents)
		v.screen.SetContent(sx, sy, r, nil, base.Foreground(fg))
	}

	v.drawStatus(snap, base)
	v.screen.Show()
}

func (v *GridView) drawStatus(snap engine.Snapshot, base tcell.Style) {
	row := v.StatusRow(snap.Height)

	text := fmt.Sprintf("step %d  moves %d  collided %d/%d  faults %d ",
		snap.Step, snap.TotalMovements, snap.Collided, snap.Active, snap.FaultMoves)
	x := v.drawText(v.originX, row, base.Foreground(RgbStatusText), text)

	badge, bg := " RUNNING ", RgbRunning
	if !snap.Running {
		badge, bg = " HALTED ", RgbHalted
	}
	v.drawText(x, row, base.Foreground(RgbBadgeText).Background(bg), badge)
}

// drawText writes ASCII text and returns the column after it
func (v *GridView) drawText(x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func groupByCell(agents []engine.AgentView) map[core.Point][]engine.AgentView {
	cells := make(map[core.Point][]engine.AgentView, len(agents))
	for _, a := range agents {
		cells[a.Position] = append(cells[a.Position], a)
	}
	return cells
}

// agentGlyph picks the symbol for one occupied cell
func agentGlyph(agents []engine.AgentView) (rune, tcell.Color) {
	collided := true
	for _, a := range agents {
		if a.State != engine.StateCollided {
			collided = false
			break
		}
	}

	if len(agents) > 1 {
		r := GlyphMany
		if len(agents) <= 9 {
			r = rune('0' + len(agents))
		}
		if collided {
			return r, RgbCollided
		}
		return r, RgbCrowded
	}

	a := agents[0]
	switch {
	case collided:
		return GlyphCollided, RgbCollided
	case a.Kind == engine.KindFast:
		return GlyphFast, RgbFast
	default:
		return GlyphMobile, RgbMobile
	}
}
