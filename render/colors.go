package render

import "github.com/gdamore/tcell/v2"

// RGB palette, one hue per agent kind plus the collided state
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbRoad       = tcell.NewRGBColor(70, 70, 80)    // Dim dot for empty corridor cells
	RgbWall       = tcell.NewRGBColor(128, 128, 128) // Grey
	RgbFast       = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbMobile     = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbCollided   = tcell.NewRGBColor(0, 200, 0)     // Green
	RgbCrowded    = tcell.NewRGBColor(255, 255, 0)   // Yellow, several live agents in one cell
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbHalted     = tcell.NewRGBColor(200, 50, 50)   // Red badge background
	RgbRunning    = tcell.NewRGBColor(144, 238, 144) // Light grass green badge background
	RgbBadgeText  = tcell.NewRGBColor(0, 0, 0)       // Dark text on badges
)

// Glyphs
const (
	GlyphWall     = '█'
	GlyphRoad     = '·'
	GlyphFast     = 'F'
	GlyphMobile   = 'M'
	GlyphCollided = 'X'
	GlyphMany     = '+' // more than nine agents in a cell
)
