// Package terminal draws the flight scene on a character grid and reads
// keyboard input through tcell.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-merlin/pkg/entity"
	"github.com/opd-ai/go-merlin/pkg/render"
)

var (
	skyStyle     = tcell.StyleDefault.Background(tcell.NewRGBColor(11, 156, 209)).Foreground(tcell.ColorWhite)
	hudStyle     = skyStyle.Foreground(tcell.ColorBlack)
	warningStyle = skyStyle.Foreground(tcell.ColorRed).Bold(true)
	planeStyle   = skyStyle.Foreground(tcell.ColorYellow).Bold(true)
)

// headingGlyphs are indexed by compass octant, clockwise from north.
var headingGlyphs = [8]rune{'^', '/', '>', '\\', 'v', '/', '<', '\\'}

// Renderer implements entity.Renderer on a tcell screen. World coordinates
// are scaled from the world viewport onto the screen's cell grid.
type Renderer struct {
	screen tcell.Screen
	world  entity.Viewport
}

// NewRenderer creates a renderer drawing the given world extent onto screen.
func NewRenderer(screen tcell.Screen, world entity.Viewport) *Renderer {
	return &Renderer{screen: screen, world: world}
}

// Clear fills the screen with the sky colour.
func (r *Renderer) Clear() {
	r.screen.SetStyle(skyStyle)
	r.screen.Clear()
}

// RenderPlayer draws the aircraft as a glyph pointing along its heading.
func (r *Renderer) RenderPlayer(player *entity.Player) {
	if player == nil || !player.Active {
		return
	}
	x, y, ok := r.worldToScreen(player.Position.X, player.Position.Y)
	if !ok {
		return
	}
	r.screen.SetContent(x, y, HeadingGlyph(player.Rotation), nil, planeStyle)
}

// RenderTelemetry draws the HUD rows in the top-left corner.
func (r *Renderer) RenderTelemetry(t entity.Telemetry) {
	for row, line := range render.TelemetryLines(t) {
		style := hudStyle
		if line.Warning {
			style = warningStyle
		}
		r.drawText(1, row, line.Text, style)
	}
}

// Present flushes the frame to the terminal.
func (r *Renderer) Present() {
	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// worldToScreen maps a world position to a cell. It reports false when the
// position falls outside the grid.
func (r *Renderer) worldToScreen(wx, wy float64) (int, int, bool) {
	cols, rows := r.screen.Size()
	w, h := r.world.Size()
	if cols <= 0 || rows <= 0 || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	x := int(wx / w * float64(cols))
	y := int(wy / h * float64(rows))
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return 0, 0, false
	}
	return x, y, true
}

// HeadingGlyph picks the character closest to a heading in radians, where 0
// points up the screen and angles grow clockwise.
func HeadingGlyph(rotation float64) rune {
	a := math.Mod(rotation, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	octant := int(math.Round(a/(math.Pi/4))) % len(headingGlyphs)
	return headingGlyphs[octant]
}
