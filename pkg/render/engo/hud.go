// pkg/render/engo/hud.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-merlin/pkg/entity"
	"github.com/opd-ai/go-merlin/pkg/render"
)

const (
	hudMargin     = 10
	hudLineHeight = 22
	// maxHUDRows covers the telemetry rows plus the pause banner.
	maxHUDRows = 13

	hudPanelWidth  = 280
	hudPanelHeight = maxHUDRows*hudLineHeight + 2*hudMargin
)

var (
	hudColor     = color.Black
	warningColor = color.RGBA{255, 0, 0, 255}
)

// HUDSystem manages the heads-up display: a backdrop panel and one text
// entity per telemetry row.
type HUDSystem struct {
	font  *common.Font
	panel *spriteEntity
	rows  []*spriteEntity
}

// NewHUDSystem creates the HUD entities and adds them to rs.
func NewHUDSystem(rs *common.RenderSystem, font *common.Font, panel common.Drawable) *HUDSystem {
	hud := &HUDSystem{font: font}

	if panel != nil {
		p := &spriteEntity{BasicEntity: ecs.NewBasic()}
		p.RenderComponent = common.RenderComponent{Drawable: panel, Color: color.White}
		p.SetShader(common.HUDShader)
		p.SetZIndex(9)
		p.SpaceComponent = common.SpaceComponent{
			Position: engo.Point{X: hudMargin / 2, Y: hudMargin / 2},
			Width:    hudPanelWidth,
			Height:   hudPanelHeight,
		}
		rs.Add(&p.BasicEntity, &p.RenderComponent, &p.SpaceComponent)
		hud.panel = p
	}

	for row := 0; row < maxHUDRows; row++ {
		e := &spriteEntity{BasicEntity: ecs.NewBasic()}
		e.RenderComponent = common.RenderComponent{
			Drawable: common.Text{Font: font, Text: " "},
			Color:    hudColor,
			Hidden:   true,
		}
		e.SetShader(common.TextHUDShader)
		e.SetZIndex(10)
		e.SpaceComponent = common.SpaceComponent{Position: rowPosition(row)}
		rs.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
		hud.rows = append(hud.rows, e)
	}
	return hud
}

// Show replaces the displayed telemetry.
func (hud *HUDSystem) Show(t entity.Telemetry) {
	lines := render.TelemetryLines(t)
	for row, e := range hud.rows {
		if row >= len(lines) || lines[row].Text == "" {
			e.Hidden = true
			continue
		}
		e.Hidden = false
		e.Drawable = common.Text{Font: hud.font, Text: lines[row].Text}
		e.Color = rowColor(lines[row])
	}
}

func rowPosition(row int) engo.Point {
	return engo.Point{X: hudMargin, Y: float32(hudMargin + row*hudLineHeight)}
}

func rowColor(l render.Line) color.Color {
	if l.Warning {
		return warningColor
	}
	return hudColor
}
