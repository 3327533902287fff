// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-merlin/pkg/entity"
)

// SkyColor is the window background.
var SkyColor = color.RGBA{11, 156, 209, 255}

// spriteEntity is anything drawn by the render system.
type spriteEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements entity.Renderer using the Engo game engine. The
// render system draws the entities every frame, so Clear and Present only
// maintain them.
type EngoRenderer struct {
	renderSystem *common.RenderSystem
	hud          *HUDSystem

	player   *spriteEntity
	playerID entity.ID
}

// NewEngoRenderer creates a renderer adding its entities to rs.
func NewEngoRenderer(rs *common.RenderSystem, hud *HUDSystem) *EngoRenderer {
	return &EngoRenderer{renderSystem: rs, hud: hud}
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	if r.player != nil {
		r.player.Hidden = true
	}
}

// RenderPlayer implements entity.Renderer
func (r *EngoRenderer) RenderPlayer(player *entity.Player) {
	if player == nil || !player.Active {
		return
	}
	if r.player == nil || r.playerID != player.GetID() {
		r.createPlayerEntity(player)
	}
	if r.player == nil {
		return
	}

	r.player.Hidden = false
	r.player.Rotation = Degrees(player.Rotation)
	r.player.SetCenter(engo.Point{X: float32(player.Position.X), Y: float32(player.Position.Y)})
}

// RenderTelemetry implements entity.Renderer
func (r *EngoRenderer) RenderTelemetry(t entity.Telemetry) {
	if r.hud != nil {
		r.hud.Show(t)
	}
}

// Present implements entity.Renderer
func (r *EngoRenderer) Present() {}

func (r *EngoRenderer) createPlayerEntity(player *entity.Player) {
	if r.player != nil {
		r.renderSystem.Remove(r.player.BasicEntity)
		r.player = nil
	}
	drawable, ok := player.Sprite.(common.Drawable)
	if !ok {
		return
	}

	e := &spriteEntity{BasicEntity: ecs.NewBasic()}
	e.RenderComponent = common.RenderComponent{
		Drawable: drawable,
		Color:    color.White,
	}
	e.SetZIndex(1)
	e.SpaceComponent = common.SpaceComponent{
		Width:  drawable.Width(),
		Height: drawable.Height(),
	}
	r.renderSystem.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)

	r.player = e
	r.playerID = player.GetID()
}

// Degrees converts a heading in radians to engo's clockwise degrees.
func Degrees(rad float64) float32 {
	return float32(rad * 180 / math.Pi)
}
