// internal/system/render.go
package system

import (
	"fmt"
	"image/color"
	"math"

	"auto-battler/internal/component"
	"auto-battler/internal/config"
	"auto-battler/internal/entity"
	"auto-battler/internal/utils"
	"auto-battler/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// RenderSystem draws the ground, the two combatants with their health bars
// and the floating damage numbers.
type RenderSystem struct {
	world *entity.World
	face  font.Face
}

func NewRenderSystem(world *entity.World, face font.Face) *RenderSystem {
	return &RenderSystem{world: world, face: face}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	vector.DrawFilledRect(screen, 0, config.ScreenHeight-config.GroundHeight,
		config.ScreenWidth, config.GroundHeight, config.GroundColor, false)

	if p := s.world.Player; p != nil {
		s.drawBox(screen, p.Position, p.Bounds, p.Renderable.Color)
		drawHealthBar(screen, p.Position, p.Health)
	}
	if e := s.world.Enemy; e != nil {
		s.drawBox(screen, e.Position, e.Bounds, e.Renderable.Color)
		drawHealthBar(screen, e.Position, e.Health)
	}

	for _, ft := range s.world.FloatingTexts {
		s.drawFloatingText(screen, ft)
	}
}

func (s *RenderSystem) drawBox(screen *ebiten.Image, pos component.Position, b component.Bounds, c color.RGBA) {
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(b.W), float32(b.H), c, false)
}

func drawHealthBar(screen *ebiten.Image, pos component.Position, h component.Health) {
	x := float32(pos.X - config.HealthBarOffsetX)
	y := float32(pos.Y - config.HealthBarOffsetY)
	vector.DrawFilledRect(screen, x, y, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBackColor, false)
	fill := float32(config.HealthBarWidth * h.Ratio())
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, config.HealthBarHeight, config.HealthBarFillColor, false)
	}
}

func (s *RenderSystem) drawFloatingText(screen *ebiten.Image, ft *component.FloatingText) {
	progress := ft.Progress()
	c := config.DamageTextColor
	if ft.IsCritical {
		c = config.CriticalTextColor
	}
	c = render.FadeColor(c, 1-progress)
	rise := utils.Lerp(0, config.DamageNumberRise, float32(progress))
	label := fmt.Sprintf("%d", int(math.Floor(ft.Amount)))
	if ft.IsCritical {
		label += "!"
	}
	text.Draw(screen, label, s.face, int(ft.X), int(float32(ft.Y)-rise), c)
}
