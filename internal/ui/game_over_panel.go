package ui

import (
	"auto-battler/internal/app"
	"auto-battler/internal/config"
	"auto-battler/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// GameOverPanel dims the frozen battlefield and lists the final stats.
type GameOverPanel struct {
	face    font.Face
	Restart *Button
}

func NewGameOverPanel(face font.Face) *GameOverPanel {
	return &GameOverPanel{
		face:    face,
		Restart: NewButton(config.ScreenWidth/2, config.ScreenHeight*3/4, 140, 32, "Restart", face),
	}
}

func (p *GameOverPanel) Draw(screen *ebiten.Image, d event.GameOverData) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	y := config.ScreenHeight / 4
	for i, line := range app.SummaryLines(d) {
		c := config.TextLightColor
		if i == 0 {
			c = config.EnemyColor
		}
		DrawCentered(screen, p.face, line, config.ScreenWidth/2, y, c)
		y += 22
	}
	p.Restart.Draw(screen)
}
