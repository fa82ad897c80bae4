package ui

import (
	"fmt"

	"auto-battler/internal/app"
	"auto-battler/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD is the text strip along the top of the screen.
type HUD struct {
	face  font.Face
	level *PlayerLevelIndicator
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		face:  face,
		level: NewPlayerLevelIndicator(10, 28, face),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	text.Draw(screen, s.StatusLine(), h.face, 10, 18, config.TextLightColor)
	h.level.Draw(screen, s.Level, s.XP, s.XPToNextLevel)

	best := fmt.Sprintf("Best Lv %d  Best Kills %d  Defeated %d", s.Progress.MaxLevel, s.Progress.MaxKills, s.Progress.EnemiesDefeated)
	text.Draw(screen, best, h.face, config.ScreenWidth-TextWidth(h.face, best)-10, 18, config.TextLightColor)

	for i, b := range s.Banners {
		DrawCentered(screen, h.face, b.Text, config.ScreenWidth/2, config.ScreenHeight/3+i*18, config.LevelUpTextColor)
	}
}
