// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PlayerLevelIndicator shows the level and the progress towards the next one.
type PlayerLevelIndicator struct {
	X, Y float32
	face font.Face
}

const (
	xpBarWidth  = 118
	xpBarHeight = 12
	borderWidth = 1
)

var (
	xpBarColorFill = color.RGBA{70, 100, 120, 220}
	borderColor    = color.White
)

func NewPlayerLevelIndicator(x, y float32, face font.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, face: face}
}

// FillRatio is currentXP/xpToNext clamped to [0, 1].
func FillRatio(currentXP, xpToNext int) float64 {
	if xpToNext <= 0 {
		return 0
	}
	r := float64(currentXP) / float64(xpToNext)
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}

func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * FillRatio(currentXP, xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, xpBarColorFill, true)
	}

	label := fmt.Sprintf("Lv %d", level)
	text.Draw(screen, label, i.face, int(i.X)+xpBarWidth+8, int(i.Y)+xpBarHeight-1, borderColor)
}
