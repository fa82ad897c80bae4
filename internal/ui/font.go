// internal/ui/font.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the bitmap face every widget uses.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// TextWidth measures s in pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// DrawCentered draws s horizontally centered on cx with its baseline at y.
func DrawCentered(screen *ebiten.Image, face font.Face, s string, cx, y int, c color.Color) {
	text.Draw(screen, s, face, cx-TextWidth(face, s)/2, y, c)
}
