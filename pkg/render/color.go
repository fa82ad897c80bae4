// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor scales a premultiplied color by alpha in [0, 1].
func FadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// HealthColor shades from green at full health to red when nearly dead.
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return color.RGBA{0, 255, 0, 255}
	case ratio > 0.25:
		return color.RGBA{255, 215, 0, 255}
	default:
		return color.RGBA{255, 0, 0, 255}
	}
}
