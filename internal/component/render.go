// component/render.go
package component

import "image/color"

// Renderable is how an entity's box is filled.
type Renderable struct {
	Color color.RGBA
}
