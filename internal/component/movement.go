// component/movement.go
package component

// Position is the top-left corner of an entity in screen pixels.
type Position struct {
	X, Y float64
}

// Velocity is a horizontal speed in pixels per second; negative moves left.
type Velocity struct {
	Speed float64
}

// Bounds is the size of an entity's axis-aligned box.
type Bounds struct {
	W, H float64
}

// Intersects reports strict overlap of two boxes on both axes.
// Boxes that only touch along an edge do not intersect.
func Intersects(ap Position, ab Bounds, bp Position, bb Bounds) bool {
	return ap.X < bp.X+bb.W &&
		ap.X+ab.W > bp.X &&
		ap.Y < bp.Y+bb.H &&
		ap.Y+ab.H > bp.Y
}
