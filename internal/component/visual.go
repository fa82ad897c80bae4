// internal/component/visual.go
package component

// FloatingText is a transient damage number drifting up from a hit.
type FloatingText struct {
	X, Y       float64
	Amount     float64
	IsCritical bool
	Timer      float64 // seconds the effect has been alive
	Duration   float64
}

// Progress is how far through its lifetime the effect is, in [0, 1].
func (f *FloatingText) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	p := f.Timer / f.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Banner is a transient centered message such as "Level Up! 4".
type Banner struct {
	Text     string
	Timer    float64
	Duration float64
}
