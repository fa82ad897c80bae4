package component

// Health tracks hit points. Value may dip below zero for enemies until the
// defeat check runs.
type Health struct {
	Value float64
	Max   float64
}

// Ratio is Value/Max clamped to [0, 1], for health bars.
func (h Health) Ratio() float64 {
	if h.Max <= 0 || h.Value <= 0 {
		return 0
	}
	if h.Value >= h.Max {
		return 1
	}
	return h.Value / h.Max
}

// Combat holds the offensive and defensive stats of an entity.
type Combat struct {
	Attack             float64
	Defense            float64
	CriticalChance     float64
	CriticalMultiplier float64
}
