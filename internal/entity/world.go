package entity

import "auto-battler/internal/component"

// World is everything one run simulates: the player, the single active enemy,
// the phase and the transient visual effects.
type World struct {
	GameTime      float64
	GameState     component.GameState
	Player        *Player
	Enemy         *Enemy
	FloatingTexts []*component.FloatingText
	Banners       []*component.Banner
}

// NewWorld creates an empty world in the start phase.
func NewWorld() *World {
	return &World{GameState: component.StartState}
}

// Reset swaps in fresh entities and clears effects from the previous run.
func (w *World) Reset(p *Player, e *Enemy) {
	w.GameTime = 0
	w.Player = p
	w.Enemy = e
	w.FloatingTexts = nil
	w.Banners = nil
}
