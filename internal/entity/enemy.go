package entity

import (
	"auto-battler/internal/component"
	"auto-battler/internal/config"
	"auto-battler/internal/stats"
)

// Enemy walks left at a fixed speed. Its stat block is fixed at spawn; only
// Health changes afterwards.
type Enemy struct {
	Position   component.Position
	Bounds     component.Bounds
	Velocity   component.Velocity
	Health     component.Health
	Attack     float64
	Info       component.Enemy
	Renderable component.Renderable
}

// NewEnemy spawns an enemy at the right screen edge. killCount decides boss
// status, enemiesDefeated the power level.
func NewEnemy(killCount, enemiesDefeated int, f stats.Formulas) *Enemy {
	s := f.EnemyStatsFor(enemiesDefeated, killCount)
	bounds := component.Bounds{W: config.EnemyWidth, H: config.EnemyHeight}
	color := config.EnemyColor
	if s.IsBoss {
		bounds = component.Bounds{W: config.BossWidth, H: config.BossHeight}
		color = config.BossColor
	}
	return &Enemy{
		Position: component.Position{
			X: config.ScreenWidth,
			Y: config.ScreenHeight - bounds.H - config.GroundHeight,
		},
		Bounds:   bounds,
		Velocity: component.Velocity{Speed: -config.EnemySpeed},
		Health:   component.Health{Value: s.HP, Max: s.HP},
		Attack:   s.Attack,
		Info: component.Enemy{
			XPReward:       s.XPReward,
			IsBoss:         s.IsBoss,
			SpawnKillCount: killCount,
		},
		Renderable: component.Renderable{Color: color},
	}
}

// Move translates the enemy horizontally.
func (e *Enemy) Move(deltaX float64) {
	e.Position.X += deltaX
}

// TakeHit subtracts damage without clamping.
func (e *Enemy) TakeHit(damage float64) {
	e.Health.Value -= damage
}

// Defeated reports whether hp is at or below zero.
func (e *Enemy) Defeated() bool {
	return e.Health.Value <= 0
}

// OffScreen reports whether the enemy has fully left through the left edge.
func (e *Enemy) OffScreen() bool {
	return e.Position.X+e.Bounds.W < 0
}
