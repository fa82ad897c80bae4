package entity

import (
	"math"

	"auto-battler/internal/component"
	"auto-battler/internal/config"
	"auto-battler/internal/progress"
	"auto-battler/internal/stats"
)

// Random is the uniform [0,1) source behind critical hits.
type Random interface {
	Float64() float64
}

// LevelRecorder receives every level the player reaches.
type LevelRecorder interface {
	RecordLevel(level int)
}

// AttackRoll is the outcome of one player attack.
type AttackRoll struct {
	Damage     float64
	IsCritical bool
}

// Player is the auto-battling hero. It owns its stat block exclusively.
type Player struct {
	Position   component.Position
	Bounds     component.Bounds
	Health     component.Health
	Combat     component.Combat
	State      component.PlayerStateComponent
	Renderable component.Renderable

	formulas stats.Formulas
	rng      Random
}

// NewPlayer starts at the best level reached so far and carries over the best
// kill count.
func NewPlayer(p progress.GlobalProgress, f stats.Formulas, rng Random) *Player {
	level := p.MaxLevel
	if level < 1 {
		level = 1
	}
	pl := &Player{
		Position: component.Position{
			X: config.PlayerX,
			Y: config.ScreenHeight - config.PlayerHeight - config.GroundHeight,
		},
		Bounds:     component.Bounds{W: config.PlayerWidth, H: config.PlayerHeight},
		Renderable: component.Renderable{Color: config.PlayerColor},
		State: component.PlayerStateComponent{
			Level: level,
			Kills: p.MaxKills,
		},
		Combat: component.Combat{
			CriticalChance:     f.Balance.Player.CriticalChance,
			CriticalMultiplier: f.Balance.Player.CriticalMultiplier,
		},
		formulas: f,
		rng:      rng,
	}
	pl.applyLevelStats()
	pl.State.XPToNextLevel = f.XPRequiredForLevel(level)
	return pl
}

// applyLevelStats recomputes the level-derived stats and fully heals.
func (p *Player) applyLevelStats() {
	s := p.formulas.PlayerStatsForLevel(p.State.Level)
	p.Health = component.Health{Value: s.MaxHP, Max: s.MaxHP}
	p.Combat.Attack = s.Attack
	p.Combat.Defense = s.Defense
}

// RollAttackDamage deals the attack stat, multiplied on a critical hit.
func (p *Player) RollAttackDamage() AttackRoll {
	roll := AttackRoll{Damage: p.Combat.Attack}
	if p.rng.Float64() < p.Combat.CriticalChance {
		roll.Damage *= p.Combat.CriticalMultiplier
		roll.IsCritical = true
	}
	return roll
}

// ApplyDamage lowers hp, never below zero.
func (p *Player) ApplyDamage(amount float64) {
	p.Health.Value = math.Max(0, p.Health.Value-amount)
}

// Dead reports whether hp has run out.
func (p *Player) Dead() bool {
	return p.Health.Value <= 0
}

// GrantXP adds experience; call ResolveLevelUps afterwards.
func (p *Player) GrantXP(amount float64) {
	p.State.XP += amount
}

// ResolveLevelUps spends accumulated XP on as many levels as it covers and
// returns each level reached, in order. Every level-up is reported to rec.
func (p *Player) ResolveLevelUps(rec LevelRecorder) []int {
	var reached []int
	for p.State.XP >= p.State.XPToNextLevel {
		p.State.XP -= p.State.XPToNextLevel
		p.State.Level++
		p.applyLevelStats()
		p.State.XPToNextLevel = p.formulas.XPRequiredForLevel(p.State.Level)
		rec.RecordLevel(p.State.Level)
		reached = append(reached, p.State.Level)
	}
	return reached
}

// Center is the middle of the player's box.
func (p *Player) Center() (float64, float64) {
	return p.Position.X + p.Bounds.W/2, p.Position.Y + p.Bounds.H/2
}
