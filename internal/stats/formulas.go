// Package stats holds the pure stat-scaling formulas for the player and enemies.
package stats

import (
	"math"

	"auto-battler/internal/defs"
)

// PlayerStats is the level-derived part of the player's stat block.
type PlayerStats struct {
	MaxHP   float64
	Attack  float64
	Defense float64
}

// EnemyStats is the full stat block of a freshly spawned enemy.
type EnemyStats struct {
	HP       float64
	Attack   float64
	XPReward int
	IsBoss   bool
}

// Formulas evaluates the scaling curves for one balance table.
type Formulas struct {
	Balance defs.Balance
}

// New binds the formulas to a balance table.
func New(b defs.Balance) Formulas {
	return Formulas{Balance: b}
}

// Default uses defs.DefaultBalance.
func Default() Formulas {
	return New(defs.DefaultBalance())
}

// PlayerStatsForLevel grows max HP, attack and defense linearly with level.
func (f Formulas) PlayerStatsForLevel(level int) PlayerStats {
	p := f.Balance.Player
	steps := float64(level - 1)
	return PlayerStats{
		MaxHP:   p.BaseHP + steps*p.HPPerLevel,
		Attack:  p.BaseAttack + steps*p.AttackPerLevel,
		Defense: steps * p.DefensePerLevel,
	}
}

// XPRequiredForLevel is the experience needed to leave the given level.
func (f Formulas) XPRequiredForLevel(level int) float64 {
	xp := f.Balance.XP
	return math.Floor(xp.Base * math.Pow(xp.Growth, float64(level-1)))
}

// PowerLevel is the enemy difficulty tier for a lifetime defeat count.
func (f Formulas) PowerLevel(enemiesDefeated int) int {
	return enemiesDefeated / f.Balance.Enemy.PowerLevelEvery
}

// IsBossKill reports whether the enemy spawned at killCount is a boss.
func (f Formulas) IsBossKill(killCount int) bool {
	return killCount > 0 && killCount%f.Balance.Enemy.BossEvery == 0
}

// EnemyStatsFor scales the enemy by lifetime defeats; bosses are keyed on the
// current run's kill count.
func (f Formulas) EnemyStatsFor(enemiesDefeated, killCount int) EnemyStats {
	e := f.Balance.Enemy
	xp := f.Balance.XP
	power := float64(f.PowerLevel(enemiesDefeated))

	hp := e.BaseHP * math.Pow(e.HPScaling, power)
	attack := e.BaseAttack * math.Pow(e.AttackScaling, power)
	reward := int(math.Floor(xp.RewardBase * math.Pow(xp.RewardGrowth, power)))

	isBoss := f.IsBossKill(killCount)
	if isBoss {
		hp *= e.BossMultiplier
		attack *= e.BossMultiplier
		reward *= xp.BossRewardFactor
	}

	return EnemyStats{
		HP:       math.Floor(hp),
		Attack:   math.Floor(attack),
		XPReward: reward,
		IsBoss:   isBoss,
	}
}

var std = Default()

// PlayerStatsForLevel evaluates the default balance.
func PlayerStatsForLevel(level int) PlayerStats { return std.PlayerStatsForLevel(level) }

// XPRequiredForLevel evaluates the default balance.
func XPRequiredForLevel(level int) float64 { return std.XPRequiredForLevel(level) }

// EnemyStatsFor evaluates the default balance.
func EnemyStatsFor(enemiesDefeated, killCount int) EnemyStats {
	return std.EnemyStatsFor(enemiesDefeated, killCount)
}
