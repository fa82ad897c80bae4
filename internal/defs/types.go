// internal/defs/types.go
package defs

// PlayerScaling holds the per-level growth of the player's stats.
type PlayerScaling struct {
	BaseHP             float64 `yaml:"base_hp"`
	BaseAttack         float64 `yaml:"base_attack"`
	HPPerLevel         float64 `yaml:"hp_per_level"`
	AttackPerLevel     float64 `yaml:"attack_per_level"`
	DefensePerLevel    float64 `yaml:"defense_per_level"`
	CriticalChance     float64 `yaml:"critical_chance"`
	CriticalMultiplier float64 `yaml:"critical_multiplier"`
}

// EnemyScaling holds the enemy stat growth driven by lifetime defeats.
type EnemyScaling struct {
	BaseHP          float64 `yaml:"base_hp"`
	BaseAttack      float64 `yaml:"base_attack"`
	HPScaling       float64 `yaml:"hp_scaling"`
	AttackScaling   float64 `yaml:"attack_scaling"`
	BossMultiplier  float64 `yaml:"boss_multiplier"`
	BossEvery       int     `yaml:"boss_every"`
	PowerLevelEvery int     `yaml:"power_level_every"`
}

// XPCurve describes both the leveling curve and the enemy rewards.
type XPCurve struct {
	Base             float64 `yaml:"base"`
	Growth           float64 `yaml:"growth"`
	RewardBase       float64 `yaml:"reward_base"`
	RewardGrowth     float64 `yaml:"reward_growth"`
	BossRewardFactor int     `yaml:"boss_reward_factor"`
}

// Balance is the full stat-scaling table.
type Balance struct {
	Player PlayerScaling `yaml:"player"`
	Enemy  EnemyScaling  `yaml:"enemy"`
	XP     XPCurve       `yaml:"xp"`
}

// DefaultBalance returns the stock tuning.
func DefaultBalance() Balance {
	return Balance{
		Player: PlayerScaling{
			BaseHP:             100,
			BaseAttack:         10,
			HPPerLevel:         25,
			AttackPerLevel:     5,
			DefensePerLevel:    2,
			CriticalChance:     0.1,
			CriticalMultiplier: 2,
		},
		Enemy: EnemyScaling{
			BaseHP:          20,
			BaseAttack:      5,
			HPScaling:       1.2,
			AttackScaling:   1.15,
			BossMultiplier:  2.5,
			BossEvery:       10,
			PowerLevelEvery: 10,
		},
		XP: XPCurve{
			Base:             100,
			Growth:           1.2,
			RewardBase:       10,
			RewardGrowth:     1.1,
			BossRewardFactor: 3,
		},
	}
}
