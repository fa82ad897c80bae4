// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadBalance reads a YAML balance file on top of DefaultBalance.
// Keys missing from the file keep their default values.
func LoadBalance(path string) (Balance, error) {
	b := DefaultBalance()
	file, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("failed to read balance file: %w", err)
	}
	if err := yaml.Unmarshal(file, &b); err != nil {
		return DefaultBalance(), fmt.Errorf("failed to unmarshal balance file: %w", err)
	}
	if err := b.Validate(); err != nil {
		return DefaultBalance(), err
	}

	log.Printf("Loaded balance from %s", path)
	return b, nil
}

// Validate rejects tables the formulas cannot work with.
func (b Balance) Validate() error {
	switch {
	case b.Player.BaseHP <= 0:
		return fmt.Errorf("invalid balance: player.base_hp must be positive")
	case b.Player.CriticalChance < 0 || b.Player.CriticalChance > 1:
		return fmt.Errorf("invalid balance: player.critical_chance must be in [0,1]")
	case b.Player.CriticalMultiplier < 1:
		return fmt.Errorf("invalid balance: player.critical_multiplier must be >= 1")
	case b.Enemy.BossEvery <= 0 || b.Enemy.PowerLevelEvery <= 0:
		return fmt.Errorf("invalid balance: enemy.boss_every and enemy.power_level_every must be positive")
	case b.XP.Base < 1 || b.XP.Growth <= 1:
		return fmt.Errorf("invalid balance: xp.base must be >= 1 and xp.growth > 1")
	}
	return nil
}
