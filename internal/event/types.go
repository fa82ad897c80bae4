// internal/event/types.go
package event

const (
	DamageDealt   EventType = "DamageDealt"
	LevelUp       EventType = "LevelUp"
	EnemyKilled   EventType = "EnemyKilled"
	EnemySpawned  EventType = "EnemySpawned"
	BattleStarted EventType = "BattleStarted"
	GameOver      EventType = "GameOver"
	RunStarted    EventType = "RunStarted"
)

// DamageData is the payload of DamageDealt; X, Y is where the number appears.
type DamageData struct {
	X, Y       float64
	Amount     float64
	IsCritical bool
	ToPlayer   bool
}

// LevelUpData is the payload of LevelUp.
type LevelUpData struct {
	NewLevel int
}

// EnemyKilledData is the payload of EnemyKilled.
type EnemyKilledData struct {
	XPReward int
	IsBoss   bool
}

// EnemySpawnedData is the payload of EnemySpawned.
type EnemySpawnedData struct {
	IsBoss bool
	HP     float64
}

// GameOverData is the payload of GameOver.
type GameOverData struct {
	Level           int
	Kills           int
	MaxLevel        int
	EnemiesDefeated int
}
