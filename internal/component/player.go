// internal/component/player.go
package component

// PlayerStateComponent holds the player's progression within a run.
type PlayerStateComponent struct {
	Level         int
	XP            float64
	XPToNextLevel float64
	Kills         int
}
