package component

// Enemy holds the reward data fixed when the enemy spawns.
type Enemy struct {
	XPReward       int
	IsBoss         bool
	SpawnKillCount int // kill count of the run when this enemy spawned
}
