package component

// GameState is the phase of the combat state machine.
type GameState int

const (
	StartState GameState = iota
	RunningState
	BattleState
	GameOverState
)

func (s GameState) String() string {
	switch s {
	case StartState:
		return "start"
	case RunningState:
		return "running"
	case BattleState:
		return "battle"
	case GameOverState:
		return "gameover"
	default:
		return "unknown"
	}
}
