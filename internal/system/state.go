// internal/system/state.go
package system

import (
	"auto-battler/internal/component"
	"auto-battler/internal/entity"
	"auto-battler/internal/event"
)

// StateSystem owns the phase transitions of the combat state machine.
type StateSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Current() component.GameState {
	return s.world.GameState
}

// SwitchToRunningState resumes the walk, either at run start or after a kill.
func (s *StateSystem) SwitchToRunningState() {
	s.world.GameState = component.RunningState
}

func (s *StateSystem) SwitchToBattleState() {
	s.world.GameState = component.BattleState
	s.eventDispatcher.Dispatch(event.Event{Type: event.BattleStarted})
}

// SwitchToGameOverState is terminal until the next run is started.
func (s *StateSystem) SwitchToGameOverState(data event.GameOverData) {
	s.world.GameState = component.GameOverState
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: data})
}
