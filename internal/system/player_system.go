// internal/system/player_system.go
package system

import (
	"auto-battler/internal/entity"
	"auto-battler/internal/event"
)

// PlayerSystem turns kills into experience and level-ups.
type PlayerSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	levels          entity.LevelRecorder
}

// NewPlayerSystem subscribes the system to EnemyKilled.
func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher, levels entity.LevelRecorder) *PlayerSystem {
	s := &PlayerSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		levels:          levels,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok || s.world.Player == nil {
		return
	}

	player := s.world.Player
	player.GrantXP(float64(data.XPReward))
	for _, level := range player.ResolveLevelUps(s.levels) {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.LevelUp,
			Data: event.LevelUpData{NewLevel: level},
		})
	}
}
