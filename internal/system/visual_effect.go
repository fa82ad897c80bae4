// internal/system/visual_effect.go
package system

import (
	"fmt"

	"auto-battler/internal/component"
	"auto-battler/internal/config"
	"auto-battler/internal/entity"
	"auto-battler/internal/event"
)

// VisualEffectSystem turns damage and level-up events into short-lived
// floating numbers and banners, and ages them each tick.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem subscribes the system to DamageDealt and LevelUp.
func NewVisualEffectSystem(world *entity.World, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{world: world}
	eventDispatcher.SubscribeAll(s, event.DamageDealt, event.LevelUp)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.DamageData:
		s.world.FloatingTexts = append(s.world.FloatingTexts, &component.FloatingText{
			X:          data.X,
			Y:          data.Y - config.DamageNumberRise,
			Amount:     data.Amount,
			IsCritical: data.IsCritical,
			Duration:   config.DamageNumberDuration,
		})
	case event.LevelUpData:
		s.world.Banners = append(s.world.Banners, &component.Banner{
			Text:     fmt.Sprintf("Level Up! %d", data.NewLevel),
			Duration: config.LevelUpBannerTime,
		})
	}
}

// Update advances effect timers and drops expired effects.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	texts := s.world.FloatingTexts[:0]
	for _, ft := range s.world.FloatingTexts {
		ft.Timer += deltaTime
		if ft.Timer < ft.Duration {
			texts = append(texts, ft)
		}
	}
	s.world.FloatingTexts = texts

	banners := s.world.Banners[:0]
	for _, b := range s.world.Banners {
		b.Timer += deltaTime
		if b.Timer < b.Duration {
			banners = append(banners, b)
		}
	}
	s.world.Banners = banners
}
