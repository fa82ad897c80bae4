// internal/system/movement.go
package system

import "auto-battler/internal/entity"

// MovementSystem walks the active enemy towards the player.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update(deltaTime float64) {
	if e := s.world.Enemy; e != nil {
		e.Move(e.Velocity.Speed * deltaTime)
	}
}
