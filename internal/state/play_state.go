// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayState drives the simulation until the player dies.
type PlayState struct {
	sm    *StateMachine
	scene *Scene
}

func NewPlayState(sm *StateMachine, scene *Scene) *PlayState {
	return &PlayState{sm: sm, scene: scene}
}

// Enter starts a fresh run unless one is already in progress.
func (p *PlayState) Enter() {
	if !p.scene.Game.Running() {
		p.scene.Game.Start()
	}
}

func (p *PlayState) Update(deltaTime float64) {
	p.scene.Game.Update(deltaTime)
	if !p.scene.Game.Running() {
		p.sm.SetState(NewGameOverState(p.sm, p.scene))
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.scene.DrawBattlefield(screen)
}

func (p *PlayState) Exit() {}
