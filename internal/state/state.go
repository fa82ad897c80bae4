// internal/state/state.go
package state

import (
	"auto-battler/internal/app"
	"auto-battler/internal/system"
	"auto-battler/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State is one screen of the window front end.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine owns the current screen.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Scene bundles the game with everything the screens draw it with.
type Scene struct {
	Game     *app.Game
	Renderer *system.RenderSystem
	HUD      *ui.HUD
	Face     font.Face
}

func NewScene(g *app.Game) *Scene {
	face := ui.DefaultFace()
	return &Scene{
		Game:     g,
		Renderer: system.NewRenderSystem(g.World, face),
		HUD:      ui.NewHUD(face),
		Face:     face,
	}
}

// DrawBattlefield draws the world and the HUD on top.
func (s *Scene) DrawBattlefield(screen *ebiten.Image) {
	s.Renderer.Draw(screen)
	s.HUD.Draw(screen, s.Game.Snapshot())
}
