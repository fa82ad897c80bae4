// internal/state/game_over_state.go
package state

import (
	"auto-battler/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState shows the frozen battlefield under the final stats.
type GameOverState struct {
	sm    *StateMachine
	scene *Scene
	panel *ui.GameOverPanel
}

func NewGameOverState(sm *StateMachine, scene *Scene) *GameOverState {
	return &GameOverState{sm: sm, scene: scene, panel: ui.NewGameOverPanel(scene.Face)}
}

func (g *GameOverState) Enter() {}

func (g *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || g.panel.Restart.IsClicked() {
		g.sm.SetState(NewPlayState(g.sm, g.scene))
	}
}

func (g *GameOverState) Draw(screen *ebiten.Image) {
	g.scene.DrawBattlefield(screen)
	g.panel.Draw(screen, g.scene.Game.Summary())
}

func (g *GameOverState) Exit() {}
