// internal/state/menu_state.go
package state

import (
	"auto-battler/internal/config"
	"auto-battler/internal/ui"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState is the start screen.
type MenuState struct {
	sm    *StateMachine
	scene *Scene
	start *ui.Button
}

func NewMenuState(sm *StateMachine, scene *Scene) *MenuState {
	return &MenuState{
		sm:    sm,
		scene: scene,
		start: ui.NewButton(config.ScreenWidth/2, config.ScreenHeight*2/3, 140, 32, "Start", scene.Face),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || m.start.IsClicked() {
		m.sm.SetState(NewPlayState(m.sm, m.scene))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	p := m.scene.Game.Progress.Get()
	face := m.scene.Face
	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, face, "AUTO BATTLER", cx, config.ScreenHeight/4, config.TextLightColor)
	ui.DrawCentered(screen, face, fmt.Sprintf("Max Level: %d   Max Kills: %d", p.MaxLevel, p.MaxKills), cx, config.ScreenHeight/4+30, config.TextLightColor)
	ui.DrawCentered(screen, face, fmt.Sprintf("Enemies Defeated: %d", p.EnemiesDefeated), cx, config.ScreenHeight/4+50, config.TextLightColor)
	m.start.Draw(screen)
}

func (m *MenuState) Exit() {}
