package app

import (
	"fmt"
	"math"

	"auto-battler/internal/component"
	"auto-battler/internal/event"
	"auto-battler/internal/progress"
)

// EntityView is what a renderer needs to draw one combatant.
type EntityView struct {
	X, Y, W, H float64
	HP, MaxHP  float64
	IsBoss     bool
}

// Snapshot is the per-tick picture handed to renderers and the HUD.
type Snapshot struct {
	State         component.GameState
	Player        EntityView
	Enemy         EntityView
	HasEnemy      bool
	HP            int
	MaxHP         int
	Kills         int
	XP            int
	XPToNextLevel int
	Level         int
	Progress      progress.GlobalProgress
	FloatingTexts []component.FloatingText
	Banners       []component.Banner
}

// Snapshot copies the current world state. HP and XP are floored for display.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	snap := Snapshot{
		State:    w.GameState,
		Progress: g.Progress.Get(),
	}
	if p := w.Player; p != nil {
		snap.Player = EntityView{
			X: p.Position.X, Y: p.Position.Y, W: p.Bounds.W, H: p.Bounds.H,
			HP: p.Health.Value, MaxHP: p.Health.Max,
		}
		snap.HP = int(math.Floor(p.Health.Value))
		snap.MaxHP = int(math.Floor(p.Health.Max))
		snap.Kills = p.State.Kills
		snap.XP = int(math.Floor(p.State.XP))
		snap.XPToNextLevel = int(p.State.XPToNextLevel)
		snap.Level = p.State.Level
	}
	if e := w.Enemy; e != nil {
		snap.HasEnemy = true
		snap.Enemy = EntityView{
			X: e.Position.X, Y: e.Position.Y, W: e.Bounds.W, H: e.Bounds.H,
			HP: e.Health.Value, MaxHP: e.Health.Max, IsBoss: e.Info.IsBoss,
		}
	}
	for _, ft := range w.FloatingTexts {
		snap.FloatingTexts = append(snap.FloatingTexts, *ft)
	}
	for _, b := range w.Banners {
		snap.Banners = append(snap.Banners, *b)
	}
	return snap
}

// StatusLine is the HUD text shared by both front ends.
func (s Snapshot) StatusLine() string {
	return fmt.Sprintf("HP: %d  Kills: %d  XP: %d/%d  Level: %d", s.HP, s.Kills, s.XP, s.XPToNextLevel, s.Level)
}

// SummaryLines are the rows of the game-over panel.
func SummaryLines(d event.GameOverData) []string {
	return []string{
		"GAME OVER",
		fmt.Sprintf("Final Score: %d", d.Kills),
		fmt.Sprintf("Final Level: %d", d.Level),
		fmt.Sprintf("Max Level: %d", d.MaxLevel),
		fmt.Sprintf("Total Enemies Defeated: %d", d.EnemiesDefeated),
	}
}
