package app

import (
	"testing"
	"time"

	"auto-battler/internal/component"
	"auto-battler/internal/config"
	"auto-battler/internal/defs"
	"auto-battler/internal/event"
	"auto-battler/internal/progress"
	"auto-battler/internal/runlog"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type memoryRunLog struct{ runs []runlog.RunLog }

func (m *memoryRunLog) Append(r runlog.RunLog) error {
	m.runs = append(m.runs, r)
	return nil
}

func newTestGame(t *testing.T, store progress.Store) (*Game, *fakeClock, *memoryRunLog) {
	t.Helper()
	// Critical hits off so damage is deterministic.
	b := defs.DefaultBalance()
	b.Player.CriticalChance = 0
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	runs := &memoryRunLog{}
	g := NewGame(Options{Store: store, Balance: &b, Seed: 1, Clock: clock, RunLog: runs})
	return g, clock, runs
}

// tickUntil runs frames of 1/60s, advancing the clock alongside, until cond holds.
func tickUntil(t *testing.T, g *Game, clock *fakeClock, cond func() bool) {
	t.Helper()
	const frame = time.Second / config.TargetTPS
	for i := 0; i < 100000; i++ {
		if cond() {
			return
		}
		clock.Advance(frame)
		g.Update(frame.Seconds())
	}
	t.Fatal("condition never reached")
}

func TestUpdateBeforeStartIsNoop(t *testing.T) {
	g, _, _ := newTestGame(t, progress.NewMemoryStore())
	g.Update(1)
	if g.Running() || g.World.GameState != component.StartState {
		t.Fatalf("state = %v; want start", g.World.GameState)
	}
	if g.World.Player != nil {
		t.Error("no player should exist before Start")
	}
}

func TestStartFromFreshProgress(t *testing.T) {
	g, _, _ := newTestGame(t, progress.NewMemoryStore())
	g.Start()

	snap := g.Snapshot()
	if snap.State != component.RunningState || !g.Running() {
		t.Fatalf("state = %v; want running", snap.State)
	}
	if snap.HP != 100 || snap.Level != 1 || snap.Kills != 0 || snap.XP != 0 || snap.XPToNextLevel != 100 {
		t.Errorf("hud = %+v", snap)
	}
	if !snap.HasEnemy || snap.Enemy.HP != 20 || snap.Enemy.IsBoss {
		t.Errorf("enemy = %+v", snap.Enemy)
	}
}

func TestFirstKillThroughGameLoop(t *testing.T) {
	store := progress.NewMemoryStore()
	g, clock, _ := newTestGame(t, store)
	g.Start()
	first := g.World.Enemy

	tickUntil(t, g, clock, func() bool { return g.World.GameState == component.BattleState })
	tickUntil(t, g, clock, func() bool { return g.World.Enemy != first })

	snap := g.Snapshot()
	if snap.Kills != 1 || snap.HP != 90 || snap.XP != 10 {
		t.Errorf("after first kill hud = kills %d hp %d xp %d; want 1 90 10", snap.Kills, snap.HP, snap.XP)
	}
	if snap.State != component.RunningState {
		t.Errorf("state = %v; want running", snap.State)
	}
	saved, ok := store.Load()
	if !ok || saved.EnemiesDefeated != 1 || saved.MaxKills != 1 {
		t.Errorf("saved progress = %+v", saved)
	}
}

func TestGameOverStopsAndRestartRebuildsFromProgress(t *testing.T) {
	store := progress.NewMemoryStore()
	store.Save(progress.GlobalProgress{MaxLevel: 3, MaxKills: 4, EnemiesDefeated: 50}) //nolint:errcheck
	g, clock, runs := newTestGame(t, store)

	var overs []event.GameOverData
	g.Subscribe(event.ListenerFunc(func(e event.Event) {
		overs = append(overs, e.Data.(event.GameOverData))
	}), event.GameOver)

	g.Start()
	if g.World.Player.State.Level != 3 || g.World.Player.State.Kills != 4 {
		t.Fatalf("player level/kills = %d/%d; want 3/4", g.World.Player.State.Level, g.World.Player.State.Kills)
	}
	g.World.Player.Health.Value = 1
	g.World.Enemy.Health.Value = 1000

	tickUntil(t, g, clock, func() bool { return !g.Running() })

	if g.World.GameState != component.GameOverState {
		t.Fatalf("state = %v; want gameover", g.World.GameState)
	}
	if len(overs) != 1 || overs[0].Level != 3 || overs[0].MaxLevel != 3 || overs[0].EnemiesDefeated != 50 {
		t.Errorf("game over data = %+v", overs)
	}
	if len(runs.runs) != 1 || runs.runs[0].ID == "" || runs.runs[0].Kills != 4 {
		t.Errorf("run log = %+v", runs.runs)
	}

	frozen := g.Snapshot()
	g.Update(1)
	if g.Snapshot().Enemy != frozen.Enemy {
		t.Error("world changed after game over")
	}

	g.Start()
	if !g.Running() || g.World.Player.Health.Value != g.World.Player.Health.Max {
		t.Error("restart should begin a fresh run at full health")
	}
	if g.World.Player.State.Level != 3 || g.World.Player.State.Kills != 4 {
		t.Errorf("restart level/kills = %d/%d; want 3/4", g.World.Player.State.Level, g.World.Player.State.Kills)
	}
	if len(g.World.FloatingTexts) != 0 {
		t.Error("effects from the last run should be cleared")
	}
	if g.LastRun().ID == runs.runs[0].ID {
		t.Error("restart should open a new run log entry")
	}
}

func TestSnapshotCopiesEffects(t *testing.T) {
	g, clock, _ := newTestGame(t, progress.NewMemoryStore())
	g.Start()
	tickUntil(t, g, clock, func() bool { return len(g.World.FloatingTexts) > 0 })

	snap := g.Snapshot()
	if len(snap.FloatingTexts) != len(g.World.FloatingTexts) {
		t.Fatalf("snapshot has %d texts; world %d", len(snap.FloatingTexts), len(g.World.FloatingTexts))
	}
	snap.FloatingTexts[0].Amount = -1
	if g.World.FloatingTexts[0].Amount == -1 {
		t.Error("snapshot must not alias world effects")
	}
}

func TestNewGameRequiresStore(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic without a store")
		}
	}()
	NewGame(Options{})
}
