package system

import (
	"testing"
	"time"

	"auto-battler/internal/component"
	"auto-battler/internal/config"
	"auto-battler/internal/entity"
	"auto-battler/internal/event"
	"auto-battler/internal/progress"
	"auto-battler/internal/stats"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixedRandom float64

func (r fixedRandom) Float64() float64 { return float64(r) }

type harness struct {
	world   *entity.World
	store   *progress.MemoryStore
	tracker *progress.Tracker
	clock   *fakeClock
	combat  *CombatSystem
	state   *StateSystem
	events  []event.Event
}

func newHarness(t *testing.T, start progress.GlobalProgress, rng entity.Random) *harness {
	t.Helper()
	store := progress.NewMemoryStore()
	store.Save(start) //nolint:errcheck
	store.Saves = 0

	h := &harness{
		world: entity.NewWorld(),
		store: store,
		clock: &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	h.tracker = progress.Load(store)
	d := event.NewDispatcher()
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) { h.events = append(h.events, e) }),
		event.DamageDealt, event.LevelUp, event.EnemyKilled, event.EnemySpawned, event.BattleStarted, event.GameOver)

	f := stats.Default()
	NewPlayerSystem(h.world, d, h.tracker)
	h.state = NewStateSystem(h.world, d)
	h.combat = NewCombatSystem(h.world, NewMovementSystem(h.world), h.state, d, h.tracker, f, h.clock)

	p := h.tracker.Get()
	player := entity.NewPlayer(p, f, rng)
	h.world.Reset(player, entity.NewEnemy(player.State.Kills, p.EnemiesDefeated, f))
	h.state.SwitchToRunningState()
	return h
}

// engage puts the enemy on top of the player and runs the collision tick.
func (h *harness) engage(t *testing.T) {
	t.Helper()
	h.world.Enemy.Position.X = h.world.Player.Position.X + 10
	h.combat.Update(0)
	if h.world.GameState != component.BattleState {
		t.Fatalf("state = %v; want battle after collision", h.world.GameState)
	}
}

func (h *harness) count(t event.EventType) int {
	n := 0
	for _, e := range h.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestRunningMovesEnemyLeft(t *testing.T) {
	h := newHarness(t, progress.Default(), fixedRandom(0.5))
	x := h.world.Enemy.Position.X
	h.combat.Update(1.0 / config.TargetTPS)
	if got, want := h.world.Enemy.Position.X, x-3; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("x = %v; want %v", got, want)
	}
	if h.world.GameState != component.RunningState {
		t.Errorf("state = %v; want running", h.world.GameState)
	}
}

func TestEnemyWalksIntoBattle(t *testing.T) {
	h := newHarness(t, progress.Default(), fixedRandom(0.5))
	for i := 0; i < 1000 && h.world.GameState == component.RunningState; i++ {
		h.combat.Update(1.0 / config.TargetTPS)
	}
	if h.world.GameState != component.BattleState {
		t.Fatalf("state = %v; want battle", h.world.GameState)
	}
	p, e := h.world.Player, h.world.Enemy
	if !component.Intersects(p.Position, p.Bounds, e.Position, e.Bounds) {
		t.Error("battle started without overlap")
	}
	if h.count(event.BattleStarted) != 1 {
		t.Errorf("BattleStarted events = %d; want 1", h.count(event.BattleStarted))
	}
}

func TestOffScreenEnemyRespawns(t *testing.T) {
	h := newHarness(t, progress.Default(), fixedRandom(0.5))
	h.world.Enemy.Position.X = -config.EnemyWidth - 1
	old := h.world.Enemy

	h.combat.Update(0)

	if h.world.Enemy == old {
		t.Fatal("enemy was not replaced")
	}
	if h.world.Enemy.Position.X != config.ScreenWidth {
		t.Errorf("respawn x = %v; want right edge", h.world.Enemy.Position.X)
	}
	if h.world.GameState != component.RunningState {
		t.Errorf("state = %v; want running", h.world.GameState)
	}
	if h.tracker.Get().EnemiesDefeated != 0 {
		t.Error("an escaped enemy must not count as defeated")
	}
}

func TestFreshProgressScenario(t *testing.T) {
	h := newHarness(t, progress.Default(), fixedRandom(0.5))
	player := h.world.Player
	if player.Health.Value != 100 || player.Combat.Attack != 10 {
		t.Fatalf("player = %v hp %v atk", player.Health.Value, player.Combat.Attack)
	}
	if h.world.Enemy.Health.Value != 20 || h.world.Enemy.Attack != 5 {
		t.Fatalf("enemy = %v hp %v atk", h.world.Enemy.Health.Value, h.world.Enemy.Attack)
	}
	h.engage(t)
	first := h.world.Enemy

	h.clock.Advance(999 * time.Millisecond)
	h.combat.Update(0)
	if first.Health.Value != 20 {
		t.Fatal("exchange fired before the battle interval elapsed")
	}

	h.clock.Advance(time.Millisecond)
	h.combat.Update(0)
	if first.Health.Value != 10 || player.Health.Value != 95 {
		t.Fatalf("after exchange 1: enemy %v player %v; want 10 95", first.Health.Value, player.Health.Value)
	}

	h.clock.Advance(time.Second)
	h.combat.Update(0)
	if first.Health.Value > 0 {
		t.Fatalf("enemy hp = %v; want defeated", first.Health.Value)
	}
	if player.Health.Value != 90 {
		t.Errorf("player hp = %v; want 90", player.Health.Value)
	}
	if player.State.Kills != 1 || player.State.XP != 10 {
		t.Errorf("kills/xp = %d/%v; want 1/10", player.State.Kills, player.State.XP)
	}
	got := h.tracker.Get()
	if got.EnemiesDefeated != 1 || got.MaxKills != 1 {
		t.Errorf("progress = %+v; want 1 defeated, max kills 1", got)
	}
	if saved, _ := h.store.Load(); saved != got {
		t.Errorf("stored %+v; want %+v", saved, got)
	}
	if h.world.Enemy == first || h.world.GameState != component.RunningState {
		t.Errorf("expected a fresh enemy and running state, got %v", h.world.GameState)
	}
	if h.count(event.DamageDealt) != 4 || h.count(event.EnemyKilled) != 1 {
		t.Errorf("damage/kill events = %d/%d; want 4/1", h.count(event.DamageDealt), h.count(event.EnemyKilled))
	}
}

func TestNoCatchUpExchanges(t *testing.T) {
	h := newHarness(t, progress.Default(), fixedRandom(0.5))
	h.world.Enemy.Health = component.Health{Value: 1000, Max: 1000}
	h.engage(t)

	h.clock.Advance(5 * time.Second)
	h.combat.Update(0)
	h.combat.Update(0)

	if got := h.world.Enemy.Health.Value; got != 990 {
		t.Errorf("enemy hp = %v; want exactly one exchange (990)", got)
	}
}

func TestDamageFloorIsOne(t *testing.T) {
	h := newHarness(t, progress.Default(), fixedRandom(0.5))
	h.world.Player.Combat.Attack = 0
	h.world.Player.Combat.Defense = 50
	h.world.Enemy.Attack = 3
	h.engage(t)

	for i := 1; i <= 3; i++ {
		h.clock.Advance(time.Second)
		h.combat.Update(0)
		if got := h.world.Enemy.Health.Value; got != 20-float64(i) {
			t.Errorf("exchange %d: enemy hp = %v; want %v", i, got, 20-float64(i))
		}
		if got := h.world.Player.Health.Value; got != 100-float64(i) {
			t.Errorf("exchange %d: player hp = %v; want %v", i, got, 100-float64(i))
		}
	}
}

func TestCriticalHitEvent(t *testing.T) {
	h := newHarness(t, progress.Default(), fixedRandom(0))
	h.engage(t)
	h.clock.Advance(time.Second)
	h.combat.Update(0)

	var crit event.DamageData
	for _, e := range h.events {
		if d, ok := e.Data.(event.DamageData); ok && !d.ToPlayer {
			crit = d
		}
	}
	if !crit.IsCritical || crit.Amount != 20 {
		t.Errorf("damage to enemy = %+v; want critical 20", crit)
	}
}

func TestBossSpawnsAfterTenthKill(t *testing.T) {
	h := newHarness(t, progress.GlobalProgress{MaxLevel: 1, MaxKills: 9}, fixedRandom(0.5))
	if h.world.Enemy.Info.IsBoss {
		t.Fatal("kill count 9 must not spawn a boss")
	}
	h.world.Enemy.Health.Value = 1
	h.engage(t)
	h.clock.Advance(time.Second)
	h.combat.Update(0)

	if h.world.Player.State.Kills != 10 {
		t.Fatalf("kills = %d; want 10", h.world.Player.State.Kills)
	}
	if !h.world.Enemy.Info.IsBoss || h.world.Enemy.Info.SpawnKillCount != 10 {
		t.Errorf("next enemy = %+v; want boss spawned at kill 10", h.world.Enemy.Info)
	}
}

func TestMutualKillEndsRun(t *testing.T) {
	h := newHarness(t, progress.Default(), fixedRandom(0.5))
	h.world.Player.Health.Value = 5
	h.world.Enemy.Health.Value = 10
	h.engage(t)

	h.clock.Advance(time.Second)
	h.combat.Update(0)

	if h.world.GameState != component.GameOverState {
		t.Fatalf("state = %v; want gameover", h.world.GameState)
	}
	// The kill is still credited before the death check.
	if h.world.Player.State.Kills != 1 || h.tracker.Get().EnemiesDefeated != 1 {
		t.Errorf("kills = %d defeated = %d; want 1/1", h.world.Player.State.Kills, h.tracker.Get().EnemiesDefeated)
	}
	if h.count(event.GameOver) != 1 {
		t.Errorf("GameOver events = %d; want 1", h.count(event.GameOver))
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	h := newHarness(t, progress.Default(), fixedRandom(0.5))
	h.world.Player.Health.Value = 1
	h.world.Enemy.Health.Value = 1000
	h.engage(t)
	h.clock.Advance(time.Second)
	h.combat.Update(0)
	if h.world.GameState != component.GameOverState {
		t.Fatalf("state = %v; want gameover", h.world.GameState)
	}

	hp := h.world.Enemy.Health.Value
	x := h.world.Enemy.Position.X
	h.clock.Advance(10 * time.Second)
	h.combat.Update(1)
	if h.world.Enemy.Health.Value != hp || h.world.Enemy.Position.X != x {
		t.Error("combat kept running after game over")
	}
}

func TestKillGrantsXPAndLevelUps(t *testing.T) {
	h := newHarness(t, progress.Default(), fixedRandom(0.5))
	h.world.Enemy.Info.XPReward = 230
	h.world.Enemy.Health.Value = 1
	h.engage(t)
	h.clock.Advance(time.Second)
	h.combat.Update(0)

	p := h.world.Player
	if p.State.Level != 3 || p.State.XP != 10 {
		t.Errorf("level/xp = %d/%v; want 3/10", p.State.Level, p.State.XP)
	}
	if p.Health.Value != p.Health.Max {
		t.Errorf("hp = %v; level-up should leave the player at full health", p.Health.Value)
	}
	if h.count(event.LevelUp) != 2 {
		t.Errorf("LevelUp events = %d; want 2", h.count(event.LevelUp))
	}
	if h.tracker.Get().MaxLevel != 3 {
		t.Errorf("MaxLevel = %d; want 3", h.tracker.Get().MaxLevel)
	}
}
