package system

import (
	"math"
	"time"

	"auto-battler/internal/component"
	"auto-battler/internal/config"
	"auto-battler/internal/entity"
	"auto-battler/internal/event"
	"auto-battler/internal/progress"
	"auto-battler/internal/stats"
)

// Clock is the wall-clock source exchanges are timed against.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// CombatSystem drives RUNNING -> BATTLE -> RUNNING/GAMEOVER. Exchanges are
// time-based: at most one per BattleInterval however often Update is called.
type CombatSystem struct {
	world           *entity.World
	movement        *MovementSystem
	state           *StateSystem
	eventDispatcher *event.Dispatcher
	progress        *progress.Tracker
	formulas        stats.Formulas
	clock           Clock
	interval        time.Duration
	lastExchange    time.Time
}

func NewCombatSystem(world *entity.World, movement *MovementSystem, state *StateSystem,
	eventDispatcher *event.Dispatcher, tracker *progress.Tracker, formulas stats.Formulas, clock Clock) *CombatSystem {
	return &CombatSystem{
		world:           world,
		movement:        movement,
		state:           state,
		eventDispatcher: eventDispatcher,
		progress:        tracker,
		formulas:        formulas,
		clock:           clock,
		interval:        config.BattleInterval,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	switch s.state.Current() {
	case component.RunningState:
		s.updateRunning(deltaTime)
	case component.BattleState:
		s.updateBattle()
	}
}

func (s *CombatSystem) updateRunning(deltaTime float64) {
	s.movement.Update(deltaTime)

	player, enemy := s.world.Player, s.world.Enemy
	if component.Intersects(player.Position, player.Bounds, enemy.Position, enemy.Bounds) {
		s.state.SwitchToBattleState()
		s.lastExchange = s.clock.Now()
		return
	}
	if enemy.OffScreen() {
		s.SpawnEnemy()
	}
}

func (s *CombatSystem) updateBattle() {
	now := s.clock.Now()
	if now.Sub(s.lastExchange) < s.interval {
		return
	}
	s.exchange()
	s.lastExchange = now

	player := s.world.Player
	if s.world.Enemy.Defeated() {
		s.defeatEnemy()
	}
	// Checked even when the enemy just died: a mutual kill ends the run.
	if player.Dead() {
		p := s.progress.Get()
		s.state.SwitchToGameOverState(event.GameOverData{
			Level:           player.State.Level,
			Kills:           player.State.Kills,
			MaxLevel:        p.MaxLevel,
			EnemiesDefeated: p.EnemiesDefeated,
		})
	}
}

// exchange resolves one simultaneous round of blows. Both sides lose at least
// 1 hp so every exchange makes progress.
func (s *CombatSystem) exchange() {
	player, enemy := s.world.Player, s.world.Enemy

	roll := player.RollAttackDamage()
	toEnemy := math.Max(1, roll.Damage)
	enemy.TakeHit(toEnemy)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.DamageDealt,
		Data: event.DamageData{X: enemy.Position.X, Y: enemy.Position.Y, Amount: toEnemy, IsCritical: roll.IsCritical},
	})

	toPlayer := math.Max(1, enemy.Attack-player.Combat.Defense)
	player.ApplyDamage(toPlayer)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.DamageDealt,
		Data: event.DamageData{X: player.Position.X, Y: player.Position.Y, Amount: toPlayer, ToPlayer: true},
	})
}

func (s *CombatSystem) defeatEnemy() {
	enemy, player := s.world.Enemy, s.world.Player
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{XPReward: enemy.Info.XPReward, IsBoss: enemy.Info.IsBoss},
	})

	player.State.Kills++
	s.progress.RecordKill(player.State.Kills)

	s.SpawnEnemy()
	s.state.SwitchToRunningState()
}

// SpawnEnemy replaces the active enemy with a fresh one keyed on the current
// kill count and lifetime defeats.
func (s *CombatSystem) SpawnEnemy() {
	enemy := entity.NewEnemy(s.world.Player.State.Kills, s.progress.Get().EnemiesDefeated, s.formulas)
	s.world.Enemy = enemy
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemySpawnedData{IsBoss: enemy.Info.IsBoss, HP: enemy.Health.Value},
	})
}
