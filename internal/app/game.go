// internal/app/game.go
package app

import (
	"log"
	"time"

	"auto-battler/internal/component"
	"auto-battler/internal/defs"
	"auto-battler/internal/entity"
	"auto-battler/internal/event"
	"auto-battler/internal/progress"
	"auto-battler/internal/runlog"
	"auto-battler/internal/stats"
	"auto-battler/internal/system"
	"auto-battler/internal/utils"
)

// RunRecorder stores the summary of each finished run.
type RunRecorder interface {
	Append(runlog.RunLog) error
}

// Options configures a Game. Zero values pick sensible defaults except Store.
type Options struct {
	Store   progress.Store
	Balance *defs.Balance
	Seed    int64
	Clock   system.Clock
	RunLog  RunRecorder
}

// Game wires the world, the systems and the persisted progress together and
// exposes the lifecycle the front ends drive.
type Game struct {
	World              *entity.World
	EventDispatcher    *event.Dispatcher
	Progress           *progress.Tracker
	Formulas           stats.Formulas
	Rng                *utils.PRNGService
	MovementSystem     *system.MovementSystem
	StateSystem        *system.StateSystem
	CombatSystem       *system.CombatSystem
	PlayerSystem       *system.PlayerSystem
	VisualEffectSystem *system.VisualEffectSystem

	clock  system.Clock
	runLog RunRecorder
	run    runlog.RunLog
}

// NewGame loads progress from opts.Store. The game stays in the start phase
// until Start is called.
func NewGame(opts Options) *Game {
	if opts.Store == nil {
		panic("progress store cannot be nil")
	}
	balance := defs.DefaultBalance()
	if opts.Balance != nil {
		balance = *opts.Balance
	}
	clock := opts.Clock
	if clock == nil {
		clock = system.SystemClock{}
	}

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	tracker := progress.Load(opts.Store)
	g := &Game{
		World:           world,
		EventDispatcher: eventDispatcher,
		Progress:        tracker,
		Formulas:        stats.New(balance),
		Rng:             utils.NewPRNGService(opts.Seed),
		MovementSystem:  system.NewMovementSystem(world),
		StateSystem:     system.NewStateSystem(world, eventDispatcher),
		clock:           clock,
		runLog:          opts.RunLog,
	}
	g.PlayerSystem = system.NewPlayerSystem(world, eventDispatcher, tracker)
	g.CombatSystem = system.NewCombatSystem(world, g.MovementSystem, g.StateSystem, eventDispatcher, tracker, g.Formulas, clock)
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemyKilled, listener)
	eventDispatcher.Subscribe(event.GameOver, listener)

	return g
}

// Start begins a run: player and enemy are rebuilt from the current progress
// and the state machine enters RUNNING. Used for the first run and restarts.
func (g *Game) Start() {
	p := g.Progress.Get()
	player := entity.NewPlayer(p, g.Formulas, g.Rng)
	g.World.Reset(player, nil)
	g.CombatSystem.SpawnEnemy()
	g.StateSystem.SwitchToRunningState()

	g.run = runlog.New(g.Rng.Seed(), g.clock.Now())
	g.EventDispatcher.Dispatch(event.Event{Type: event.RunStarted})
}

// Update advances one tick. It does nothing before Start or after game over.
func (g *Game) Update(deltaTime float64) {
	if !g.Running() {
		return
	}
	g.World.GameTime += deltaTime
	g.CombatSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
}

// Running reports whether ticks should keep being scheduled.
func (g *Game) Running() bool {
	s := g.StateSystem.Current()
	return s == component.RunningState || s == component.BattleState
}

// Subscribe lets collaborators such as audio listen to game events.
func (g *Game) Subscribe(listener event.Listener, types ...event.EventType) {
	g.EventDispatcher.SubscribeAll(listener, types...)
}

// GameEventListener keeps the run summary current.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyKilledData:
		if data.IsBoss {
			l.game.run.BossesDefeated++
		}
	case event.GameOverData:
		l.game.finishRun(data)
	}
}

func (g *Game) finishRun(data event.GameOverData) {
	g.run.EndedAt = g.clock.Now()
	g.run.Level = data.Level
	g.run.Kills = data.Kills
	g.run.MaxLevel = data.MaxLevel
	g.run.EnemiesDefeated = data.EnemiesDefeated
	log.Printf("Run %s over: level %d, %d kills, lasted %s", g.run.ID, data.Level, data.Kills,
		g.run.EndedAt.Sub(g.run.StartedAt).Round(time.Second))

	if g.runLog == nil {
		return
	}
	if err := g.runLog.Append(g.run); err != nil {
		log.Printf("run log: %v", err)
	}
}

// LastRun is the summary of the current or most recent run.
func (g *Game) LastRun() runlog.RunLog {
	return g.run
}

// Summary is the final-stats view of the most recent run.
func (g *Game) Summary() event.GameOverData {
	return event.GameOverData{
		Level:           g.run.Level,
		Kills:           g.run.Kills,
		MaxLevel:        g.run.MaxLevel,
		EnemiesDefeated: g.run.EnemiesDefeated,
	}
}
