package term

import (
	"context"
	"time"

	"auto-battler/internal/app"
	"auto-battler/internal/config"

	"github.com/gdamore/tcell/v2"
)

// Action is a decoded key press.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionRestart
	ActionQuit
)

// KeyToAction decodes the keys the terminal front end understands.
func KeyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionStart
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit
		case ' ':
			return ActionStart
		case 'r', 'R':
			return ActionRestart
		}
	}
	return ActionNone
}

// Loop runs the game at TargetTPS and reads keys from a separate goroutine.
type Loop struct {
	screen   tcell.Screen
	game     *app.Game
	renderer *Renderer
	started  bool
}

func NewLoop(screen tcell.Screen, game *app.Game) *Loop {
	return &Loop{screen: screen, game: game, renderer: NewRenderer(screen)}
}

// Run blocks until the player quits or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go l.pollEvents(events, quit)

	ticker := time.NewTicker(time.Second / config.TargetTPS)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				l.screen.Sync()
			case *tcell.EventKey:
				if !l.Handle(KeyToAction(ev)) {
					return
				}
			}
		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			last = now
			l.Step(deltaTime)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized.
func (l *Loop) pollEvents(events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := l.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// Handle applies an action and reports whether the loop should continue.
func (l *Loop) Handle(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionStart:
		if !l.started {
			l.started = true
			l.game.Start()
		}
	case ActionRestart:
		if l.started && !l.game.Running() {
			l.game.Start()
		}
	}
	return true
}

// Step advances the game by deltaTime and redraws.
func (l *Loop) Step(deltaTime float64) {
	if !l.started {
		l.renderer.DrawStart(l.game.Snapshot())
		return
	}
	l.game.Update(deltaTime)
	snap := l.game.Snapshot()
	if l.game.Running() {
		l.renderer.Draw(snap)
		return
	}
	l.renderer.DrawGameOver(snap, app.SummaryLines(l.game.Summary()))
}
