// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"auto-battler/internal/app"
	"auto-battler/internal/audio"
	"auto-battler/internal/config"
	"auto-battler/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var cfg app.LaunchConfig
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.StringVar(&cfg.BalancePath, "balance", "", "YAML balance file")
	flag.StringVar(&cfg.DataDir, "data-dir", "", "directory for progress and run log")
	mute := flag.Bool("mute", false, "disable sound effects")
	skipMenu := flag.Bool("skip-menu", false, "start the battle immediately")
	flag.Parse()

	game, err := app.Bootstrap(cfg)
	if err != nil {
		log.Fatal(err)
	}

	sounds := audio.NewSoundManager()
	if !*mute {
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	sounds.Subscribe(game.EventDispatcher)
	defer sounds.Close()

	scene := state.NewScene(game)
	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewPlayState(sm, scene))
	} else {
		sm.SetState(state.NewMenuState(sm, scene))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Auto Battler")
	ebiten.SetTPS(config.TargetTPS)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
