// cmd/termgame/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"auto-battler/internal/app"
	"auto-battler/internal/audio"
	"auto-battler/internal/progress"
	"auto-battler/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	var cfg app.LaunchConfig
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.StringVar(&cfg.BalancePath, "balance", "", "YAML balance file")
	flag.StringVar(&cfg.DataDir, "data-dir", "", "directory for progress and run log")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	// The screen owns the terminal, so logs go to a file next to the progress.
	if err := redirectLog(cfg.DataDir); err != nil {
		log.Fatal(err)
	}

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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	term.NewLoop(screen, game).Run(ctx)
}

func redirectLog(dataDir string) error {
	dir := dataDir
	if dir == "" {
		var err error
		if dir, err = progress.DataDir(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "termgame.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}
