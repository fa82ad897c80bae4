package app

import (
	"fmt"
	"log"

	"auto-battler/internal/defs"
	"auto-battler/internal/progress"
	"auto-battler/internal/runlog"
)

// LaunchConfig is what the command-line front ends collect from flags.
type LaunchConfig struct {
	Seed        int64
	BalancePath string
	DataDir     string
}

// Bootstrap builds a file-backed Game. An empty DataDir resolves to the XDG
// data directory. A broken balance file is an error rather than a silent
// fallback so that tuning mistakes are noticed.
func Bootstrap(cfg LaunchConfig) (*Game, error) {
	dir := cfg.DataDir
	if dir == "" {
		var err error
		dir, err = progress.DataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data dir: %w", err)
		}
	}

	opts := Options{
		Store:  progress.NewFileStore(dir),
		Seed:   cfg.Seed,
		RunLog: runlog.Writer{Dir: dir},
	}
	if cfg.BalancePath != "" {
		b, err := defs.LoadBalance(cfg.BalancePath)
		if err != nil {
			return nil, err
		}
		opts.Balance = &b
	}

	g := NewGame(opts)
	log.Printf("Data dir %s, seed %d", dir, g.Rng.Seed())
	return g, nil
}
