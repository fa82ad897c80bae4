// Package runlog appends one JSON line per finished run.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"auto-battler/internal/config"
)

// RunLog summarizes one run from start to game over.
type RunLog struct {
	ID              string    `json:"id"`
	Seed            int64     `json:"seed"`
	StartedAt       time.Time `json:"startedAt"`
	EndedAt         time.Time `json:"endedAt"`
	Level           int       `json:"level"`
	Kills           int       `json:"kills"`
	BossesDefeated  int       `json:"bossesDefeated"`
	MaxLevel        int       `json:"maxLevel"`
	EnemiesDefeated int       `json:"enemiesDefeated"`
}

// New starts a log entry with a fresh run ID.
func New(seed int64, startedAt time.Time) RunLog {
	return RunLog{
		ID:        uuid.NewString(),
		Seed:      seed,
		StartedAt: startedAt,
	}
}

// Writer appends entries to runs.jsonl in Dir.
type Writer struct {
	Dir string
}

// Path is the log file location.
func (w Writer) Path() string {
	return filepath.Join(w.Dir, config.RunLogFileName)
}

// Append writes log as a single JSON line.
func (w Writer) Append(log RunLog) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create run log dir: %w", err)
	}
	f, err := os.OpenFile(w.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to marshal run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write run log: %w", err)
	}
	return nil
}
