// Package progress keeps the cross-session record of best level, best kill
// count and lifetime defeats.
package progress

import "log"

// GlobalProgress only ever grows, within a session and across sessions.
type GlobalProgress struct {
	MaxLevel        int `json:"maxLevel"`
	MaxKills        int `json:"maxKills"`
	EnemiesDefeated int `json:"enemiesDefeated"`
}

// Default is the record used when nothing valid is stored.
func Default() GlobalProgress {
	return GlobalProgress{MaxLevel: 1}
}

// Sanitize clamps a decoded record into the valid range.
func (p GlobalProgress) Sanitize() GlobalProgress {
	if p.MaxLevel < 1 {
		p.MaxLevel = 1
	}
	if p.MaxKills < 0 {
		p.MaxKills = 0
	}
	if p.EnemiesDefeated < 0 {
		p.EnemiesDefeated = 0
	}
	return p
}

// Store is the single-key persistence collaborator.
type Store interface {
	Load() (GlobalProgress, bool)
	Save(GlobalProgress) error
}

// Tracker is the single owner of the live record. It writes through to the
// store on every change; write failures are logged and otherwise ignored.
type Tracker struct {
	store   Store
	current GlobalProgress
}

// Load reads the stored record, falling back to Default.
func Load(store Store) *Tracker {
	p, ok := store.Load()
	if !ok {
		log.Println("progress: no saved progress, starting fresh")
		p = Default()
	}
	return &Tracker{store: store, current: p.Sanitize()}
}

// Get returns a copy of the current record.
func (t *Tracker) Get() GlobalProgress {
	return t.current
}

// RecordLevel raises MaxLevel to level if it is higher.
func (t *Tracker) RecordLevel(level int) {
	if level > t.current.MaxLevel {
		t.current.MaxLevel = level
	}
	t.save()
}

// RecordKill counts one defeat and raises MaxKills to kills if higher.
func (t *Tracker) RecordKill(kills int) {
	if kills > t.current.MaxKills {
		t.current.MaxKills = kills
	}
	t.current.EnemiesDefeated++
	t.save()
}

func (t *Tracker) save() {
	if err := t.store.Save(t.current); err != nil {
		log.Printf("progress: save failed: %v", err)
	}
}
