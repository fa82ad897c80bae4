package term

import (
	"fmt"

	"auto-battler/internal/app"
)

func formatAmount(amount float64) string {
	return fmt.Sprintf("%d", int(amount))
}

func maxLine(s app.Snapshot) string {
	return fmt.Sprintf("Max Level: %d   Max Kills: %d   Defeated: %d",
		s.Progress.MaxLevel, s.Progress.MaxKills, s.Progress.EnemiesDefeated)
}
