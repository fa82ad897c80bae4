// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 400
	GroundHeight = 20
	MaxDeltaTime = 0.06

	// Reference frame rate the per-tick speeds are tuned for.
	TargetTPS = 60

	PlayerWidth  = 40
	PlayerHeight = 60
	PlayerX      = 100

	EnemyWidth  = 40
	EnemyHeight = 40
	BossWidth   = 60
	BossHeight  = 60
	EnemySpeed  = 3.0 * TargetTPS // pixels per second

	BattleInterval = 1000 * time.Millisecond

	HealthBarWidth   = 50
	HealthBarHeight  = 5
	HealthBarOffsetX = 5
	HealthBarOffsetY = 10

	DamageNumberDuration = 1.0 // seconds
	DamageNumberRise     = 20.0
	LevelUpBannerTime    = 2.0 // seconds

	ProgressFileName = "gameProgress.json"
	RunLogFileName   = "runs.jsonl"
	DataDirName      = "auto-battler"
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	GroundColor        = color.RGBA{0x33, 0x33, 0x33, 255}
	PlayerColor        = color.RGBA{0, 255, 0, 255}
	EnemyColor         = color.RGBA{255, 0, 0, 255}
	BossColor          = color.RGBA{180, 0, 60, 255}
	HealthBarBackColor = color.RGBA{255, 0, 0, 255}
	HealthBarFillColor = color.RGBA{0, 255, 0, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	DamageTextColor    = color.RGBA{255, 255, 255, 255}
	CriticalTextColor  = color.RGBA{255, 215, 0, 255}
	LevelUpTextColor   = color.RGBA{255, 215, 0, 255}
	ButtonColor        = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor   = color.RGBA{220, 60, 60, 220}
	OverlayColor       = color.RGBA{0, 0, 0, 180}
)
