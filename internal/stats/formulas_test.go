package stats

import (
	"math"
	"testing"

	"auto-battler/internal/defs"
)

func TestPlayerStatsForLevel(t *testing.T) {
	prev := PlayerStatsForLevel(1)
	if prev.MaxHP != 100 || prev.Attack != 10 || prev.Defense != 0 {
		t.Fatalf("level 1 stats = %+v; want {100 10 0}", prev)
	}
	for level := 2; level <= 100; level++ {
		s := PlayerStatsForLevel(level)
		if want := 100 + float64(level-1)*25; s.MaxHP != want {
			t.Errorf("level %d: MaxHP = %v; want %v", level, s.MaxHP, want)
		}
		if s.MaxHP <= prev.MaxHP || s.Attack <= prev.Attack || s.Defense <= prev.Defense {
			t.Errorf("level %d stats %+v not strictly above level %d %+v", level, s, level-1, prev)
		}
		prev = s
	}
}

func TestXPRequiredForLevel(t *testing.T) {
	if got := XPRequiredForLevel(1); got != 100 {
		t.Fatalf("XPRequiredForLevel(1) = %v; want 100", got)
	}
	tests := []struct {
		level int
		want  float64
	}{
		{2, 120},
		{3, 144},
		{4, 172},
		{5, 207},
	}
	for _, tt := range tests {
		if got := XPRequiredForLevel(tt.level); got != tt.want {
			t.Errorf("XPRequiredForLevel(%d) = %v; want %v", tt.level, got, tt.want)
		}
	}
	for level := 2; level <= 60; level++ {
		if XPRequiredForLevel(level) <= XPRequiredForLevel(level-1) {
			t.Errorf("XPRequiredForLevel not strictly increasing at level %d", level)
		}
	}
}

func TestEnemyStatsForFreshProgress(t *testing.T) {
	s := EnemyStatsFor(0, 0)
	want := EnemyStats{HP: 20, Attack: 5, XPReward: 10, IsBoss: false}
	if s != want {
		t.Fatalf("EnemyStatsFor(0, 0) = %+v; want %+v", s, want)
	}
}

func TestEnemyStatsForPowerLevel(t *testing.T) {
	// 25 defeats is power level 2: hp 20*1.44, attack 5*1.3225, reward 10*1.21.
	s := EnemyStatsFor(25, 3)
	want := EnemyStats{HP: 28, Attack: 6, XPReward: 12, IsBoss: false}
	if s != want {
		t.Fatalf("EnemyStatsFor(25, 3) = %+v; want %+v", s, want)
	}
	if EnemyStatsFor(9, 1) != EnemyStatsFor(0, 1) {
		t.Error("defeats below 10 must stay at power level 0")
	}
}

func TestBossOnlyOnPositiveMultiplesOfTen(t *testing.T) {
	for kills := 0; kills <= 45; kills++ {
		want := kills > 0 && kills%10 == 0
		if got := EnemyStatsFor(0, kills).IsBoss; got != want {
			t.Errorf("killCount %d: IsBoss = %v; want %v", kills, got, want)
		}
	}
}

func TestBossStatsScaleFromRegular(t *testing.T) {
	b := defs.DefaultBalance()
	for _, defeated := range []int{0, 10, 37, 120} {
		regular := EnemyStatsFor(defeated, 11)
		boss := EnemyStatsFor(defeated, 10)
		if !boss.IsBoss || regular.IsBoss {
			t.Fatalf("defeated %d: boss flags wrong (%v, %v)", defeated, boss.IsBoss, regular.IsBoss)
		}
		// Flooring happens after the multiplier, so allow one floor step of slack.
		if math.Abs(boss.HP-regular.HP*b.Enemy.BossMultiplier) > b.Enemy.BossMultiplier {
			t.Errorf("defeated %d: boss HP %v vs regular %v", defeated, boss.HP, regular.HP)
		}
		if math.Abs(boss.Attack-regular.Attack*b.Enemy.BossMultiplier) > b.Enemy.BossMultiplier {
			t.Errorf("defeated %d: boss attack %v vs regular %v", defeated, boss.Attack, regular.Attack)
		}
		if boss.XPReward != regular.XPReward*3 {
			t.Errorf("defeated %d: boss reward %d; want %d", defeated, boss.XPReward, regular.XPReward*3)
		}
	}
}

func TestFormulasUseBoundBalance(t *testing.T) {
	b := defs.DefaultBalance()
	b.Player.BaseHP = 50
	b.Enemy.BossEvery = 5
	f := New(b)

	if got := f.PlayerStatsForLevel(1).MaxHP; got != 50 {
		t.Errorf("MaxHP = %v; want 50", got)
	}
	if !f.EnemyStatsFor(0, 5).IsBoss {
		t.Error("expected boss on kill 5 with BossEvery=5")
	}
}
