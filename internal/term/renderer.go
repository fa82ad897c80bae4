// Package term draws the battle in a terminal with tcell.
package term

import (
	"image/color"
	"math"

	"auto-battler/internal/app"
	"auto-battler/internal/component"
	"auto-battler/internal/config"
	"auto-battler/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const hudRows = 2

// Renderer maps the 800x400 playfield onto whatever cell grid the terminal has.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// cell converts playfield pixels to a cell position below the HUD.
func (r *Renderer) cell(x, y float64) (int, int) {
	w, h := r.screen.Size()
	rows := h - hudRows
	if rows < 1 {
		rows = 1
	}
	cx := int(math.Floor(x * float64(w) / config.ScreenWidth))
	cy := hudRows + int(math.Floor(y*float64(rows)/config.ScreenHeight))
	return cx, cy
}

// Draw renders one frame and shows it.
func (r *Renderer) Draw(s app.Snapshot) {
	r.screen.Clear()
	r.drawGround()

	if s.State != component.StartState {
		r.drawEntity(s.Player, style(config.PlayerColor))
		if s.HasEnemy {
			c := config.EnemyColor
			if s.Enemy.IsBoss {
				c = config.BossColor
			}
			r.drawEntity(s.Enemy, style(c))
		}
		for _, ft := range s.FloatingTexts {
			r.drawFloatingText(ft)
		}
	}

	r.drawHUD(s)
	r.screen.Show()
}

func (r *Renderer) drawGround() {
	w, _ := r.screen.Size()
	_, y := r.cell(0, config.ScreenHeight-config.GroundHeight)
	st := style(config.GroundColor)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '▀', nil, st)
	}
}

func (r *Renderer) drawEntity(e app.EntityView, st tcell.Style) {
	x0, y0 := r.cell(e.X, e.Y)
	x1, y1 := r.cell(e.X+e.W, e.Y+e.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, '█', nil, st)
		}
	}

	// Health bar on the row above the body.
	ratio := 0.0
	if e.MaxHP > 0 {
		ratio = math.Max(0, math.Min(1, e.HP/e.MaxHP))
	}
	width := x1 - x0
	filled := int(math.Round(ratio * float64(width)))
	fill := style(render.HealthColor(ratio))
	back := style(config.HealthBarBackColor)
	for i := 0; i < width; i++ {
		st := back
		if i < filled {
			st = fill
		}
		r.screen.SetContent(x0+i, y0-1, '▬', nil, st)
	}
}

func (r *Renderer) drawFloatingText(ft component.FloatingText) {
	x, y := r.cell(ft.X, ft.Y-config.DamageNumberRise*ft.Progress())
	c := config.DamageTextColor
	if ft.IsCritical {
		c = config.CriticalTextColor
	}
	PutText(r.screen, x, y, formatAmount(ft.Amount), style(c))
}

func (r *Renderer) drawHUD(s app.Snapshot) {
	w, _ := r.screen.Size()
	light := style(config.TextLightColor)
	PutText(r.screen, 0, 0, s.StatusLine(), light)
	for i, b := range s.Banners {
		PutCentered(r.screen, w/2, 1+i, "✨ "+b.Text+" ✨", style(config.LevelUpTextColor))
	}
}

// DrawStart shows the title with the best results so far.
func (r *Renderer) DrawStart(p app.Snapshot) {
	r.screen.Clear()
	w, h := r.screen.Size()
	light := style(config.TextLightColor)
	PutCentered(r.screen, w/2, h/3, "⚔️  AUTO BATTLER  ⚔️", light)
	PutCentered(r.screen, w/2, h/3+2, maxLine(p), light)
	PutCentered(r.screen, w/2, h/3+4, "space: start   q: quit", light)
	r.screen.Show()
}

// DrawGameOver overlays the final stats on the last frame.
func (r *Renderer) DrawGameOver(s app.Snapshot, lines []string) {
	r.Draw(s)
	w, h := r.screen.Size()
	y := h/2 - len(lines)/2
	for i, line := range lines {
		st := style(config.TextLightColor)
		if i == 0 {
			st = style(config.EnemyColor).Bold(true)
		}
		PutCentered(r.screen, w/2, y+i, line, st)
	}
	PutCentered(r.screen, w/2, y+len(lines)+1, "r: restart   q: quit", style(config.TextLightColor))
	r.screen.Show()
}

// PutText writes s from (x, y), advancing by each rune's display width and
// stopping at the right edge.
func PutText(scr tcell.Screen, x, y int, s string, st tcell.Style) {
	sw, _ := scr.Size()
	for _, ch := range s {
		if x >= sw {
			break
		}
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		scr.SetContent(x, y, ch, nil, st)
		if w == 2 {
			scr.SetContent(x+1, y, ' ', nil, st)
		}
		x += w
	}
}

// PutCentered writes s centered on column cx.
func PutCentered(scr tcell.Screen, cx, y int, s string, st tcell.Style) {
	PutText(scr, cx-runewidth.StringWidth(s)/2, y, s, st)
}
