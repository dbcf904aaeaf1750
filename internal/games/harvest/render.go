package harvest

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/harvest-defense/internal/core"
	"github.com/vovakirdan/harvest-defense/internal/games/harvest/sim"
)

// Each field cell is drawn two columns wide so the grid looks square.
const cellCols = 2

// Visual characters for rendering
const (
	StubbleChar   = '·'
	CombineChar   = '█'
	EnemyChar     = '◉'
	BulletChar    = '•'
	CrosshairChar = '+'
)

// cropGlyphs is indexed by crop level.
var cropGlyphs = [sim.MaxLevel + 1]rune{' ', '.', '░', '▒', '▓'}

var itemGlyphs = map[sim.WeaponMode]rune{
	sim.ModeBase:    'B',
	sim.ModeFast:    'F',
	sim.ModeShotgun: 'S',
	sim.ModeSplit:   'Y',
	sim.ModeReverse: 'R',
	sim.ModeNuke:    'N',
}

// layout places the field on the screen. World Y grows upward, screen rows
// grow downward. The field is surrounded by the one-cell spawn ring and a
// barrier border.
type layout struct {
	offX, offY int // screen cell of world (0, fieldH-1)
	fieldW     int
	fieldH     int
	tooSmall   bool
}

func newLayout(screenW, screenH, fieldW, fieldH int) layout {
	// field + spawn ring on both sides + border on both sides
	needW := (fieldW+2)*cellCols + 2
	needH := fieldH + 4 + 1 // plus HUD row

	l := layout{fieldW: fieldW, fieldH: fieldH}
	l.tooSmall = screenW < needW || screenH < needH

	left := core.Max(0, (screenW-needW)/2)
	top := 1 + core.Max(0, (screenH-needH)/2)
	l.offX = left + 1 + cellCols
	l.offY = top + 2
	return l
}

// toScreen maps a world position to a screen cell.
func (l layout) toScreen(v core.Vec2) (int, int) {
	col := l.offX + int(math.Round(v.X*cellCols))
	row := l.offY + (l.fieldH - 1) - int(math.Round(v.Y))
	return col, row
}

// cellToScreen returns the left column and row of a grid cell.
func (l layout) cellToScreen(p sim.GridPos) (int, int) {
	return l.offX + p.X*cellCols, l.offY + (l.fieldH - 1) - p.Y
}

// toWorld maps a screen cell to a world position at the cell center.
func (l layout) toWorld(col, row int) core.Vec2 {
	x := float64(col-l.offX)/cellCols - 0.25
	y := float64(l.fieldH - 1 - (row - l.offY))
	return core.V(x, y)
}

// borderRect is the barrier around the field and spawn ring.
func (l layout) borderRect() core.Rect {
	return core.NewRect(
		l.offX-cellCols-1,
		l.offY-2,
		(l.fieldW+2)*cellCols+2,
		l.fieldH+4,
	)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	if g.layout.tooSmall {
		g.drawCenteredMessage(dst, "Terminal too small", fmt.Sprintf("need %dx%d", g.layout.borderRect().W, g.layout.borderRect().H+1))
		return
	}

	g.drawBorder(dst)
	g.drawField(dst)
	g.drawEntities(dst)
	g.drawHUD(dst)

	switch {
	case g.sim.State() == sim.StateReady:
		g.drawCenteredMessage(dst, "HARVEST DEFENSE", "Space to start  |  WASD steer  |  mouse aims and fires")
	case g.sim.State() == sim.StateGameOver:
		title := "GAME OVER"
		if g.sim.Outcome() == sim.OutcomeCleared {
			title = "FIELD CLEARED"
		}
		g.drawCenteredMessage(dst, title, fmt.Sprintf("Harvested %.1f%%  |  Space to continue", g.sim.Score()))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawBorder(dst *core.Screen) {
	r := g.layout.borderRect()
	color := core.ColorGray
	if g.hitFlash > 0 && g.hitFlash%4 < 2 {
		color = core.ColorBrightRed
	}
	for x := r.X; x < r.Right(); x++ {
		dst.SetColor(x, r.Y, '═', color)
		dst.SetColor(x, r.Bottom()-1, '═', color)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColor(r.X, y, '║', color)
		dst.SetColor(r.Right()-1, y, '║', color)
	}
	dst.SetColor(r.X, r.Y, '╔', color)
	dst.SetColor(r.Right()-1, r.Y, '╗', color)
	dst.SetColor(r.X, r.Bottom()-1, '╚', color)
	dst.SetColor(r.Right()-1, r.Bottom()-1, '╝', color)
}

func (g *Game) drawField(dst *core.Screen) {
	f := g.sim.Field()
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			p := sim.GridPos{X: x, Y: y}
			c, _ := f.CellAt(p)
			col, row := g.layout.cellToScreen(p)
			if c.Harvested {
				dst.SetColor(col, row, StubbleChar, core.ColorGray)
				continue
			}
			level := core.Clamp(c.Level, sim.MinLevel, sim.MaxLevel)
			for i := 0; i < cellCols; i++ {
				dst.SetColor(col+i, row, cropGlyphs[level], core.CropColor(level))
			}
		}
	}
}

func (g *Game) drawEntities(dst *core.Screen) {
	w := g.sim.World()

	w.Each(sim.KindItem, func(_ sim.Handle, e *sim.Entity) bool {
		col, row := g.layout.toScreen(e.Pos)
		color := core.ColorBrightMagenta
		// Blink during the last two seconds.
		if rem := e.Expiry.Remaining(); rem < 2*time.Second && (rem/(250*time.Millisecond))%2 == 0 {
			color = core.ColorMagenta
		}
		dst.SetColor(col, row, itemGlyphs[e.Mode], color)
		return true
	})

	w.Each(sim.KindEnemy, func(_ sim.Handle, e *sim.Entity) bool {
		col, row := g.layout.toScreen(e.Pos)
		dst.SetColor(col, row, EnemyChar, core.ColorBrightRed)
		return true
	})

	if c := g.sim.Combine(); c != nil {
		col, row := g.layout.toScreen(c.WorldPos())
		for i := 0; i < cellCols; i++ {
			dst.SetColor(col+i, row, CombineChar, core.ColorOrange)
		}
		t := g.sim.Turret()
		bcol, brow := g.layout.toScreen(t.Pos.Add(t.Aim.Scale(0.75)))
		dst.SetColor(bcol, brow, barrelGlyph(t.Aim), core.ColorBrightWhite)
	}

	w.Each(sim.KindBullet, func(_ sim.Handle, e *sim.Entity) bool {
		col, row := g.layout.toScreen(e.Pos)
		dst.SetColor(col, row, BulletChar, core.ColorBrightYellow)
		return true
	})

	if g.pointer.Valid && g.sim.State() == sim.StatePlaying {
		dst.SetColor(g.pointer.X, g.pointer.Y, CrosshairChar, core.ColorBrightCyan)
	}
}

// barrelGlyph picks a line character close to the aim direction.
func barrelGlyph(aim core.Vec2) rune {
	a := math.Atan2(aim.Y, aim.X)
	octant := int(math.Round(a/(math.Pi/4))) & 7
	return [8]rune{'─', '╱', '│', '╲', '─', '╱', '│', '╲'}[octant]
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.sim
	t := s.Turret()
	secs := int(g.elapsed.Seconds())
	hud := fmt.Sprintf(" %s  Harvested: %5.1f%%  Ammo: %2d/%d  Weapon: %-7s  Kills: %d  Time: %02d:%02d ",
		g.title, s.Score(), t.Ammo, s.Config().MaxAmmo, t.Mode, s.Kills(), secs/60, secs%60)
	r := g.layout.borderRect()
	dst.DrawTextColor(r.X, r.Y-1, hud, core.ColorBrightWhite)

	if t.Ammo == 0 && s.State() == sim.StatePlaying {
		dst.DrawTextColor(r.X+2, r.Bottom(), " no ammo: harvest to reload ", core.ColorYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
