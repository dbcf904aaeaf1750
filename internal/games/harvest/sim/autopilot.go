package sim

import "github.com/vovakirdan/harvest-defense/internal/core"

// Autopilot is a simple scripted player used for headless runs. It drives
// the combine toward the nearest standing crop and shoots the nearest
// enemy.
type Autopilot struct {
	started bool
}

// Input decides the next input sample for s.
func (a *Autopilot) Input(s *Sim) Input {
	var in Input
	switch s.State() {
	case StateReady:
		in.Start = !a.started
		a.started = true
		return in
	case StateGameOver:
		return in
	}
	a.started = false

	c := s.Combine()
	if c == nil {
		return in
	}
	if target, ok := nearestCrop(s.Field(), c.Grid); ok {
		a.steer(&in, c, target)
	}

	origin := s.Turret().Pos
	best := -1.0
	s.World().Each(KindEnemy, func(_ Handle, e *Entity) bool {
		d := e.Pos.DistSq(origin)
		if best < 0 || d < best {
			best = d
			in.Pointer = e.Pos
			in.HasPointer = true
		}
		return true
	})
	in.Fire = in.HasPointer
	return in
}

func (a *Autopilot) steer(in *Input, c *Combine, target GridPos) {
	dx := target.X - c.Grid.X
	dy := target.Y - c.Grid.Y
	want := func(d GridPos) bool { return d != c.Dir.Neg() }

	horiz := DirRight
	if dx < 0 {
		horiz = DirLeft
	}
	vert := DirUp
	if dy < 0 {
		vert = DirDown
	}

	var pick GridPos
	switch {
	case dx != 0 && (core.Abs(dx) >= core.Abs(dy) || dy == 0) && want(horiz):
		pick = horiz
	case dy != 0 && want(vert):
		pick = vert
	case dx != 0 && want(horiz):
		pick = horiz
	default:
		// Target is straight behind or underneath: turn aside first and
		// let the edge bounce sort out the rest.
		pick = DirRight
		if c.Dir.X != 0 {
			pick = DirUp
		}
	}
	switch pick {
	case DirUp:
		in.Up = true
	case DirDown:
		in.Down = true
	case DirLeft:
		in.Left = true
	case DirRight:
		in.Right = true
	}
}

// nearestCrop finds the closest unharvested cell by Manhattan distance,
// ties broken by row-major order.
func nearestCrop(f *Field, from GridPos) (GridPos, bool) {
	best := GridPos{}
	bestDist := -1
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			p := GridPos{X: x, Y: y}
			c, _ := f.CellAt(p)
			if c.Harvested {
				continue
			}
			d := core.Abs(p.X-from.X) + core.Abs(p.Y-from.Y)
			if bestDist < 0 || d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best, bestDist >= 0
}
