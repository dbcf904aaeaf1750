package sim

import (
	"time"

	"github.com/vovakirdan/harvest-defense/internal/core"
)

// Combine is the player's harvester. It moves one cell per step period
// and its world position is interpolated from the step timer, so it never
// drifts from its grid position.
type Combine struct {
	Grid       GridPos
	Dir        GridPos
	Pending    GridPos
	HasPending bool

	step    core.Timer
	handle  Handle
	entered []GridPos // cells entered during the current tick
}

func newCombine(at GridPos, period time.Duration) *Combine {
	return &Combine{
		Grid: at,
		Dir:  DirRight,
		step: core.NewTimer(period, true),
	}
}

// WorldPos returns the interpolated position between the current cell and
// the next one.
func (c *Combine) WorldPos() core.Vec2 {
	return c.Grid.Vec2().Add(c.Dir.Vec2().Scale(c.step.Fraction()))
}

// StepFraction returns how far the combine is into its current step.
func (c *Combine) StepFraction() float64 {
	return c.step.Fraction()
}

// steer latches the first held direction, in priority order Up, Down, Left,
// Right, that does not reverse the current heading.
func (c *Combine) steer(in Input) {
	candidates := [...]struct {
		held bool
		dir  GridPos
	}{
		{in.Up, DirUp},
		{in.Down, DirDown},
		{in.Left, DirLeft},
		{in.Right, DirRight},
	}
	for _, cand := range candidates {
		if !cand.held {
			continue
		}
		if !c.Dir.IsZero() && cand.dir == c.Dir.Neg() {
			continue
		}
		c.Pending = cand.dir
		c.HasPending = true
		return
	}
}

// advance ticks the step timer and moves the combine once per completion.
// Entered cells are recorded for the harvest phase.
func (c *Combine) advance(dt time.Duration, f *Field) {
	c.entered = c.entered[:0]
	n := c.step.Tick(dt)
	for i := 0; i < n; i++ {
		if !c.Dir.IsZero() {
			c.Grid = c.Grid.Add(c.Dir)
			c.entered = append(c.entered, c.Grid)
		}
		if c.HasPending {
			c.Dir = c.Pending
			c.HasPending = false
		}
		c.bounce(f)
	}
}

// bounce inverts any axis of the heading that would leave the field on the
// next step. A field too narrow to bounce within stops the combine on that
// axis.
func (c *Combine) bounce(f *Field) {
	next := c.Grid.Add(c.Dir)
	if next.X < 0 || next.X >= f.Width() {
		c.Dir.X = -c.Dir.X
		if nx := c.Grid.X + c.Dir.X; nx < 0 || nx >= f.Width() {
			c.Dir.X = 0
		}
	}
	if next.Y < 0 || next.Y >= f.Height() {
		c.Dir.Y = -c.Dir.Y
		if ny := c.Grid.Y + c.Dir.Y; ny < 0 || ny >= f.Height() {
			c.Dir.Y = 0
		}
	}
}
