package sim

import (
	"time"

	"github.com/vovakirdan/harvest-defense/internal/core"
)

// Crop levels.
const (
	MinLevel = 1
	MaxLevel = 4
)

// noise lattice spacing in cells for the initial layout and growth rates
const (
	layoutNoiseScale = 5
	growthNoiseScale = 3
)

// Cell is one square of the field.
type Cell struct {
	Level     int
	Harvested bool

	grow core.Timer
}

// Crop reports whether the cell still holds an unharvested crop.
func (c Cell) Crop() bool {
	return !c.Harvested
}

// FieldOptions controls field generation.
type FieldOptions struct {
	Levels       LevelMode
	Seed         int64
	Growth       bool
	GrowthBase   time.Duration
	GrowthSpread time.Duration
}

// Field is the crop grid. Cells are stored row-major, y*Width + x.
type Field struct {
	width, height int
	cells         []Cell
	harvested     int
	growth        bool
}

// NewField builds a fresh field of crops.
func NewField(width, height int, opts FieldOptions) *Field {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f := &Field{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		growth: opts.Growth,
	}

	layout := newValueNoise(opts.Seed, layoutNoiseScale)
	rates := newValueNoise(opts.Seed^0x5bd1e995, growthNoiseScale)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &f.cells[y*width+x]
			c.Level = MinLevel
			if opts.Levels != LevelsFlat {
				c.Level = MinLevel + int(layout.At(x, y)*MaxLevel)
				c.Level = core.Clamp(c.Level, MinLevel, MaxLevel)
			}
			if opts.Growth {
				interval := opts.GrowthBase + time.Duration(rates.At(x, y)*float64(opts.GrowthSpread))
				c.grow = core.NewTimer(interval, true)
			}
		}
	}
	return f
}

// Width returns the field width in cells.
func (f *Field) Width() int { return f.width }

// Height returns the field height in cells.
func (f *Field) Height() int { return f.height }

// Total returns the number of cells.
func (f *Field) Total() int { return len(f.cells) }

// HarvestedCount returns the number of harvested cells.
func (f *Field) HarvestedCount() int { return f.harvested }

// InBounds reports whether pos lies on the field.
func (f *Field) InBounds(pos GridPos) bool {
	return pos.X >= 0 && pos.X < f.width && pos.Y >= 0 && pos.Y < f.height
}

func (f *Field) index(pos GridPos) (int, bool) {
	if !f.InBounds(pos) {
		return 0, false
	}
	return pos.Y*f.width + pos.X, true
}

// CellAt returns the cell at pos. ok is false outside the field.
func (f *Field) CellAt(pos GridPos) (Cell, bool) {
	i, ok := f.index(pos)
	if !ok {
		return Cell{}, false
	}
	return f.cells[i], true
}

// CellAtWorld rounds a world position to the nearest cell and looks it up.
func (f *Field) CellAtWorld(v core.Vec2) (GridPos, Cell, bool) {
	pos := v.Round()
	c, ok := f.CellAt(pos)
	return pos, c, ok
}

// Harvest turns the crop at pos into stubble and returns its level.
// Harvesting an already harvested or out-of-bounds cell is a no-op.
func (f *Field) Harvest(pos GridPos) (units int, ok bool) {
	i, in := f.index(pos)
	if !in {
		return 0, false
	}
	c := &f.cells[i]
	if c.Harvested {
		return 0, false
	}
	c.Harvested = true
	f.harvested++
	return c.Level, true
}

// Grow advances every crop's growth timer by dt.
// It returns the number of level increments applied.
func (f *Field) Grow(dt time.Duration) int {
	if !f.growth {
		return 0
	}
	grown := 0
	for i := range f.cells {
		c := &f.cells[i]
		if c.Harvested || c.Level >= MaxLevel {
			continue
		}
		n := c.grow.Tick(dt)
		if n == 0 {
			continue
		}
		before := c.Level
		c.Level = core.Clamp(c.Level+n, MinLevel, MaxLevel)
		grown += c.Level - before
	}
	return grown
}

// Score returns the harvested percentage in [0, 100].
func (f *Field) Score() float64 {
	if len(f.cells) == 0 {
		return 0
	}
	return 100 * float64(f.harvested) / float64(len(f.cells))
}
