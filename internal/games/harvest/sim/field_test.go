package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/harvest-defense/internal/core"
)

func flatField(w, h int) *Field {
	return NewField(w, h, FieldOptions{Levels: LevelsFlat})
}

func TestFieldHarvestIdempotent(t *testing.T) {
	f := flatField(31, 15)
	pos := GridPos{X: 4, Y: 2}

	units, ok := f.Harvest(pos)
	require.True(t, ok)
	assert.Equal(t, 1, units)

	units, ok = f.Harvest(pos)
	assert.False(t, ok)
	assert.Zero(t, units)
	assert.Equal(t, 1, f.HarvestedCount())

	c, ok := f.CellAt(pos)
	require.True(t, ok)
	assert.True(t, c.Harvested)
	assert.False(t, c.Crop())
}

func TestFieldBoundsClosure(t *testing.T) {
	f := flatField(31, 15)
	outside := []GridPos{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 31, Y: 0},
		{X: 0, Y: 15},
		{X: 31, Y: 15},
		{X: -100, Y: 100},
	}
	for _, p := range outside {
		_, ok := f.CellAt(p)
		assert.False(t, ok, "CellAt(%v)", p)
		_, ok = f.Harvest(p)
		assert.False(t, ok, "Harvest(%v)", p)
	}
	assert.Zero(t, f.HarvestedCount())

	_, ok := f.CellAt(GridPos{X: 30, Y: 14})
	assert.True(t, ok)
}

func TestFieldScoreScenarios(t *testing.T) {
	f := flatField(31, 15)
	require.Equal(t, 465, f.Total())

	n := 0
	for y := 0; y < f.Height() && n < 116; y++ {
		for x := 0; x < f.Width() && n < 116; x++ {
			_, ok := f.Harvest(GridPos{X: x, Y: y})
			require.True(t, ok)
			n++
		}
	}
	assert.InDelta(t, 25, f.Score(), 0.1)

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			f.Harvest(GridPos{X: x, Y: y})
		}
	}
	assert.Equal(t, 465, f.HarvestedCount())
	assert.Equal(t, 100.0, f.Score())
}

func TestFieldCellAtWorldRounds(t *testing.T) {
	f := flatField(10, 10)
	pos, _, ok := f.CellAtWorld(core.V(2.4, 3.6))
	require.True(t, ok)
	assert.Equal(t, GridPos{X: 2, Y: 4}, pos)

	_, _, ok = f.CellAtWorld(core.V(-0.6, 0))
	assert.False(t, ok)
}

func TestFieldNoiseLayout(t *testing.T) {
	a := NewField(31, 15, FieldOptions{Levels: LevelsNoise, Seed: 42})
	b := NewField(31, 15, FieldOptions{Levels: LevelsNoise, Seed: 42})

	seen := map[int]bool{}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			ca, _ := a.CellAt(GridPos{X: x, Y: y})
			cb, _ := b.CellAt(GridPos{X: x, Y: y})
			require.Equal(t, ca.Level, cb.Level)
			require.GreaterOrEqual(t, ca.Level, MinLevel)
			require.LessOrEqual(t, ca.Level, MaxLevel)
			seen[ca.Level] = true
		}
	}
	assert.Greater(t, len(seen), 1, "noise layout should not be flat")
}

func TestFieldGrowth(t *testing.T) {
	f := NewField(4, 4, FieldOptions{
		Levels:     LevelsFlat,
		Growth:     true,
		GrowthBase: time.Second,
	})
	stubble := GridPos{X: 0, Y: 0}
	f.Harvest(stubble)

	assert.Equal(t, 15, f.Grow(time.Second))
	c, _ := f.CellAt(GridPos{X: 1, Y: 1})
	assert.Equal(t, 2, c.Level)

	f.Grow(10 * time.Second)
	c, _ = f.CellAt(GridPos{X: 3, Y: 3})
	assert.Equal(t, MaxLevel, c.Level)

	c, _ = f.CellAt(stubble)
	assert.Equal(t, 1, c.Level, "harvested cells do not grow")

	units, ok := f.Harvest(GridPos{X: 2, Y: 2})
	require.True(t, ok)
	assert.Equal(t, MaxLevel, units)
}

func TestFieldGrowthDisabled(t *testing.T) {
	f := flatField(4, 4)
	assert.Zero(t, f.Grow(time.Hour))
	c, _ := f.CellAt(GridPos{X: 1, Y: 1})
	assert.Equal(t, 1, c.Level)
}
