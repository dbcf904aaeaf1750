// Package sim is the deterministic simulation core of Harvest Defense.
// It owns the crop field, the combine, the turret, enemies, bullets and
// pickups, and advances them one tick at a time from sampled input and an
// elapsed-time sample. It performs no I/O and knows nothing about rendering.
package sim

import "github.com/vovakirdan/harvest-defense/internal/core"

// GridPos is an integer cell position on the field.
type GridPos = core.IVec2

// Cardinal unit directions in world space (Y grows upward).
var (
	DirRight = core.IV(1, 0)
	DirLeft  = core.IV(-1, 0)
	DirUp    = core.IV(0, 1)
	DirDown  = core.IV(0, -1)
)

// DirName returns a short name for a cardinal direction.
func DirName(d core.IVec2) string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// State is the top-level session phase.
type State uint8

const (
	StateReady State = iota
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome explains why a session ended.
type Outcome uint8

const (
	OutcomeNone    Outcome = iota
	OutcomeCaught          // an enemy reached the combine
	OutcomeCleared         // every cell was harvested
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCaught:
		return "caught"
	case OutcomeCleared:
		return "cleared"
	default:
		return "none"
	}
}

// Input is the per-tick input sample. Movement and fire are held states;
// Start is edge-triggered (true only on the tick it was pressed).
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool
	Start                 bool

	Pointer    core.Vec2 // pointer position in world units
	HasPointer bool
}
