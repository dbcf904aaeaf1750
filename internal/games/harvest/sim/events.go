package sim

import "github.com/vovakirdan/harvest-defense/internal/core"

// EventKind identifies what happened during a tick.
type EventKind uint8

const (
	EventHarvested EventKind = iota + 1
	EventPlayerHit
	EventShotFired
	EventEnemyKilled
	EventItemDropped
	EventItemCollected
	EventStateChanged
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventHarvested:
		return "harvested"
	case EventPlayerHit:
		return "player_hit"
	case EventShotFired:
		return "shot_fired"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventItemDropped:
		return "item_dropped"
	case EventItemCollected:
		return "item_collected"
	case EventStateChanged:
		return "state_changed"
	default:
		return "unknown"
	}
}

// Event is a plain value describing one occurrence. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind EventKind

	Cell  GridPos   // Harvested
	Cells int       // Harvested: cells cleared
	Units int       // Harvested: crop level collected
	Pos   core.Vec2 // PlayerHit, EnemyKilled, ItemDropped, ItemCollected

	Mode    WeaponMode // ShotFired, ItemDropped, ItemCollected
	Bullets int        // ShotFired

	From, To State   // StateChanged
	Outcome  Outcome // StateChanged into GameOver
}

// Events is the list raised during one tick, in phase order.
type Events []Event

// Count returns how many events of kind k are in the list.
func (es Events) Count(k EventKind) int {
	n := 0
	for i := range es {
		if es[i].Kind == k {
			n++
		}
	}
	return n
}

// Has reports whether any event of kind k is in the list.
func (es Events) Has(k EventKind) bool {
	for i := range es {
		if es[i].Kind == k {
			return true
		}
	}
	return false
}

// HarvestTotals sums cells and units over every Harvested event.
func (es Events) HarvestTotals() (cells, units int) {
	for i := range es {
		if es[i].Kind == EventHarvested {
			cells += es[i].Cells
			units += es[i].Units
		}
	}
	return cells, units
}
