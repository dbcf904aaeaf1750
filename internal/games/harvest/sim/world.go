package sim

import "github.com/vovakirdan/harvest-defense/internal/core"

// Kind tags what an entity is. Each kind has its own update functions in
// the tick; there is no dynamic dispatch.
type Kind uint8

const (
	KindCombine Kind = iota
	KindEnemy
	KindBullet
	KindItem
	kindCount
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCombine:
		return "combine"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// Handle is a stable reference to an entity. A handle goes stale once its
// entity is swept; stale handles never resolve to a newer occupant of the
// same slot.
type Handle struct {
	index uint32
	gen   uint32
}

// NoHandle never resolves.
var NoHandle Handle

// Valid reports whether h was ever issued.
func (h Handle) Valid() bool { return h.gen != 0 }

// Entity is one record in the world.
//
//	Combine: Pos mirrors the controller's interpolated position.
//	Enemy:   Vel is the current heading scaled by speed.
//	Bullet:  Vel is fixed at fire time, Expiry is the time-to-live.
//	Item:    Mode is the granted weapon mode, Expiry the pickup window.
type Entity struct {
	Kind   Kind
	Pos    core.Vec2
	Vel    core.Vec2
	Expiry core.Timer
	Mode   WeaponMode

	dead bool
}

// Dead reports whether the entity was killed this tick and awaits the sweep.
func (e *Entity) Dead() bool { return e.dead }

type slot struct {
	gen  uint32
	live bool
	ent  Entity
}

// World is an arena of entities addressed by generational handles.
// Iteration follows slot order, so it is deterministic for a given history.
type World struct {
	slots []slot
	free  []uint32
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Spawn adds an entity and returns its handle.
func (w *World) Spawn(e Entity) Handle {
	e.dead = false
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}
	s := &w.slots[idx]
	s.gen++
	s.live = true
	s.ent = e
	return Handle{index: idx, gen: s.gen}
}

// Get resolves a handle to a live, not yet killed entity.
// The pointer is valid until the next Spawn.
func (w *World) Get(h Handle) (*Entity, bool) {
	if !h.Valid() || int(h.index) >= len(w.slots) {
		return nil, false
	}
	s := &w.slots[h.index]
	if !s.live || s.gen != h.gen || s.ent.dead {
		return nil, false
	}
	return &s.ent, true
}

// Kill flags an entity for removal at the next Sweep. Killing a stale or
// already killed handle returns false.
func (w *World) Kill(h Handle) bool {
	e, ok := w.Get(h)
	if !ok {
		return false
	}
	e.dead = true
	return true
}

// Sweep removes every killed entity and returns how many were removed.
func (w *World) Sweep() int {
	removed := 0
	for i := range w.slots {
		s := &w.slots[i]
		if s.live && s.ent.dead {
			s.live = false
			s.ent = Entity{}
			w.free = append(w.free, uint32(i))
			removed++
		}
	}
	return removed
}

// Each calls fn for every live entity of the given kind until fn returns
// false. Killed entities are skipped. Entities spawned during the walk are
// not visited; callers that spawn should collect and spawn afterwards.
func (w *World) Each(kind Kind, fn func(h Handle, e *Entity) bool) {
	n := len(w.slots)
	for i := 0; i < n; i++ {
		s := &w.slots[i]
		if !s.live || s.ent.dead || s.ent.Kind != kind {
			continue
		}
		if !fn(Handle{index: uint32(i), gen: s.gen}, &s.ent) {
			return
		}
	}
}

// Count returns the number of live entities of a kind.
func (w *World) Count(kind Kind) int {
	n := 0
	w.Each(kind, func(Handle, *Entity) bool {
		n++
		return true
	})
	return n
}

// Len returns the number of occupied slots, killed entities included.
func (w *World) Len() int {
	n := 0
	for i := range w.slots {
		if w.slots[i].live {
			n++
		}
	}
	return n
}

// Clear removes every entity. Outstanding handles go stale.
func (w *World) Clear() {
	w.free = w.free[:0]
	for i := range w.slots {
		s := &w.slots[i]
		if s.live {
			s.live = false
			s.ent = Entity{}
		}
	}
	for i := len(w.slots) - 1; i >= 0; i-- {
		w.free = append(w.free, uint32(i))
	}
}
