package sim

import "github.com/vovakirdan/harvest-defense/internal/core"

// Snapshot is a comparable, copy-only view of the simulation.
type Snapshot struct {
	Tick      uint64
	State     State
	Outcome   Outcome
	Score     float64
	Ammo      int
	Mode      WeaponMode
	Kills     int
	Harvested int

	HasCombine bool
	CombineAt  GridPos
	CombineDir GridPos
	Aim        core.Vec2

	Enemies []core.Vec2
	Bullets []core.Vec2
	Items   []ItemView
}

// ItemView is an item as seen from outside the simulation.
type ItemView struct {
	Pos  core.Vec2
	Mode WeaponMode
}

// Snapshot copies the current state.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.ticks,
		State:     s.state,
		Outcome:   s.outcome,
		Score:     s.score,
		Ammo:      s.turret.Ammo,
		Mode:      s.turret.Mode,
		Kills:     s.kills,
		Harvested: s.field.HarvestedCount(),
		Aim:       s.turret.Aim,
	}
	if c := s.combine; c != nil {
		snap.HasCombine = true
		snap.CombineAt = c.Grid
		snap.CombineDir = c.Dir
	}
	s.world.Each(KindEnemy, func(_ Handle, e *Entity) bool {
		snap.Enemies = append(snap.Enemies, e.Pos)
		return true
	})
	s.world.Each(KindBullet, func(_ Handle, e *Entity) bool {
		snap.Bullets = append(snap.Bullets, e.Pos)
		return true
	})
	s.world.Each(KindItem, func(_ Handle, e *Entity) bool {
		snap.Items = append(snap.Items, ItemView{Pos: e.Pos, Mode: e.Mode})
		return true
	})
	return snap
}
