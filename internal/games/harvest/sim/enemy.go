package sim

import "github.com/vovakirdan/harvest-defense/internal/core"

// spawnPoint picks a position one cell outside a uniformly chosen field
// edge, uniform along that edge.
func (s *Sim) spawnPoint() core.Vec2 {
	w, h := s.field.Width(), s.field.Height()
	switch s.rng.Intn(4) {
	case 0:
		return core.V(-1, float64(s.rng.Intn(h)))
	case 1:
		return core.V(float64(w), float64(s.rng.Intn(h)))
	case 2:
		return core.V(float64(s.rng.Intn(w)), -1)
	default:
		return core.V(float64(s.rng.Intn(w)), float64(h))
	}
}

// spawnEnemy adds an enemy already heading for the combine.
func (s *Sim) spawnEnemy(pos core.Vec2) Handle {
	e := Entity{Kind: KindEnemy, Pos: pos}
	if target, ok := s.combinePos(); ok {
		s.steerEnemy(&e, target)
	}
	return s.world.Spawn(e)
}

func (s *Sim) steerEnemy(e *Entity, target core.Vec2) {
	dir, ok := target.Sub(e.Pos).Normalize()
	if !ok {
		return
	}
	e.Vel = dir.Scale(s.cfg.EnemySpeed)
}

// aimEnemies re-aims every enemy at the combine. Without a combine the
// headings are left alone.
func (s *Sim) aimEnemies() {
	target, ok := s.combinePos()
	if !ok {
		return
	}
	s.world.Each(KindEnemy, func(_ Handle, e *Entity) bool {
		s.steerEnemy(e, target)
		return true
	})
}

func (s *Sim) spawnEnemies() {
	n := s.spawn.Tick(s.dt)
	for i := 0; i < n; i++ {
		s.spawnEnemy(s.spawnPoint())
	}
}

// resolvePlayerHits raises one PlayerHit per enemy touching the combine.
// The enemy is destroyed; ending the session is left to evaluateState.
func (s *Sim) resolvePlayerHits() {
	target, ok := s.combinePos()
	if !ok {
		return
	}
	s.world.Each(KindEnemy, func(h Handle, e *Entity) bool {
		if e.Pos.DistSq(target) < s.cfg.HitRadiusSq {
			s.world.Kill(h)
			s.emit(Event{Kind: EventPlayerHit, Pos: e.Pos})
		}
		return true
	})
}
