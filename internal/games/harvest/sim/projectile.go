package sim

import (
	"time"

	"github.com/vovakirdan/harvest-defense/internal/core"
)

// integrate moves enemies and bullets along their velocities.
func (s *Sim) integrate() {
	secs := s.dt.Seconds()
	move := func(_ Handle, e *Entity) bool {
		e.Pos = e.Pos.Add(e.Vel.Scale(secs))
		return true
	}
	s.world.Each(KindEnemy, move)
	s.world.Each(KindBullet, move)
}

// expire advances bullet and item lifetimes and kills those that ran out.
func (s *Sim) expire() {
	tick := func(h Handle, e *Entity) bool {
		e.Expiry.Tick(s.dt)
		if e.Expiry.Finished() {
			s.world.Kill(h)
		}
		return true
	}
	s.world.Each(KindBullet, tick)
	s.world.Each(KindItem, tick)
}

type drop struct {
	pos  core.Vec2
	mode WeaponMode
}

// resolveBulletHits tests every bullet against every enemy. A hit kills both
// and may leave an item behind.
func (s *Sim) resolveBulletHits() {
	var drops []drop
	s.world.Each(KindBullet, func(bh Handle, b *Entity) bool {
		s.world.Each(KindEnemy, func(eh Handle, e *Entity) bool {
			if b.Pos.DistSq(e.Pos) >= s.cfg.BulletHitRadiusSq {
				return true
			}
			s.world.Kill(bh)
			s.world.Kill(eh)
			s.kills++
			s.emit(Event{Kind: EventEnemyKilled, Pos: e.Pos})
			if s.rng.Float64() < s.cfg.DropChance {
				drops = append(drops, drop{pos: e.Pos, mode: s.rollMode()})
			}
			return false
		})
		return true
	})

	for _, d := range drops {
		s.spawnItem(d.pos, d.mode, s.cfg.ItemTTL)
		s.emit(Event{Kind: EventItemDropped, Pos: d.pos, Mode: d.mode})
	}
}

func (s *Sim) spawnItem(pos core.Vec2, mode WeaponMode, ttl time.Duration) Handle {
	return s.world.Spawn(Entity{
		Kind:   KindItem,
		Pos:    pos,
		Mode:   mode,
		Expiry: core.NewTimer(ttl, false),
	})
}

// rollMode draws a weapon mode from the drop weights. Modes are visited in
// declaration order so the draw is reproducible.
func (s *Sim) rollMode() WeaponMode {
	total := 0
	for _, m := range Modes() {
		if w := s.cfg.DropWeights[m]; w > 0 {
			total += w
		}
	}
	if total == 0 {
		return ModeBase
	}
	r := s.rng.Intn(total)
	for _, m := range Modes() {
		w := s.cfg.DropWeights[m]
		if w <= 0 {
			continue
		}
		if r < w {
			return m
		}
		r -= w
	}
	return ModeBase
}

// resolvePickups hands the turret the mode of any item the combine touches.
func (s *Sim) resolvePickups() {
	pos, ok := s.combinePos()
	if !ok {
		return
	}
	s.world.Each(KindItem, func(h Handle, e *Entity) bool {
		if e.Pos.DistSq(pos) < s.cfg.PickupRadiusSq {
			s.turret.Mode = e.Mode
			s.world.Kill(h)
			s.emit(Event{Kind: EventItemCollected, Pos: e.Pos, Mode: e.Mode})
		}
		return true
	})
}
