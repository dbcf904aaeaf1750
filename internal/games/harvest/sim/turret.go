package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/harvest-defense/internal/core"
)

// WeaponMode selects the bullet fan the turret fires.
type WeaponMode uint8

const (
	ModeBase WeaponMode = iota
	ModeFast
	ModeShotgun
	ModeSplit
	ModeReverse
	ModeNuke
)

// Modes lists every weapon mode in declaration order.
func Modes() []WeaponMode {
	return []WeaponMode{ModeBase, ModeFast, ModeShotgun, ModeSplit, ModeReverse, ModeNuke}
}

// String returns the mode name.
func (m WeaponMode) String() string {
	switch m {
	case ModeBase:
		return "base"
	case ModeFast:
		return "fast"
	case ModeShotgun:
		return "shotgun"
	case ModeSplit:
		return "split"
	case ModeReverse:
		return "reverse"
	case ModeNuke:
		return "nuke"
	default:
		return "unknown"
	}
}

// ParseMode resolves a mode name.
func ParseMode(name string) (WeaponMode, bool) {
	for _, m := range Modes() {
		if m.String() == name {
			return m, true
		}
	}
	return ModeBase, false
}

const (
	spreadHalfAngle = 0.2
	nukeBullets     = 30
)

// Fan returns the bullet angles, relative to the aim, and the speed
// multiplier for a mode.
func Fan(m WeaponMode) (angles []float64, speedMul float64) {
	switch m {
	case ModeFast:
		return []float64{0}, 2
	case ModeShotgun:
		return linspace(-spreadHalfAngle, spreadHalfAngle, 3, true), 1
	case ModeSplit:
		return linspace(-spreadHalfAngle, spreadHalfAngle, 2, true), 1
	case ModeReverse:
		return []float64{math.Pi}, 1
	case ModeNuke:
		// -π and π are the same heading, so the upper end is left out.
		return linspace(-math.Pi, math.Pi, nukeBullets, false), 1
	default:
		return []float64{0}, 1
	}
}

// linspace returns n evenly spaced values from lo towards hi.
func linspace(lo, hi float64, n int, inclusive bool) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{(lo + hi) / 2}
	}
	div := float64(n)
	if inclusive {
		div = float64(n - 1)
	}
	step := (hi - lo) / div
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// Turret rides on the combine and fires at the pointer.
type Turret struct {
	Pos  core.Vec2
	Aim  core.Vec2 // unit vector
	Mode WeaponMode
	Ammo int

	cooldown core.Timer
}

func (s *Sim) resetTurret() {
	s.turret = Turret{
		Aim:      core.V(1, 0),
		Mode:     ModeBase,
		cooldown: core.NewFinishedTimer(s.cfg.Cooldown),
	}
	if pos, ok := s.combinePos(); ok {
		s.turret.Pos = pos.Add(s.turretOffset())
	}
}

func (s *Sim) turretOffset() core.Vec2 {
	return core.V(s.cfg.TurretOffset[0], s.cfg.TurretOffset[1])
}

// CooldownRemaining returns the time until the turret may fire again.
func (t *Turret) CooldownRemaining() time.Duration {
	return t.cooldown.Remaining()
}

// aimTurret pins the turret to the combine and turns it toward the pointer.
// A degenerate aim vector keeps the previous heading.
func (s *Sim) aimTurret(in Input) {
	pos, ok := s.combinePos()
	if !ok {
		return
	}
	s.turret.Pos = pos.Add(s.turretOffset())
	if !in.HasPointer {
		return
	}
	if dir, ok := in.Pointer.Sub(s.turret.Pos).Normalize(); ok {
		s.turret.Aim = dir
	}
}

// fireTurret fires one fan when the cooldown is over, fire is held and
// ammo remains. Refusals are silent.
func (s *Sim) fireTurret(in Input) {
	t := &s.turret
	t.cooldown.Tick(s.dt)
	if !in.Fire || t.Ammo <= 0 || !t.cooldown.Finished() {
		return
	}
	if _, ok := s.combinePos(); !ok {
		return
	}

	t.Ammo--
	t.cooldown.Reset()

	mode := t.Mode
	angles, mul := Fan(mode)
	speed := s.cfg.BulletSpeed * mul
	for _, a := range angles {
		s.world.Spawn(Entity{
			Kind:   KindBullet,
			Pos:    t.Pos,
			Vel:    t.Aim.Rotate(a).Scale(speed),
			Expiry: core.NewTimer(s.cfg.BulletTTL, false),
		})
	}
	if mode == ModeNuke {
		t.Mode = ModeBase
	}
	s.emit(Event{Kind: EventShotFired, Pos: t.Pos, Mode: mode, Bullets: len(angles)})
}

// replenishAmmo credits ammo once for every cell harvested this tick.
func (s *Sim) replenishAmmo() {
	cells, _ := s.events.HarvestTotals()
	if cells == 0 {
		return
	}
	s.turret.Ammo = core.Min(s.cfg.MaxAmmo, s.turret.Ammo+cells*s.cfg.AmmoPerCell)
}
