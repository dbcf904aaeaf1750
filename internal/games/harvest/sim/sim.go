package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/harvest-defense/internal/core"
)

// Sim is one simulation instance. It is not safe for concurrent use; the
// caller drives it from a single loop.
type Sim struct {
	cfg  Config
	seed int64
	rng  *rand.Rand

	state   State
	outcome Outcome

	field   *Field
	world   *World
	combine *Combine
	turret  Turret
	spawn   core.Timer

	score        float64
	kills        int
	ticks        uint64
	sessionTicks uint64

	// per-tick scratch
	dt     time.Duration
	events Events
}

// TickResult reports what a tick did.
type TickResult struct {
	State  State
	Events Events // owned by the caller
}

// New creates a simulation in the Ready state. The seed drives every
// random choice, so equal seeds and inputs replay identically.
func New(cfg Config, seed int64) *Sim {
	s := &Sim{
		cfg:   cfg,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
		state: StateReady,
		world: NewWorld(),
		spawn: core.NewTimer(spawnPeriod(cfg.SpawnInterval), true),
	}
	s.field = s.buildField()
	s.resetTurret()
	return s
}

func (s *Sim) buildField() *Field {
	layout := s.cfg.LayoutSeed
	if layout == 0 {
		layout = s.rng.Int63()
	}
	return NewField(s.cfg.Width, s.cfg.Height, FieldOptions{
		Levels:       s.cfg.Levels,
		Seed:         layout,
		Growth:       s.cfg.Growth,
		GrowthBase:   s.cfg.GrowthBase,
		GrowthSpread: s.cfg.GrowthSpread,
	})
}

// Tick advances the simulation by dt using the sampled input. Phases run in
// a fixed order and all of them see the same dt:
//
//  1. input:      steer the combine
//  2. aim/fire:   enemies turn to the combine, turret aims and fires
//  3. movement:   combine steps, crops grow, spawns, motion, lifetimes
//  4. resolution: harvest, ammo, score, bullet hits, player hits, pickups
//  5. state:      session transitions
//  6. sweep:      killed entities are removed
func (s *Sim) Tick(dt time.Duration, in Input) TickResult {
	if dt < 0 {
		dt = 0
	}
	s.dt = dt
	s.events = s.events[:0]
	s.ticks++

	if s.state == StatePlaying {
		s.sessionTicks++

		s.applyInput(in)

		s.aimEnemies()
		s.aimTurret(in)
		s.fireTurret(in)

		s.stepCombine()
		s.field.Grow(dt)
		s.spawnEnemies()
		s.integrate()
		s.expire()

		s.harvestEntered()
		s.replenishAmmo()
		s.rescore()
		s.resolveBulletHits()
		s.resolvePlayerHits()
		s.resolvePickups()
	}

	s.evaluateState(in)
	s.world.Sweep()

	out := make(Events, len(s.events))
	copy(out, s.events)
	return TickResult{State: s.state, Events: out}
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Sim) applyInput(in Input) {
	if s.combine != nil {
		s.combine.steer(in)
	}
}

func (s *Sim) stepCombine() {
	c := s.combine
	if c == nil {
		return
	}
	c.advance(s.dt, s.field)
	if e, ok := s.world.Get(c.handle); ok {
		e.Pos = c.WorldPos()
	}
}

// harvestEntered harvests each cell the combine entered this tick.
func (s *Sim) harvestEntered() {
	if s.combine == nil {
		return
	}
	for _, pos := range s.combine.entered {
		if units, ok := s.field.Harvest(pos); ok {
			s.emit(Event{Kind: EventHarvested, Cell: pos, Cells: 1, Units: units})
		}
	}
}

// rescore is the only writer of the score.
func (s *Sim) rescore() {
	if !s.events.Has(EventHarvested) {
		return
	}
	if score := s.field.Score(); score > s.score {
		s.score = score
	}
}

// combinePos returns the combine's world position, if a combine exists.
func (s *Sim) combinePos() (core.Vec2, bool) {
	if s.combine == nil {
		return core.Vec2{}, false
	}
	e, ok := s.world.Get(s.combine.handle)
	if !ok {
		return core.Vec2{}, false
	}
	return e.Pos, true
}

// Config returns the configuration the simulation runs with.
func (s *Sim) Config() Config { return s.cfg }

// Seed returns the session seed.
func (s *Sim) Seed() int64 { return s.seed }

// State returns the session phase.
func (s *Sim) State() State { return s.state }

// Outcome returns why the last session ended.
func (s *Sim) Outcome() Outcome { return s.outcome }

// Field returns the crop field. Callers must not mutate it.
func (s *Sim) Field() *Field { return s.field }

// World returns the entity registry. Callers must not mutate it.
func (s *Sim) World() *World { return s.world }

// Combine returns the combine, or nil outside a session.
func (s *Sim) Combine() *Combine { return s.combine }

// Turret returns a copy of the turret state.
func (s *Sim) Turret() Turret { return s.turret }

// Score returns the harvested percentage.
func (s *Sim) Score() float64 { return s.score }

// Ammo returns the turret's ammo.
func (s *Sim) Ammo() int { return s.turret.Ammo }

// Mode returns the turret's weapon mode.
func (s *Sim) Mode() WeaponMode { return s.turret.Mode }

// Kills returns the enemies shot this session.
func (s *Sim) Kills() int { return s.kills }

// Ticks returns the ticks run since New.
func (s *Sim) Ticks() uint64 { return s.ticks }

// SessionTicks returns the ticks run in the current or last session.
func (s *Sim) SessionTicks() uint64 { return s.sessionTicks }

// Pace is the enemy pressure applied from outside the simulation, such as
// a difficulty ramp.
type Pace struct {
	EnemySpeed    float64
	SpawnInterval time.Duration
}

// SetPace changes enemy speed and spawn cadence. Enemies re-aim every tick,
// so a new speed applies from the next tick on.
func (s *Sim) SetPace(p Pace) {
	if p.EnemySpeed >= 0 {
		s.cfg.EnemySpeed = p.EnemySpeed
	}
	if p.SpawnInterval > 0 {
		s.cfg.SpawnInterval = spawnPeriod(p.SpawnInterval)
		s.spawn.SetDuration(s.cfg.SpawnInterval)
	}
}
