// Package harvest adapts the harvest simulation to the arcade platform.
// It maps platform input to simulation input, applies configuration and
// difficulty, draws the field into a screen buffer and turns simulation
// events into presentation cues.
package harvest

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/harvest-defense/internal/config"
	"github.com/vovakirdan/harvest-defense/internal/core"
	"github.com/vovakirdan/harvest-defense/internal/games/harvest/sim"
	"github.com/vovakirdan/harvest-defense/internal/registry"
)

// Variant IDs.
const (
	IDHarvest = "harvest"
	IDClassic = "harvest_classic"
)

// hitFlashTicks is how long the field border flashes after a hit.
const hitFlashTicks = 20

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the config file path used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by new games.
// Unknown names leave the config untouched.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game is the platform adapter around a sim.Sim.
type Game struct {
	id      string
	title   string
	classic bool

	cfg        config.HarvestConfig
	cfgLoaded  bool
	difficulty *config.DifficultyManager

	sim     *sim.Sim
	runtime core.RuntimeConfig
	dt      time.Duration
	layout  layout

	paused   bool
	hitFlash int
	elapsed  time.Duration
	pointer  core.Pointer
}

// New creates the standard harvest game: graded crops that grow.
func New() *Game {
	return &Game{id: IDHarvest, title: "Harvest Defense"}
}

// NewClassic creates the classic variant: flat crops, no growth.
func NewClassic() *Game {
	return &Game{id: IDClassic, title: "Harvest Defense (Classic)", classic: true}
}

// NewWithConfig creates a game with an explicit configuration, bypassing
// the config search path.
func NewWithConfig(id string, cfg config.HarvestConfig) *Game {
	g := New()
	if id == IDClassic {
		g = NewClassic()
	}
	g.applyVariant(&cfg)
	g.cfg = cfg
	g.cfgLoaded = true
	return g
}

// applyVariant forces the crop rules of the classic variant.
func (g *Game) applyVariant(cfg *config.HarvestConfig) {
	if g.classic {
		cfg.Crops.InitialLevels = "flat"
		cfg.Crops.Growth.Enabled = false
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// loadConfig resolves the configuration once per game instance.
func (g *Game) loadConfig() {
	if g.cfgLoaded {
		return
	}
	cfg, err := config.LoadHarvest(configPath)
	if err != nil {
		cfg = config.DefaultHarvestConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHarvestPreset(&cfg, difficultyPreset)
	}
	g.applyVariant(&cfg)
	g.cfg = cfg
	g.cfgLoaded = true
}

// Reset initializes the simulation. The session itself starts on the
// player's start input.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.loadConfig()
	g.runtime = rt
	g.dt = rt.TickInterval()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.sim = sim.New(SimConfig(g.cfg), rt.Seed)
	g.paused = false
	g.hitFlash = 0
	g.elapsed = 0
	g.pointer = core.Pointer{}
	g.layout = newLayout(rt.ScreenW, rt.ScreenH, g.cfg.Field.Width, g.cfg.Field.Height)
}

// Resize adapts the layout to a new screen size without touching the
// session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.layout = newLayout(w, h, g.cfg.Field.Width, g.cfg.Field.Height)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionPause) && g.sim.State() == sim.StatePlaying {
		g.paused = !g.paused
	}
	if in.Pointer.Valid {
		g.pointer = in.Pointer
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.Drive(g.simInput(in))
	if g.hitFlash > 0 {
		g.hitFlash--
	}
	cues := g.cues(res.Events)

	return core.StepResult{State: g.State(), Cues: cues}
}

// Drive advances the simulation by one tick with a prepared input,
// applying the difficulty ramp. Headless runs use it in place of Step.
func (g *Game) Drive(in sim.Input) sim.TickResult {
	if g.sim.State() == sim.StatePlaying {
		g.applyDifficulty()
	}
	res := g.sim.Tick(g.dt, in)
	if res.Events.Has(sim.EventStateChanged) && g.sim.State() == sim.StatePlaying {
		g.elapsed = 0
	}
	if g.sim.State() == sim.StatePlaying {
		g.elapsed += g.dt
	}
	return res
}

// applyDifficulty feeds the current difficulty level into the enemy pace.
func (g *Game) applyDifficulty() {
	score := int(g.sim.Score())
	ticks := int(g.sim.SessionTicks())
	base := SimConfig(g.cfg)
	g.sim.SetPace(sim.Pace{
		EnemySpeed:    g.difficulty.Speed(base.EnemySpeed, score, ticks),
		SpawnInterval: g.difficulty.SpawnInterval(base.SpawnInterval, score, ticks),
	})
}

// simInput converts platform actions into a simulation input sample.
func (g *Game) simInput(in core.InputFrame) sim.Input {
	si := sim.Input{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
		Start: in.Has(core.ActionStart) || in.Has(core.ActionConfirm),
	}
	if g.pointer.Valid {
		si.Pointer = g.layout.toWorld(g.pointer.X, g.pointer.Y)
		si.HasPointer = true
	}
	return si
}

// cues maps simulation events to presentation cues. Repeated events of one
// kind in a tick produce a single cue.
func (g *Game) cues(events sim.Events) []core.Cue {
	var cues []core.Cue
	add := func(c core.Cue) {
		for _, have := range cues {
			if have == c {
				return
			}
		}
		cues = append(cues, c)
	}
	for _, e := range events {
		switch e.Kind {
		case sim.EventHarvested:
			add(core.CueHarvest)
		case sim.EventShotFired:
			add(core.CueShot)
		case sim.EventEnemyKilled:
			add(core.CueEnemyDown)
		case sim.EventItemCollected:
			add(core.CuePickup)
		case sim.EventPlayerHit:
			g.hitFlash = hitFlashTicks
			add(core.CuePlayerHit)
		case sim.EventStateChanged:
			if e.To == sim.StatePlaying {
				g.paused = false
				add(core.CueStart)
			}
		}
	}
	return cues
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(math.Round(g.sim.Score())),
		GameOver: g.sim.State() == sim.StateGameOver,
		Paused:   g.paused,
	}
}

// Sim exposes the underlying simulation for read-only use.
func (g *Game) Sim() *sim.Sim {
	return g.sim
}

// Summary describes the current or last run in one line.
func (g *Game) Summary() string {
	if g.sim == nil {
		return g.title
	}
	s := g.sim
	status := s.State().String()
	if s.State() == sim.StateGameOver {
		status = s.Outcome().String()
	}
	return fmt.Sprintf("%s: %.1f%% harvested (%d/%d cells), %d kills, %s, seed %d",
		g.title, s.Score(), s.Field().HarvestedCount(), s.Field().Total(),
		s.Kills(), status, s.Seed())
}

// Report describes the last finished run.
func (g *Game) Report() core.RunReport {
	if g.sim == nil {
		return core.RunReport{}
	}
	s := g.sim
	return core.RunReport{
		Score:    int(math.Round(s.Score())),
		Cells:    s.Field().HarvestedCount(),
		Kills:    s.Kills(),
		Outcome:  s.Outcome().String(),
		Seed:     s.Seed(),
		Duration: g.elapsed,
	}
}

// SimConfig converts the YAML configuration into simulation tuning.
func SimConfig(c config.HarvestConfig) sim.Config {
	weights := make(map[sim.WeaponMode]int, len(c.Items.Weights))
	for name, w := range c.Items.Weights {
		if m, ok := sim.ParseMode(name); ok {
			weights[m] = w
		}
	}
	levels := sim.LevelsNoise
	if c.Crops.InitialLevels == string(sim.LevelsFlat) {
		levels = sim.LevelsFlat
	}
	return sim.Config{
		Width:  c.Field.Width,
		Height: c.Field.Height,

		Levels:       levels,
		LayoutSeed:   c.Crops.LayoutSeed,
		Growth:       c.Crops.Growth.Enabled,
		GrowthBase:   secs(c.Crops.Growth.BaseSecs),
		GrowthSpread: secs(c.Crops.Growth.SpreadSecs),

		CombineSpeed: c.Combine.Speed,

		SpawnInterval: secs(c.Enemies.SpawnIntervalSecs),
		EnemySpeed:    c.Enemies.Speed,
		HitRadiusSq:   c.Enemies.HitRadiusSq,

		Cooldown:     secs(c.Turret.CooldownSecs),
		MaxAmmo:      c.Turret.MaxAmmo,
		AmmoPerCell:  c.Turret.AmmoPerCell,
		TurretOffset: [2]float64{c.Turret.OffsetX, c.Turret.OffsetY},

		BulletSpeed:       c.Bullets.Speed,
		BulletTTL:         secs(c.Bullets.TTLSecs),
		BulletHitRadiusSq: c.Bullets.HitRadiusSq,

		DropChance:     c.Items.DropChance,
		ItemTTL:        secs(c.Items.TTLSecs),
		PickupRadiusSq: c.Items.PickupRadiusSq,
		DropWeights:    weights,
	}
}

func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Register the variants with the registry
func init() {
	registry.Register(IDHarvest, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}
