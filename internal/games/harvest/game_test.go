package harvest

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/harvest-defense/internal/config"
	"github.com/vovakirdan/harvest-defense/internal/core"
	"github.com/vovakirdan/harvest-defense/internal/games/harvest/sim"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func startedGame(t *testing.T, id string) *Game {
	t.Helper()
	g := NewWithConfig(id, config.DefaultHarvestConfig())
	g.Reset(testRuntime(7))
	g.Step(frameWith(core.ActionStart))
	if g.Sim().State() != sim.StatePlaying {
		t.Fatalf("state after start = %v, want playing", g.Sim().State())
	}
	return g
}

func TestSimConfigMatchesDefaults(t *testing.T) {
	got := SimConfig(config.DefaultHarvestConfig())
	want := sim.DefaultConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SimConfig(defaults) =\n%+v\nwant\n%+v", got, want)
	}
}

func TestDisabledRampKeepsConfiguredPace(t *testing.T) {
	cfg := config.DefaultHarvestConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 1
	g := NewWithConfig(IDHarvest, cfg)
	g.Reset(testRuntime(3))
	g.Step(frameWith(core.ActionStart))
	g.Step(core.NewInputFrame())

	want := SimConfig(cfg)
	got := g.Sim().Config()
	if got.EnemySpeed != want.EnemySpeed || got.SpawnInterval != want.SpawnInterval {
		t.Errorf("pace = %v / %v, want configured %v / %v",
			got.EnemySpeed, got.SpawnInterval, want.EnemySpeed, want.SpawnInterval)
	}
}

func TestEnabledRampRaisesPace(t *testing.T) {
	cfg := config.DefaultHarvestConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = 1
	g := NewWithConfig(IDHarvest, cfg)
	g.Reset(testRuntime(3))
	g.Step(frameWith(core.ActionStart))
	g.Step(core.NewInputFrame())

	if got := g.Sim().Config().EnemySpeed; got <= SimConfig(cfg).EnemySpeed {
		t.Errorf("ramped enemy speed = %v, want above %v", got, SimConfig(cfg).EnemySpeed)
	}
}

func TestStartCueAndPause(t *testing.T) {
	g := NewWithConfig(IDHarvest, config.DefaultHarvestConfig())
	g.Reset(testRuntime(7))

	res := g.Step(frameWith(core.ActionStart))
	if len(res.Cues) != 1 || res.Cues[0] != core.CueStart {
		t.Errorf("cues on start = %v, want [start]", res.Cues)
	}

	g.Step(frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	ticks := g.Sim().SessionTicks()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Sim().SessionTicks() != ticks {
		t.Error("simulation advanced while paused")
	}

	g.Step(frameWith(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestPauseIgnoredOutsideSession(t *testing.T) {
	g := NewWithConfig(IDHarvest, config.DefaultHarvestConfig())
	g.Reset(testRuntime(1))
	g.Step(frameWith(core.ActionPause))
	if g.State().Paused {
		t.Error("pause should only apply while playing")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := newLayout(80, 24, 31, 15)
	if l.tooSmall {
		t.Fatal("31x15 field should fit 80x24")
	}
	for y := 0; y < 15; y++ {
		for x := 0; x < 31; x++ {
			p := sim.GridPos{X: x, Y: y}
			col, row := l.cellToScreen(p)
			for dx := 0; dx < cellCols; dx++ {
				if got := l.toWorld(col+dx, row).Round(); got != p {
					t.Fatalf("cell %v column %d maps back to %v", p, col+dx, got)
				}
			}
			if c2, r2 := l.toScreen(p.Vec2()); c2 != col || r2 != row {
				t.Fatalf("toScreen(%v) = (%d,%d), want (%d,%d)", p, c2, r2, col, row)
			}
		}
	}
}

func TestPointerDrivesAim(t *testing.T) {
	g := startedGame(t, IDHarvest)
	c := g.Sim().Combine()

	// Point at the cell directly above the combine.
	col, row := g.layout.cellToScreen(sim.GridPos{X: c.Grid.X, Y: c.Grid.Y + 4})
	in := core.NewInputFrame()
	in.SetPointer(col, row)
	g.Step(in)

	aim := g.Sim().Turret().Aim
	if aim.Y < 0.9 {
		t.Errorf("aim = %+v, want roughly straight up", aim)
	}
}

func TestCuesCoalesced(t *testing.T) {
	g := startedGame(t, IDHarvest)
	cues := g.cues(sim.Events{
		{Kind: sim.EventHarvested, Cells: 1, Units: 2},
		{Kind: sim.EventHarvested, Cells: 1, Units: 1},
		{Kind: sim.EventPlayerHit},
		{Kind: sim.EventPlayerHit},
	})
	want := []core.Cue{core.CueHarvest, core.CuePlayerHit}
	if !reflect.DeepEqual(cues, want) {
		t.Errorf("cues = %v, want %v", cues, want)
	}
	if g.hitFlash == 0 {
		t.Error("player hit should flash the border")
	}
}

func TestClassicVariantIsFlat(t *testing.T) {
	g := startedGame(t, IDClassic)
	f := g.Sim().Field()
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			c, _ := f.CellAt(sim.GridPos{X: x, Y: y})
			if c.Level != 1 {
				t.Fatalf("classic cell (%d,%d) level %d, want 1", x, y, c.Level)
			}
		}
	}
	if g.Sim().Config().Growth {
		t.Error("classic variant must not grow crops")
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(IDHarvest, config.DefaultHarvestConfig())
	g.Reset(testRuntime(3))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "HARVEST DEFENSE") {
		t.Error("ready overlay missing")
	}
	if !strings.Contains(out, "Harvested") {
		t.Error("HUD missing")
	}

	g.Step(frameWith(core.ActionStart))
	g.Render(screen)
	col, row := g.layout.toScreen(g.Sim().Combine().WorldPos())
	if r := screen.Get(col, row); r != CombineChar {
		t.Errorf("combine cell = %q, want %q", r, CombineChar)
	}
	if screen.GetCell(col, row).Color != core.ColorOrange {
		t.Error("combine should be orange")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithConfig(IDHarvest, config.DefaultHarvestConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too-small message")
	}

	g.Resize(80, 24)
	g.Render(screen)
	if strings.Contains(screen.String(), "too small") {
		t.Error("message should go away after resize")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionStart)
		case i%90 == 30:
			inputs[i].Set(core.ActionUp)
		case i%90 == 75:
			inputs[i].Set(core.ActionLeft)
		}
		if i%7 == 0 {
			inputs[i].Set(core.ActionFire)
			inputs[i].SetPointer(10+i%40, 5+i%10)
		}
	}

	run := func() string {
		g := NewWithConfig(IDHarvest, config.DefaultHarvestConfig())
		g.Reset(testRuntime(99))
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Summary()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("runs diverged:\n%s\n%s", a, b)
	}
}

func TestDriveWithAutopilotReportsRun(t *testing.T) {
	cfg := config.DefaultHarvestConfig()
	cfg.Field.Width, cfg.Field.Height = 9, 7
	g := NewWithConfig(IDHarvest, cfg)
	g.Reset(testRuntime(11))

	var ap sim.Autopilot
	for i := 0; i < 60*120 && g.Sim().State() != sim.StateGameOver; i++ {
		g.Drive(ap.Input(g.Sim()))
	}
	if g.Sim().State() != sim.StateGameOver {
		t.Fatalf("session did not end, state %v", g.Sim().State())
	}

	rep := g.Report()
	if rep.Seed != 11 {
		t.Errorf("Seed = %d, want 11", rep.Seed)
	}
	if rep.Outcome != "caught" && rep.Outcome != "cleared" {
		t.Errorf("Outcome = %q", rep.Outcome)
	}
	if rep.Cells != g.Sim().Field().HarvestedCount() {
		t.Errorf("Cells = %d, want %d", rep.Cells, g.Sim().Field().HarvestedCount())
	}
	if rep.Duration <= 0 {
		t.Errorf("Duration = %v, want positive", rep.Duration)
	}
	if rep.Score != g.State().Score {
		t.Errorf("Score = %d, state score %d", rep.Score, g.State().Score)
	}
}
