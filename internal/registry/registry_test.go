package registry_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/harvest-defense/internal/core"
	_ "github.com/vovakirdan/harvest-defense/internal/games/harvest"
	"github.com/vovakirdan/harvest-defense/internal/registry"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                           { return s.id }
func (s stubGame) Title() string                        { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                  {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func TestHarvestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"harvest", "harvest_classic"} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%s).ID() = %s", id, g.ID())
		}
		if _, ok := g.(registry.Resizer); !ok {
			t.Errorf("%s should support resizing", id)
		}
		if _, ok := g.(registry.Summarizer); !ok {
			t.Errorf("%s should support summaries", id)
		}
	}
}

func TestListSorted(t *testing.T) {
	list := registry.List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %s before %s", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := registry.Create("tetris"); err == nil || !strings.Contains(err.Error(), "tetris") {
		t.Errorf("Create(unknown) error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registry.Register("stub_dup", func() registry.Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	registry.Register("stub_dup", func() registry.Game { return stubGame{id: "stub_dup"} })
}
