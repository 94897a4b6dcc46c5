package registry

import (
	"testing"

	"github.com/vovakirdan/purrdle/internal/core"
)

type stubGame struct{ id, title string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegistryCreate(t *testing.T) {
	r := New()
	created := 0
	r.Register("classic", func() Game {
		created++
		return &stubGame{id: "classic", title: "Classic"}
	})

	if created != 1 {
		t.Errorf("Register() should build one instance for the title, built %d", created)
	}
	if !r.Exists("classic") || r.Exists("learn") {
		t.Error("Exists() does not reflect registrations")
	}

	g, err := r.Create("classic")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "classic" {
		t.Errorf("Create() returned %q, expected classic", g.ID())
	}

	if _, err := r.Create("nope"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
}

func TestRegistryListOrder(t *testing.T) {
	r := New()
	for _, info := range []GameInfo{{"learn", "Learn"}, {"classic", "Classic"}, {"infinity", "Infinity"}} {
		info := info
		r.Register(info.ID, func() Game { return &stubGame{id: info.ID, title: info.Title} })
	}

	list := r.List()
	if len(list) != 3 || list[0].ID != "learn" || list[2].Title != "Infinity" {
		t.Errorf("List() = %v, expected registration order", list)
	}

	ids := r.IDs()
	if ids[0] != "classic" || ids[1] != "infinity" || ids[2] != "learn" {
		t.Errorf("IDs() = %v, expected sorted", ids)
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := New()
	f := func() Game { return &stubGame{id: "classic"} }
	r.Register("classic", f)

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on a duplicate ID")
		}
	}()
	r.Register("classic", f)
}
