package registry

import (
	"testing"

	"github.com/vovakirdan/tui-simon/internal/core"
)

type stubGame struct{ id, title string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test", func() Game { return &stubGame{id: "zz-test", title: "Test"} })
	Register("aa-test", func() Game { return &stubGame{id: "aa-test", title: "Another"} })

	if !Exists("zz-test") || Exists("missing") {
		t.Error("Exists mismatch")
	}

	g, err := Create("zz-test")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "zz-test" {
		t.Errorf("ID() = %q", g.ID())
	}

	// Each Create returns a fresh instance.
	g2, _ := Create("zz-test")
	if g == g2 {
		t.Error("Create returned a shared instance")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}

	list := List()
	ai, zi := -1, -1
	for i, info := range list {
		switch info.ID {
		case "aa-test":
			ai = i
			if info.Title != "Another" {
				t.Errorf("title = %q", info.Title)
			}
		case "zz-test":
			zi = i
		}
	}
	if ai < 0 || zi < 0 || ai > zi {
		t.Errorf("List() = %+v, expected both games sorted by ID", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Game { return &stubGame{id: "dup-test"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-test", func() Game { return &stubGame{id: "dup-test"} })
}
