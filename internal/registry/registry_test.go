package registry

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string               { return s.id }
func (s *stubGame) Title() string            { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Control(core.InputFrame)  {}
func (s *stubGame) Step() core.StepResult    { return core.StepResult{} }
func (s *stubGame) Frame() core.Frame        { return core.Frame{} }
func (s *stubGame) Render(*core.Screen)      {}
func (s *stubGame) State() core.GameState    { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_create", "Stub", func(Options) Game { return &stubGame{id: "stub_create"} })

	if !Exists("stub_create") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("stub_create", Options{Config: config.DefaultAsteroidsConfig()})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if g.ID() != "stub_create" {
		t.Errorf("ID() = %q, expected stub_create", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_create" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("Title = %q, expected Stub", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist", Options{}); err == nil {
		t.Error("Create should fail for an unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", "Stub", func(Options) Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", "Stub", func(Options) Game { return &stubGame{} })
}
