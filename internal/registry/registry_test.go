package registry

import (
	"testing"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func register(id string) {
	Register(id, func() Game { return stubGame{id: id} })
}

// registerOnce tolerates the test binary running a test twice.
func registerOnce(id string) {
	if _, ok := Lookup(id); !ok {
		register(id)
	}
}

func TestRegistryOrderAndLookup(t *testing.T) {
	registerOnce("zz_test_b")
	registerOnce("zz_test_a")

	var got []string
	for _, info := range List() {
		if info.ID == "zz_test_a" || info.ID == "zz_test_b" {
			got = append(got, info.ID)
		}
	}
	if len(got) != 2 || got[0] != "zz_test_b" || got[1] != "zz_test_a" {
		t.Errorf("List() order = %v, want registration order [zz_test_b zz_test_a]", got)
	}

	info, ok := Lookup("zz_test_a")
	if !ok || info.Title != "Stub zz_test_a" {
		t.Errorf("Lookup(zz_test_a) = %+v, %v", info, ok)
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}

	g, err := Create("zz_test_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_test_b" {
		t.Errorf("Create returned %q", g.ID())
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registerOnce("zz_test_dup")
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	register("zz_test_dup")
}
