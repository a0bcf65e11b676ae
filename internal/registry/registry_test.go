package registry

import (
	"testing"

	"github.com/ledgrid/ledarcade/internal/core"
)

type stubProgram struct {
	id    string
	title string
}

func (p *stubProgram) ID() string                              { return p.id }
func (p *stubProgram) Title() string                           { return p.title }
func (p *stubProgram) Reset(cfg core.RuntimeConfig)            {}
func (p *stubProgram) Step(in core.InputFrame) core.StepResult { return core.StepResult{} }
func (p *stubProgram) Render(dst *core.Surface)                {}
func (p *stubProgram) State() core.GameState                   { return core.GameState{} }

func stubFactory(id, title string) Factory {
	return func() Program { return &stubProgram{id: id, title: title} }
}

func TestListSortsAndCarriesTitles(t *testing.T) {
	Register("zz-two", stubFactory("zz-two", "Two"))
	Register("zz-one", stubFactory("zz-one", "One"))

	var got []Info
	for _, info := range List() {
		if info.ID == "zz-one" || info.ID == "zz-two" {
			got = append(got, info)
		}
	}
	if len(got) != 2 || got[0].ID != "zz-one" || got[1].ID != "zz-two" {
		t.Fatalf("List order = %v, want zz-one before zz-two", got)
	}
	if got[0].Title != "One" || got[1].Title != "Two" {
		t.Errorf("List titles = %q, %q", got[0].Title, got[1].Title)
	}
}

func TestCreateUnknownID(t *testing.T) {
	if _, err := Create("zz-missing"); err == nil {
		t.Fatal("Create of unregistered ID did not fail")
	}
	if Exists("zz-missing") {
		t.Error("Exists reported an unregistered ID")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	Register("zz-dup", stubFactory("zz-dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	Register("zz-dup", stubFactory("zz-dup", "Dup"))
}
