package input

import (
	"testing"

	"github.com/ledgrid/ledarcade/internal/core"
)

// fakeSource is a settable button source. Buttons default to released
// (high); pressing drives the line low.
type fakeSource struct {
	pressed map[Button]bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{pressed: make(map[Button]bool)}
}

func (f *fakeSource) Read(b Button) bool { return !f.pressed[b] }

func TestNilSourceProducesEmptyFrames(t *testing.T) {
	s := NewSampler(nil, core.NewManualClock(), InvadersBindings())

	if s.Manual() {
		t.Error("nil source reported as manual")
	}
	if frame := s.Sample(); !frame.Empty() {
		t.Errorf("nil source produced actions: %v", frame)
	}
}

func TestPressEmitsBoundAction(t *testing.T) {
	src := newFakeSource()
	s := NewSampler(src, core.NewManualClock(), InvadersBindings())

	if frame := s.Sample(); !frame.Empty() {
		t.Errorf("released buttons produced actions: %v", frame)
	}

	src.pressed[BtnLeft] = true
	frame := s.Sample()
	if !frame.Has(core.ActionLeft) {
		t.Error("pressed left did not emit ActionLeft")
	}
	if frame.Has(core.ActionRight) || frame.Has(core.ActionFire) {
		t.Error("unpressed buttons emitted actions")
	}
}

func TestHeldButtonDebounces(t *testing.T) {
	src := newFakeSource()
	clk := core.NewManualClock()
	s := NewSampler(src, clk, InvadersBindings())

	src.pressed[BtnFire] = true
	if !s.Sample().Has(core.ActionFire) {
		t.Fatal("first press not emitted")
	}

	// Same tick window: suppressed.
	clk.Advance(10)
	if s.Sample().Has(core.ActionFire) {
		t.Error("press re-emitted inside the debounce interval")
	}

	// Past the interval: emitted again while held.
	clk.Advance(holdDebounceMS)
	if !s.Sample().Has(core.ActionFire) {
		t.Error("held press not re-emitted after the debounce interval")
	}
}

func TestNextButtonUsesLongDebounce(t *testing.T) {
	src := newFakeSource()
	clk := core.NewManualClock()
	s := NewSampler(src, clk, SlideshowBindings())

	src.pressed[BtnNext] = true
	if !s.Sample().Has(core.ActionNext) {
		t.Fatal("first press not emitted")
	}

	clk.Advance(100)
	if s.Sample().Has(core.ActionNext) {
		t.Error("next re-emitted after 100ms, debounce is 300ms")
	}

	clk.Advance(250)
	if !s.Sample().Has(core.ActionNext) {
		t.Error("next not re-emitted after the debounce interval")
	}
}

func TestSimultaneousPressesAreIndependent(t *testing.T) {
	src := newFakeSource()
	s := NewSampler(src, core.NewManualClock(), PongBindings())

	src.pressed[BtnP1Up] = true
	src.pressed[BtnP2Down] = true

	frame := s.Sample()
	if !frame.Has(core.ActionP1Up) || !frame.Has(core.ActionP2Down) {
		t.Errorf("simultaneous presses dropped: %v", frame)
	}
}
