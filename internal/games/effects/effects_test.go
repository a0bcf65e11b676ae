package effects

import (
	"testing"

	"github.com/ledgrid/ledarcade/internal/core"
)

func cfg(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{TickRate: 20, Seed: seed, Brightness: 1.0}
}

func TestSpiralPathCoversMatrixOnce(t *testing.T) {
	path := spiralPath()
	if len(path) != core.NumLEDs {
		t.Fatalf("path length = %d, want %d", len(path), core.NumLEDs)
	}

	seen := make(map[[2]int]bool, len(path))
	for _, p := range path {
		if seen[p] {
			t.Fatalf("cell %v visited twice", p)
		}
		seen[p] = true
	}
}

func TestRainDropsDespawnBelowMatrix(t *testing.T) {
	r := NewRain("rain", "Matrix Rain", GreenTrail)
	r.Reset(cfg(7))

	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		r.Step(in)
		for _, d := range r.drops {
			if d.y-trailLength > core.Height {
				t.Fatalf("tick %d: offscreen drop retained at y = %d", i, d.y)
			}
		}
	}
}

func TestTrailColorsFadeToDark(t *testing.T) {
	for _, trail := range []TrailColor{GreenTrail, BlueTrail} {
		head := trail(0, trailLength)
		tail := trail(trailLength-1, trailLength)
		if head == (core.RGB{}) {
			t.Error("trail head is black")
		}
		sum := func(c core.RGB) int { return int(c.R) + int(c.G) + int(c.B) }
		if sum(tail) >= sum(head) {
			t.Errorf("tail %v not darker than head %v", tail, head)
		}
	}
}

func TestWaveFillsEveryPixel(t *testing.T) {
	w := NewWave()
	w.Reset(cfg(1))
	w.Step(core.NewInputFrame())

	dst := core.NewSurface(1.0, nil)
	w.Render(dst)

	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			if dst.Get(x, y) == core.Black {
				t.Fatalf("unlit pixel at (%d, %d)", x, y)
			}
		}
	}
}

func TestSparkleDeterminism(t *testing.T) {
	render := func() []core.RGB {
		s := NewSparkle()
		s.Reset(cfg(42))
		in := core.NewInputFrame()
		for i := 0; i < 10; i++ {
			s.Step(in)
		}
		dst := core.NewSurface(1.0, nil)
		s.Render(dst)
		return dst.Frame()
	}

	a, b := render(), render()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded renders diverged at index %d", i)
		}
	}
}

func TestRingsRadiusCycles(t *testing.T) {
	r := NewRings()
	r.Reset(cfg(1))

	in := core.NewInputFrame()
	for i := 0; i < maxRingRadius*ringStepTicks*2; i++ {
		r.Step(in)
		if r.radius < 0 || r.radius >= maxRingRadius {
			t.Fatalf("radius = %d out of range", r.radius)
		}
	}
}
