package effects

import (
	"math"
	"math/rand"

	"github.com/ledgrid/ledarcade/internal/core"
	"github.com/ledgrid/ledarcade/internal/registry"
)

// Wave paints a diagonal rainbow sweeping across the matrix.
type Wave struct {
	offset int
}

func NewWave() *Wave { return &Wave{} }

func (w *Wave) ID() string               { return "wave" }
func (w *Wave) Title() string            { return "Rainbow Wave" }
func (w *Wave) Reset(core.RuntimeConfig) { w.offset = 0 }
func (w *Wave) State() core.GameState    { return core.GameState{} }

func (w *Wave) Step(_ core.InputFrame) core.StepResult {
	w.offset++
	return core.StepResult{}
}

func (w *Wave) Render(dst *core.Surface) {
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			dst.Set(x, y, core.Wheel((x+y+w.offset)*8))
		}
	}
}

// Plasma layers three sine fields and maps the sum through the hue
// circle.
type Plasma struct {
	t float64
}

func NewPlasma() *Plasma { return &Plasma{} }

func (p *Plasma) ID() string               { return "plasma" }
func (p *Plasma) Title() string            { return "Plasma" }
func (p *Plasma) Reset(core.RuntimeConfig) { p.t = 0 }
func (p *Plasma) State() core.GameState    { return core.GameState{} }

func (p *Plasma) Step(_ core.InputFrame) core.StepResult {
	p.t += 0.3
	return core.StepResult{}
}

func (p *Plasma) Render(dst *core.Surface) {
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			v1 := math.Sin(float64(x)/4.0 + p.t)
			v2 := math.Sin((float64(y)/4.0 + p.t) / 2.0)
			v3 := math.Sin(float64(x+y)/8.0 + p.t)
			v := (v1 + v2 + v3 + 3) / 6.0
			dst.Set(x, y, core.HSV(v, 1.0, 1.0))
		}
	}
}

// Sparkle lights a fresh handful of random pixels every tick.
type Sparkle struct {
	density int
	rng     *rand.Rand
	points  [][2]int
	colors  []core.RGB
}

func NewSparkle() *Sparkle { return &Sparkle{density: 10} }

func (s *Sparkle) ID() string            { return "sparkle" }
func (s *Sparkle) Title() string         { return "Sparkle" }
func (s *Sparkle) State() core.GameState { return core.GameState{} }

func (s *Sparkle) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.points = s.points[:0]
	s.colors = s.colors[:0]
}

func (s *Sparkle) Step(_ core.InputFrame) core.StepResult {
	s.points = s.points[:0]
	s.colors = s.colors[:0]
	for i := 0; i < s.density; i++ {
		s.points = append(s.points, [2]int{s.rng.Intn(core.Width), s.rng.Intn(core.Height)})
		s.colors = append(s.colors, core.RGB{
			R: uint8(100 + s.rng.Intn(156)),
			G: uint8(100 + s.rng.Intn(156)),
			B: uint8(100 + s.rng.Intn(156)),
		})
	}
	return core.StepResult{}
}

func (s *Sparkle) Render(dst *core.Surface) {
	dst.Clear()
	for i, p := range s.points {
		dst.Set(p[0], p[1], s.colors[i])
	}
}

func init() {
	registry.Register("wave", func() registry.Program { return NewWave() })
	registry.Register("plasma", func() registry.Program { return NewPlasma() })
	registry.Register("sparkle", func() registry.Program { return NewSparkle() })
}
