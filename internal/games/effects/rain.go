// Package effects holds the ambient display programs: non-interactive
// painters that run on the same tick loop and registry as the games.
package effects

import (
	"math/rand"

	"github.com/ledgrid/ledarcade/internal/core"
	"github.com/ledgrid/ledarcade/internal/registry"
)

const (
	trailLength = 6
	// Per-column spawn probability each tick.
	spawnChance = 0.04
)

// TrailColor maps a trail position (0 = head) to a color. Passing the
// palette as a parameter keeps the drop logic shared between variants.
type TrailColor func(pos, length int) core.RGB

// GreenTrail is the classic falling-code palette: a white-green head
// with a quadratic green fade behind it.
func GreenTrail(pos, length int) core.RGB {
	if pos == 0 {
		return core.RGB{R: 180, G: 255, B: 180}
	}
	fade := 1.0 - float64(pos)/float64(length)
	return core.RGB{G: uint8(255 * fade * fade)}
}

// BlueTrail is the same drop with a cold palette.
func BlueTrail(pos, length int) core.RGB {
	if pos == 0 {
		return core.RGB{R: 200, G: 220, B: 255}
	}
	fade := 1.0 - float64(pos)/float64(length)
	v := 255 * fade * fade
	return core.RGB{G: uint8(v * 0.4), B: uint8(v)}
}

type drop struct {
	x, y  int
	speed float64
	acc   float64
}

func (d *drop) advance() {
	d.acc += d.speed
	if d.acc >= 1.0 {
		d.y++
		d.acc = 0
	}
}

func (d *drop) offscreen() bool {
	return d.y-trailLength > core.Height
}

// Rain is the falling-code effect: independent drops with per-drop speed
// variation and a per-column spawn cooldown so columns do not clump.
type Rain struct {
	id    string
	title string
	trail TrailColor

	drops    []drop
	cooldown [core.Width]int
	rng      *rand.Rand
}

// NewRain creates a rain effect with the given identity and palette.
func NewRain(id, title string, trail TrailColor) *Rain {
	return &Rain{id: id, title: title, trail: trail}
}

func (r *Rain) ID() string    { return r.id }
func (r *Rain) Title() string { return r.title }

// Reset reseeds the effect and pre-fills the matrix with a few drops so
// it does not start on a blank screen.
func (r *Rain) Reset(cfg core.RuntimeConfig) {
	r.rng = rand.New(rand.NewSource(cfg.Seed))
	r.drops = r.drops[:0]
	for i := range r.cooldown {
		r.cooldown[i] = 0
	}
	for i := 0; i < core.Width/2; i++ {
		r.drops = append(r.drops, drop{
			x:     r.rng.Intn(core.Width),
			y:     r.rng.Intn(core.Height + 1),
			speed: r.newSpeed(),
		})
	}
}

func (r *Rain) newSpeed() float64 {
	return 0.7 + r.rng.Float64()*0.6
}

// Step advances every drop, runs down the column cooldowns and spawns
// new drops on cooled columns.
func (r *Rain) Step(_ core.InputFrame) core.StepResult {
	kept := r.drops[:0]
	for i := range r.drops {
		r.drops[i].advance()
		if !r.drops[i].offscreen() {
			kept = append(kept, r.drops[i])
		}
	}
	r.drops = kept

	for x := 0; x < core.Width; x++ {
		if r.cooldown[x] > 0 {
			r.cooldown[x]--
			continue
		}
		if r.rng.Float64() < spawnChance {
			r.drops = append(r.drops, drop{
				x:     x,
				y:     -1 - r.rng.Intn(trailLength),
				speed: r.newSpeed(),
			})
			r.cooldown[x] = 3 + r.rng.Intn(6)
		}
	}

	return core.StepResult{}
}

// Render draws each drop head-first with its fading trail.
func (r *Rain) Render(dst *core.Surface) {
	dst.Clear()
	for _, d := range r.drops {
		for i := 0; i < trailLength; i++ {
			dst.Set(d.x, d.y-i, r.trail(i, trailLength))
		}
	}
}

func (r *Rain) State() core.GameState { return core.GameState{} }

func init() {
	registry.Register("rain", func() registry.Program {
		return NewRain("rain", "Matrix Rain", GreenTrail)
	})
	registry.Register("bluerain", func() registry.Program {
		return NewRain("bluerain", "Blue Rain", BlueTrail)
	})
}
