package slideshow

import (
	"math/rand"

	"github.com/ledgrid/ledarcade/internal/core"
	"github.com/ledgrid/ledarcade/internal/registry"
)

// Transition is the animation used to swap two sprites.
type Transition int

const (
	TransFade Transition = iota
	TransWipeRight
	TransWipeDown
	TransDissolve
	numTransitions
)

const (
	// Each sprite holds for 5 s before auto-advancing.
	displayTicks = 100

	fadeHalfTicks = 10
	wipeTicks     = core.Width
	dissolveSteps = 20
)

// Show cycles the embedded art collection, advancing automatically or
// on the next button, with a rotating transition per advance.
type Show struct {
	arts []Art
	err  error

	current int
	next    int

	transitioning bool
	trans         Transition
	transTick     int

	// Shuffled pixel order for the dissolve transition.
	order [core.NumLEDs][2]int

	holdTick int
	rng      *rand.Rand
}

// New creates the slideshow. A load failure is held and surfaces as a
// blank display; the embedded assets make it unreachable in practice.
func New() *Show {
	s := &Show{}
	s.arts, s.err = LoadAll()
	return s
}

func (s *Show) ID() string    { return "slideshow" }
func (s *Show) Title() string { return "Pixel Art" }

func (s *Show) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.current = 0
	s.next = 0
	s.transitioning = false
	s.trans = TransFade
	s.holdTick = 0
}

// Step advances the hold timer or the running transition. The next
// button skips ahead immediately.
func (s *Show) Step(in core.InputFrame) core.StepResult {
	if len(s.arts) == 0 {
		return core.StepResult{}
	}

	if s.transitioning {
		s.transTick++
		if s.transTick >= s.transLength() {
			s.current = s.next
			s.transitioning = false
			s.holdTick = 0
		}
		return core.StepResult{}
	}

	s.holdTick++
	if in.Has(core.ActionNext) || s.holdTick >= displayTicks {
		s.advance()
	}
	return core.StepResult{}
}

// advance starts a transition to the next sprite, rotating through the
// transition kinds.
func (s *Show) advance() {
	s.next = (s.current + 1) % len(s.arts)
	s.transitioning = true
	s.transTick = 0
	s.trans = Transition((int(s.trans) + 1) % int(numTransitions))

	if s.trans == TransDissolve {
		s.shuffleOrder()
	}
}

func (s *Show) transLength() int {
	switch s.trans {
	case TransFade:
		return 2 * fadeHalfTicks
	case TransWipeRight, TransWipeDown:
		return wipeTicks
	default:
		return dissolveSteps
	}
}

func (s *Show) shuffleOrder() {
	i := 0
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			s.order[i] = [2]int{x, y}
			i++
		}
	}
	s.rng.Shuffle(len(s.order), func(a, b int) {
		s.order[a], s.order[b] = s.order[b], s.order[a]
	})
}

func (s *Show) Render(dst *core.Surface) {
	dst.Clear()
	if len(s.arts) == 0 {
		return
	}

	if !s.transitioning {
		drawArt(dst, &s.arts[s.current], 1.0)
		return
	}

	switch s.trans {
	case TransFade:
		if s.transTick < fadeHalfTicks {
			alpha := 1.0 - float64(s.transTick)/float64(fadeHalfTicks)
			drawArt(dst, &s.arts[s.current], alpha)
		} else {
			alpha := float64(s.transTick-fadeHalfTicks) / float64(fadeHalfTicks)
			drawArt(dst, &s.arts[s.next], alpha)
		}

	case TransWipeRight:
		edge := s.transTick + 1
		from, to := &s.arts[s.current], &s.arts[s.next]
		for y := 0; y < core.Height; y++ {
			for x := 0; x < core.Width; x++ {
				if x < edge {
					dst.Set(x, y, to.Grid[y][x])
				} else {
					dst.Set(x, y, from.Grid[y][x])
				}
			}
		}

	case TransWipeDown:
		edge := s.transTick + 1
		from, to := &s.arts[s.current], &s.arts[s.next]
		for y := 0; y < core.Height; y++ {
			src := from
			if y < edge {
				src = to
			}
			for x := 0; x < core.Width; x++ {
				dst.Set(x, y, src.Grid[y][x])
			}
		}

	case TransDissolve:
		drawArt(dst, &s.arts[s.current], 1.0)
		swapped := (s.transTick + 1) * core.NumLEDs / dissolveSteps
		to := &s.arts[s.next]
		for i := 0; i < swapped && i < len(s.order); i++ {
			x, y := s.order[i][0], s.order[i][1]
			dst.Set(x, y, to.Grid[y][x])
		}
	}
}

// State reports a neutral state; the slideshow has no score and never
// ends.
func (s *Show) State() core.GameState { return core.GameState{} }

func drawArt(dst *core.Surface, a *Art, alpha float64) {
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			c := a.Grid[y][x]
			if c == (core.RGB{}) {
				continue
			}
			dst.Set(x, y, c.Scale(alpha))
		}
	}
}

func init() {
	registry.Register("slideshow", func() registry.Program {
		return New()
	})
}
