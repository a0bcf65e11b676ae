package input

import "github.com/ledgrid/ledarcade/internal/core"

// Sampler polls a button source once per tick and produces the debounced
// intent frame for that tick. A sampler with no source (buttons absent or
// failed to initialize) always produces an empty frame, which leaves the
// programs in autoplay mode; button failure degrades, it never aborts.
type Sampler struct {
	source   Source
	clock    core.Clock
	bindings []Binding
	lastHit  map[Button]int64
	primed   map[Button]bool
}

// NewSampler creates a sampler over the given source and bindings.
// source may be nil.
func NewSampler(source Source, clock core.Clock, bindings []Binding) *Sampler {
	return &Sampler{
		source:   source,
		clock:    clock,
		bindings: bindings,
		lastHit:  make(map[Button]int64),
		primed:   make(map[Button]bool),
	}
}

// Manual reports whether a physical button source is attached.
func (s *Sampler) Manual() bool {
	return s.source != nil
}

// Sample reads every bound button and returns the actions accepted this
// tick. A pressed button (active-low) emits its action when its debounce
// interval has elapsed since the last accepted press; simultaneous
// presses emit independent actions.
func (s *Sampler) Sample() core.InputFrame {
	frame := core.NewInputFrame()
	if s.source == nil {
		return frame
	}

	for _, b := range s.bindings {
		if s.source.Read(b.Button) {
			continue // high = released
		}
		if s.primed[b.Button] && core.SinceMS(s.clock, s.lastHit[b.Button]) < b.DebounceMS {
			continue
		}
		frame.Set(b.Action)
		s.lastHit[b.Button] = s.clock.NowMS()
		s.primed[b.Button] = true
	}

	return frame
}
