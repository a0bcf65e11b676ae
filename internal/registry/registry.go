// Package registry provides a global registry for program factories.
// Games, ambient effects and the slideshow register themselves in init()
// functions, allowing the platform to discover and instantiate them
// without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ledgrid/ledarcade/internal/core"
)

// Program is the interface every matrix program implements: the two
// arcade games, the ambient effects and the pixel-art slideshow. Programs
// contain pure logic with no external dependencies; the platform handles
// input sampling, timing and flushing.
type Program interface {
	// ID returns a unique identifier (e.g. "pong", "invaders", "rain").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the program state. Called once at start
	// and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick. Input holds the
	// debounced intents sampled this tick; an empty frame means the
	// program's autoplay policy (if any) drives the controllable actors.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the surface. The surface is
	// cleared and redrawn in full before each flush.
	Render(dst *core.Surface)

	// State returns the current program state.
	State() core.GameState
}

// Info contains metadata about a registered program.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a program.
type Factory func() Program

// entry pairs a factory with the metadata captured at registration, so
// listing never has to instantiate programs.
type entry struct {
	info    Info
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a program factory under its ID, capturing the display
// title from a throwaway instance. Typically called from a program's
// init() function. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: program %q already registered", id))
	}
	entries[id] = entry{
		info:    Info{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns metadata for all registered programs, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]Info, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Create instantiates a new program by its ID.
func Create(id string) (Program, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown program %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a program with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
