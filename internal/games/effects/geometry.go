package effects

import (
	"github.com/ledgrid/ledarcade/internal/core"
	"github.com/ledgrid/ledarcade/internal/registry"
)

// Spiral fills the matrix one pixel per tick along a spiral path from
// the center, then clears and starts over.
type Spiral struct {
	path [][2]int
	pos  int
}

var spiralColor = core.RGB{G: 255, B: 100}

func NewSpiral() *Spiral {
	return &Spiral{path: spiralPath()}
}

func (s *Spiral) ID() string               { return "spiral" }
func (s *Spiral) Title() string            { return "Spiral" }
func (s *Spiral) Reset(core.RuntimeConfig) { s.pos = 0 }
func (s *Spiral) State() core.GameState    { return core.GameState{} }

func (s *Spiral) Step(_ core.InputFrame) core.StepResult {
	s.pos++
	if s.pos > len(s.path) {
		s.pos = 0
	}
	return core.StepResult{}
}

func (s *Spiral) Render(dst *core.Surface) {
	dst.Clear()
	for i := 0; i < s.pos && i < len(s.path); i++ {
		dst.Set(s.path[i][0], s.path[i][1], spiralColor)
	}
}

// spiralPath walks outward from the center, turning right whenever the
// cell to the right is unvisited, and returns every cell in visit order.
func spiralPath() [][2]int {
	var visited [core.Width][core.Height]bool
	dirs := [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

	x, y := core.Width/2, core.Height/2
	dir := 0
	path := make([][2]int, 0, core.NumLEDs)

	for len(path) < core.NumLEDs {
		if x >= 0 && x < core.Width && y >= 0 && y < core.Height && !visited[x][y] {
			visited[x][y] = true
			path = append(path, [2]int{x, y})
		}

		next := (dir + 1) % 4
		nx, ny := x+dirs[next][0], y+dirs[next][1]
		if nx >= 0 && nx < core.Width && ny >= 0 && ny < core.Height && !visited[nx][ny] {
			dir = next
			x, y = nx, ny
		} else {
			x += dirs[dir][0]
			y += dirs[dir][1]
		}
	}
	return path
}

// Checker alternates a two-color checkerboard, shifting the parity on a
// slow cadence.
type Checker struct {
	tick   int
	offset int
}

// Parity shifts every 6 ticks (0.3 s at the 50 ms tick).
const checkerStepTicks = 6

var (
	checkerA = core.RGB{R: 255, B: 100}
	checkerB = core.RGB{G: 100, B: 255}
)

func NewChecker() *Checker { return &Checker{} }

func (c *Checker) ID() string               { return "checker" }
func (c *Checker) Title() string            { return "Checkerboard" }
func (c *Checker) Reset(core.RuntimeConfig) { c.tick, c.offset = 0, 0 }
func (c *Checker) State() core.GameState    { return core.GameState{} }

func (c *Checker) Step(_ core.InputFrame) core.StepResult {
	c.tick++
	if c.tick%checkerStepTicks == 0 {
		c.offset++
	}
	return core.StepResult{}
}

func (c *Checker) Render(dst *core.Surface) {
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			if (x+y+c.offset)%2 == 0 {
				dst.Set(x, y, checkerA)
			} else {
				dst.Set(x, y, checkerB)
			}
		}
	}
}

// Rings expands concentric circles from the center, cycling the radius.
type Rings struct {
	tick   int
	radius int
}

const (
	ringStepTicks = 2 // 0.1 s per radius step
	maxRingRadius = 12
)

func NewRings() *Rings { return &Rings{} }

func (r *Rings) ID() string               { return "rings" }
func (r *Rings) Title() string            { return "Expanding Rings" }
func (r *Rings) Reset(core.RuntimeConfig) { r.tick, r.radius = 0, 0 }
func (r *Rings) State() core.GameState    { return core.GameState{} }

func (r *Rings) Step(_ core.InputFrame) core.StepResult {
	r.tick++
	if r.tick%ringStepTicks == 0 {
		r.radius = (r.radius + 1) % maxRingRadius
	}
	return core.StepResult{}
}

func (r *Rings) Render(dst *core.Surface) {
	dst.Clear()
	color := core.Wheel(r.radius * 20)
	dst.Circle(7, 7, r.radius, color)
	if r.radius > 0 {
		dst.Circle(7, 7, r.radius-1, color.Scale(0.5))
	}
}

func init() {
	registry.Register("spiral", func() registry.Program { return NewSpiral() })
	registry.Register("checker", func() registry.Program { return NewChecker() })
	registry.Register("rings", func() registry.Program { return NewRings() })
}
