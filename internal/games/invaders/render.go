package invaders

import "github.com/ledgrid/ledarcade/internal/core"

// Sprites as offsets from the entity anchor.
var (
	playerSprite = [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}

	alienSprites = [3][][2]int{
		{{-1, 0}, {0, 0}, {1, 0}, {-1, -1}, {1, -1}}, // squid
		{{-1, 0}, {0, 0}, {1, 0}, {0, -1}},           // crab
		{{0, 0}, {-1, -1}, {1, -1}},                  // small
	}

	alienColors = [3]core.RGB{core.Magenta, core.Cyan, core.Green}
)

var titleFace = [][2]int{
	{-3, 0}, {-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0}, {3, 0},
	{-2, -1}, {2, -1}, {-3, -2}, {-1, -2}, {1, -2}, {3, -2},
	{-2, 1}, {-1, 1}, {1, 1}, {2, 1},
}

var countdownGlyphs = map[int][][2]int{
	3: {{0, -2}, {1, -2}, {2, -2}, {2, -1}, {1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	2: {{0, -2}, {1, -2}, {2, -2}, {2, -1}, {0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}},
	1: {{1, -2}, {1, -1}, {1, 0}, {1, 1}, {1, 2}},
}

// Render draws the current phase into the surface.
func (g *Game) Render(dst *core.Surface) {
	dst.Clear()

	switch g.phase {
	case PhaseTitle:
		for _, p := range titleFace {
			dst.Set(7+p[0], 5+p[1], core.Green)
		}

	case PhaseCountdown:
		step := g.animTick / countStepTicks
		num := 3 - step
		if num < 1 {
			num = 1
		}
		for _, p := range countdownGlyphs[num] {
			dst.Set(7+p[0], 7+p[1], core.Yellow)
		}

	case PhasePlaying:
		g.renderPlayfield(dst)

	case PhaseVictory:
		// Rainbow celebration sweep.
		for y := 0; y < core.Height; y++ {
			for x := 0; x < core.Width; x++ {
				dst.Set(x, y, core.Wheel((x+y+g.animTick)*8))
			}
		}

	case PhaseGameOver:
		g.renderGameOver(dst)
	}
}

// renderPlayfield draws living aliens, bullets, the ship and the level
// indicator dots. Dead aliens are never drawn.
func (g *Game) renderPlayfield(dst *core.Surface) {
	for _, a := range g.aliens {
		if !a.Alive {
			continue
		}
		color := alienColors[a.Type%3]
		for _, p := range alienSprites[a.Type%3] {
			dst.Set(a.X+p[0], a.Y+p[1], color)
		}
	}

	for _, b := range g.playerBullets {
		dst.Set(b.X, b.Y, core.Yellow)
	}
	for _, b := range g.alienBullets {
		dst.Set(b.X, b.Y, core.Red)
	}

	if g.playerAlive {
		for _, p := range playerSprite {
			dst.Set(g.playerX+p[0], core.Height-1+p[1], core.Green)
		}
	}

	// Level dots in the top-right corner.
	for i := 0; i < core.Min(g.level, 3); i++ {
		dst.Set(core.Width-1-i, 0, core.White)
	}
}

// renderGameOver flashes the matrix red, then holds an X pattern.
func (g *Game) renderGameOver(dst *core.Surface) {
	if g.animTick < overFlashTicks {
		if (g.animTick/2)%2 == 0 {
			dst.Fill(core.Red)
		}
		return
	}

	for i := 0; i < core.Width; i++ {
		dst.Set(i, i, core.Red)
		dst.Set(core.Width-1-i, i, core.Red)
	}
}
