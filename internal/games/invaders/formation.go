package invaders

import (
	"sort"

	"github.com/ledgrid/ledarcade/internal/core"
)

// spawnFormation rebuilds the alien roster for the current level. Row
// and column counts grow with the level up to fixed maxima; the movement
// interval shrinks with the level down to a fixed floor.
func (g *Game) spawnFormation() {
	rows := core.Min(3+g.level/2, MaxRows)
	cols := core.Min(6+g.level, MaxCols)

	startX := (core.Width-cols*2)/2 + 1
	startY := 1

	g.aliens = g.aliens[:0]
	for row := 0; row < rows; row++ {
		spriteType := row % 3
		for col := 0; col < cols; col++ {
			x := startX + col*2
			y := startY + row*2
			if x < core.Width-1 {
				g.aliens = append(g.aliens, Alien{X: x, Y: y, Alive: true, Type: spriteType})
			}
		}
	}

	g.alienMoveMS = int64(core.Max(MinLevelMoveMS, BaseMoveMS-g.level*LevelMoveStep))
}

// moveFormation advances the formation when its clock-gated interval has
// elapsed. If any living alien sits at the margin in the direction of
// travel, the whole formation drops one row and reverses; a living alien
// reaching the bottom threshold ends the game.
func (g *Game) moveFormation() {
	if core.SinceMS(g.clock, g.lastAlienMove) < g.alienMoveMS {
		return
	}
	g.lastAlienMove = g.clock.NowMS()

	hitEdge := false
	for _, a := range g.aliens {
		if !a.Alive {
			continue
		}
		if a.X <= 1 && g.direction == -1 {
			hitEdge = true
			break
		}
		if a.X >= core.Width-2 && g.direction == 1 {
			hitEdge = true
			break
		}
	}

	if hitEdge {
		g.direction = -g.direction
		for i := range g.aliens {
			if !g.aliens[i].Alive {
				continue
			}
			g.aliens[i].Y++
			if g.aliens[i].Y >= BottomRow {
				g.gameOver = true
				return
			}
		}
		return
	}

	for i := range g.aliens {
		if g.aliens[i].Alive {
			g.aliens[i].X += g.direction
		}
	}
}

// alienShoot fires one alien bullet on its own clock-gated interval,
// chosen uniformly among the frontmost living alien of each column.
func (g *Game) alienShoot() {
	interval := int64(core.Max(MinShootMS, BaseShootMS-g.level*LevelShootStep))
	if core.SinceMS(g.clock, g.lastAlienShot) < interval {
		return
	}
	g.lastAlienShot = g.clock.NowMS()

	if len(g.alienBullets) >= MaxAlienBullets {
		return
	}

	shooters := g.frontmostPerColumn()
	if len(shooters) == 0 {
		return
	}

	shooter := g.aliens[shooters[g.rng.Intn(len(shooters))]]
	g.alienBullets = append(g.alienBullets, Bullet{X: shooter.X, Y: shooter.Y + 1})
}

// frontmostPerColumn returns roster indices of the lowest (highest-y)
// living alien in each occupied column, in ascending column order.
func (g *Game) frontmostPerColumn() []int {
	front := make(map[int]int) // column x -> roster index
	for i, a := range g.aliens {
		if !a.Alive {
			continue
		}
		if j, ok := front[a.X]; !ok || a.Y > g.aliens[j].Y {
			front[a.X] = i
		}
	}

	cols := make([]int, 0, len(front))
	for x := range front {
		cols = append(cols, x)
	}
	// Deterministic candidate order so seeded runs replay identically.
	sort.Ints(cols)

	out := make([]int, 0, len(cols))
	for _, x := range cols {
		out = append(out, front[x])
	}
	return out
}

// resolveCollisions applies bullet hits: player bullets against living
// aliens, then alien bullets against the ship. A hit on the ship ends
// the game immediately with no further processing this tick.
func (g *Game) resolveCollisions() {
	keptBullets := g.playerBullets[:0]
	for _, b := range g.playerBullets {
		hit := false
		for i := range g.aliens {
			a := &g.aliens[i]
			if !a.Alive {
				continue
			}
			if core.Abs(b.X-a.X) <= 1 && core.Abs(b.Y-a.Y) <= 1 {
				a.Alive = false
				g.score += 10 * (a.Type + 1)
				g.rescaleMoveInterval()
				hit = true
				break
			}
		}
		if !hit {
			keptBullets = append(keptBullets, b)
		}
	}
	g.playerBullets = keptBullets

	playerY := core.Height - 1
	for _, b := range g.alienBullets {
		if core.Abs(b.X-g.playerX) <= 1 && core.Abs(b.Y-playerY) <= 1 {
			g.playerAlive = false
			g.gameOver = true
			return
		}
	}

	alive := 0
	for _, a := range g.aliens {
		if a.Alive {
			alive++
		}
	}
	if alive == 0 {
		g.victory = true
	}
}

// rescaleMoveInterval speeds the formation up as it thins out: the
// interval scales with the remaining-alive fraction, floor-clamped.
func (g *Game) rescaleMoveInterval() {
	alive := 0
	for _, a := range g.aliens {
		if a.Alive {
			alive++
		}
	}
	if alive == 0 {
		return
	}
	factor := float64(alive) / float64(len(g.aliens))
	ms := int64(BaseMoveMS * factor)
	if ms < MinMoveMS {
		ms = MinMoveMS
	}
	g.alienMoveMS = ms
}
