package invaders

import "github.com/ledgrid/ledarcade/internal/core"

// Autoplay heuristics: chase the nearest living alien, dodge bullets
// that are close above the ship, fire on a short cooldown when aligned.
const (
	dodgeBand   = core.Height - 4 // bullets below this row trigger a dodge
	dodgeOffset = 2
)

// autoplay drives the ship for one tick when no manual intent arrived.
// It emits at most one directional step and one cooldown-gated fire.
func (g *Game) autoplay() {
	targetX := g.playerX
	minDist := core.Width * 2

	for _, a := range g.aliens {
		if !a.Alive {
			continue
		}
		if d := core.Abs(a.X - g.playerX); d < minDist {
			minDist = d
			targetX = a.X
		}
	}

	// Incoming bullet close above: sidestep instead of chasing.
	for _, b := range g.alienBullets {
		if b.Y > dodgeBand && core.Abs(b.X-g.playerX) < 2 {
			if b.X <= g.playerX {
				targetX = g.playerX + dodgeOffset
			} else {
				targetX = g.playerX - dodgeOffset
			}
			break
		}
	}

	if g.playerX < targetX {
		g.movePlayer(1)
	} else if g.playerX > targetX {
		g.movePlayer(-1)
	}

	g.autoFireCooldown--
	if g.autoFireCooldown > 0 {
		return
	}
	for _, a := range g.aliens {
		if a.Alive && core.Abs(a.X-g.playerX) <= 1 {
			g.firePlayer()
			g.autoFireCooldown = FireCooldown
			return
		}
	}
}
