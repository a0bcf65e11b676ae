// Package invaders implements the descending-formation shooter for the
// 16x16 matrix. The ship is driven by buttons or, when no button intent
// arrives on a tick, by the built-in autoplay policy.
package invaders

import (
	"math/rand"

	"github.com/ledgrid/ledarcade/internal/core"
	"github.com/ledgrid/ledarcade/internal/registry"
)

// Gameplay tunables. Compile-time constants, like the rest of the panel
// hardware parameters.
const (
	MaxPlayerBullets = 3
	MaxAlienBullets  = 5

	MaxRows = 5
	MaxCols = 11

	// Alien movement interval in ms: base scaled down per level, floored;
	// recomputed from the remaining-alive fraction after every kill.
	BaseMoveMS     = 400
	LevelMoveStep  = 30
	MinLevelMoveMS = 150
	MinMoveMS      = 80

	// Alien fire interval in ms.
	BaseShootMS    = 1500
	LevelShootStep = 100
	MinShootMS     = 500

	BottomRow    = core.Height - 2 // formation reaching this row ends the game
	FireCooldown = 3               // autoplay fire gate in ticks
)

// Phase identifies the current stage of the shooter state machine.
type Phase int

const (
	PhaseTitle     Phase = iota // alien face title card
	PhaseCountdown              // 3-2-1
	PhasePlaying                // formation active
	PhaseVictory                // rainbow celebration, then next level
	PhaseGameOver               // red flash and X, terminal until Reset
)

// Animation lengths in ticks.
const (
	titleHoldTicks = 40
	countStepTicks = 14
	victoryTicks   = 50
	overFlashTicks = 12
	overHoldTicks  = 40
)

// Alien is one member of the formation. Liveness is a field, not removal
// from the roster, so identity stays stable for the per-column
// frontmost-shooter query.
type Alien struct {
	X, Y  int
	Alive bool
	Type  int // 0, 1 or 2, assigned by row
}

// Bullet is a single projectile.
type Bullet struct {
	X, Y int
}

// Game implements the formation shooter engine.
type Game struct {
	playerX     int
	playerAlive bool

	playerBullets []Bullet
	alienBullets  []Bullet

	aliens    []Alien
	direction int // +1 right, -1 left

	score int
	level int

	victory  bool
	gameOver bool

	// Clock-gated timers, decoupled from the simulation tick.
	clock         core.Clock
	lastAlienMove int64
	lastAlienShot int64
	alienMoveMS   int64

	autoFireCooldown int

	phase    Phase
	animTick int

	rng  *rand.Rand
	tick int
}

// New creates a new shooter instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this program.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset initializes or restarts the game at level 1.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.clock = cfg.Clock
	if g.clock == nil {
		g.clock = core.NewSystemClock()
	}

	g.playerX = core.Width / 2
	g.playerAlive = true
	g.playerBullets = nil
	g.alienBullets = nil
	g.direction = 1
	g.score = 0
	g.level = 1
	g.victory = false
	g.gameOver = false
	g.lastAlienMove = 0
	g.lastAlienShot = 0
	g.autoFireCooldown = 0
	g.tick = 0

	g.spawnFormation()

	g.phase = PhaseTitle
	g.animTick = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseTitle:
		g.animTick++
		if g.animTick >= titleHoldTicks {
			g.setPhase(PhaseCountdown)
		}

	case PhaseCountdown:
		g.animTick++
		if g.animTick >= 3*countStepTicks {
			g.setPhase(PhasePlaying)
		}

	case PhasePlaying:
		g.play(in)

	case PhaseVictory:
		g.animTick++
		if g.animTick >= victoryTicks {
			g.nextLevel()
		}

	case PhaseGameOver:
		if g.animTick < overFlashTicks+overHoldTicks {
			g.animTick++
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) setPhase(p Phase) {
	g.phase = p
	g.animTick = 0
}

// play runs one simulation tick of the active formation: input (manual
// or autoplay), bullet motion, clock-gated formation movement and alien
// fire, then collision resolution.
func (g *Game) play(in core.InputFrame) {
	manual := in.Has(core.ActionLeft) || in.Has(core.ActionRight) || in.Has(core.ActionFire)
	if manual {
		if in.Has(core.ActionLeft) {
			g.movePlayer(-1)
		}
		if in.Has(core.ActionRight) {
			g.movePlayer(1)
		}
		if in.Has(core.ActionFire) {
			g.firePlayer()
		}
	} else {
		g.autoplay()
	}

	g.moveBullets()
	g.moveFormation()
	if g.gameOver {
		g.setPhase(PhaseGameOver)
		return
	}

	g.alienShoot()
	g.resolveCollisions()

	if g.gameOver {
		g.setPhase(PhaseGameOver)
		return
	}
	if g.victory {
		g.setPhase(PhaseVictory)
	}
}

// nextLevel advances to the next formation after a victory animation:
// bigger, faster roster, all bullets cleared.
func (g *Game) nextLevel() {
	g.level++
	g.victory = false
	g.playerBullets = nil
	g.alienBullets = nil
	g.spawnFormation()
	g.setPhase(PhasePlaying)
}

// movePlayer shifts the ship one cell, keeping its 3-pixel sprite on the
// matrix. An out-of-range move is a no-op.
func (g *Game) movePlayer(dir int) {
	newX := g.playerX + dir
	if newX >= 1 && newX <= core.Width-2 {
		g.playerX = newX
	}
}

// firePlayer appends a bullet above the ship, capped at the maximum
// concurrent count. Firing at the cap is a no-op.
func (g *Game) firePlayer() {
	if !g.playerAlive {
		return
	}
	if len(g.playerBullets) < MaxPlayerBullets {
		g.playerBullets = append(g.playerBullets, Bullet{X: g.playerX, Y: core.Height - 3})
	}
}

// moveBullets advances both bullet lists one cell and discards bullets
// that leave the matrix vertically.
func (g *Game) moveBullets() {
	kept := g.playerBullets[:0]
	for _, b := range g.playerBullets {
		b.Y--
		if b.Y >= 0 {
			kept = append(kept, b)
		}
	}
	g.playerBullets = kept

	kept = g.alienBullets[:0]
	for _, b := range g.alienBullets {
		b.Y++
		if b.Y < core.Height {
			kept = append(kept, b)
		}
	}
	g.alienBullets = kept
}

// State returns the current game state. GameOver is reported only after
// the game-over animation has played out.
func (g *Game) State() core.GameState {
	done := g.phase == PhaseGameOver && g.animTick >= overFlashTicks+overHoldTicks
	return core.GameState{
		Score:    g.score,
		GameOver: done,
	}
}

// Register the game with the registry.
func init() {
	registry.Register("invaders", func() registry.Program {
		return New()
	})
}
