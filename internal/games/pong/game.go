// Package pong implements the paddle game for the 16x16 matrix.
// Both paddles can be driven by buttons; any paddle without a manual
// intent on a given tick falls back to the built-in AI, so the game runs
// as a self-playing demo when no buttons are attached.
package pong

import (
	"math/rand"

	"github.com/ledgrid/ledarcade/internal/core"
	"github.com/ledgrid/ledarcade/internal/registry"
)

// Gameplay tunables. The angle and speed-up constants are heuristic
// tunings; change them together or rallies stop converging.
const (
	PaddleHeight = 4
	WinningScore = 5

	InitialSpeed = 0.8
	SpeedUp      = 1.05
	MaxSpeed     = 2.0
	AngleGain    = 1.5

	AIPredictTicks = 3
	AIErrorChance  = 0.3
)

// Phase identifies the current stage of the match state machine.
type Phase int

const (
	PhaseTitle     Phase = iota // title card with ball sweep
	PhaseCountdown              // 3-2-1 serve countdown
	PhaseRally                  // ball in play
	PhaseScored                 // score flash, ball about to reset
	PhaseMatchOver              // winner animation, terminal until Reset
)

// Animation lengths in ticks (one tick = 50 ms).
const (
	titleSweepTicks = core.Width
	titleHoldTicks  = 40
	countStepTicks  = 12
	countGoTicks    = 4
	scoreFlashTicks = 8
	winFillTicks    = core.Height
	winHoldTicks    = 10
	winFlashTicks   = 20
	winEndTicks     = 20
)

// Game implements the paddle game engine.
type Game struct {
	// Paddles: fixed x planes, mutable top-edge y.
	p1X, p2X int
	p1Y, p2Y int

	// Ball state, float for sub-pixel motion.
	ballX, ballY   float64
	ballVX, ballVY float64

	score1, score2 int
	rallyCount     int

	phase      Phase
	animTick   int
	winner     int // 1 or 2, set exactly once on match end
	lastScorer int

	rng  *rand.Rand
	tick int
}

// New creates a new paddle game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this program.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pong"
}

// Reset initializes or restarts the match.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.p1X = 0
	g.p2X = core.Width - 1
	g.p1Y = (core.Height - PaddleHeight) / 2
	g.p2Y = (core.Height - PaddleHeight) / 2

	g.score1 = 0
	g.score2 = 0
	g.rallyCount = 0
	g.winner = 0
	g.lastScorer = 0
	g.tick = 0

	g.phase = PhaseTitle
	g.animTick = 0

	g.serve(g.pick(-1, 1))
}

// serve recenters the ball heading toward the given side (-1 = left,
// +1 = right) with a small random vertical component.
func (g *Game) serve(direction int) {
	g.ballX = core.Width / 2
	g.ballY = core.Height / 2
	g.ballVX = float64(direction) * InitialSpeed
	g.ballVY = (g.rng.Float64() - 0.5) * 0.8
	g.rallyCount = 0
}

func (g *Game) pick(a, b int) int {
	if g.rng.Intn(2) == 0 {
		return a
	}
	return b
}

// Step advances the match by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseTitle:
		g.animTick++
		if g.animTick >= titleSweepTicks+titleHoldTicks {
			g.setPhase(PhaseCountdown)
		}

	case PhaseCountdown:
		g.animTick++
		if g.animTick >= 3*countStepTicks+countGoTicks {
			g.setPhase(PhaseRally)
		}

	case PhaseRally:
		g.movePaddles(in)
		g.updateBall()

	case PhaseScored:
		g.animTick++
		if g.animTick >= scoreFlashTicks {
			// Serve toward the side that was scored against.
			if g.lastScorer == 1 {
				g.serve(1)
			} else {
				g.serve(-1)
			}
			g.setPhase(PhaseRally)
		}

	case PhaseMatchOver:
		if g.animTick < winFillTicks+winHoldTicks+winFlashTicks+winEndTicks {
			g.animTick++
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) setPhase(p Phase) {
	g.phase = p
	g.animTick = 0
}

// movePaddles applies manual intents, falling back to the AI for any
// paddle with no manual intent this tick. The AI runs on every other
// tick to keep it beatable.
func (g *Game) movePaddles(in core.InputFrame) {
	manual1 := in.Has(core.ActionP1Up) || in.Has(core.ActionP1Down)
	manual2 := in.Has(core.ActionP2Up) || in.Has(core.ActionP2Down)

	if in.Has(core.ActionP1Up) {
		g.movePaddle(1, -1)
	}
	if in.Has(core.ActionP1Down) {
		g.movePaddle(1, 1)
	}
	if in.Has(core.ActionP2Up) {
		g.movePaddle(2, -1)
	}
	if in.Has(core.ActionP2Down) {
		g.movePaddle(2, 1)
	}

	if g.tick%2 != 0 {
		return
	}
	if !manual1 {
		g.aiMove(1)
	}
	if !manual2 {
		g.aiMove(2)
	}
}

// movePaddle moves a paddle one step, or does nothing if the move would
// leave the matrix. An out-of-range move is a no-op, not an error.
func (g *Game) movePaddle(player, dir int) {
	if player == 1 {
		newY := g.p1Y + dir
		if newY >= 0 && newY <= core.Height-PaddleHeight {
			g.p1Y = newY
		}
		return
	}
	newY := g.p2Y + dir
	if newY >= 0 && newY <= core.Height-PaddleHeight {
		g.p2Y = newY
	}
}

// State returns the current match state. GameOver is reported only after
// the winner animation has played out, so the loop driver can restart
// the match cleanly.
func (g *Game) State() core.GameState {
	done := g.phase == PhaseMatchOver &&
		g.animTick >= winFillTicks+winHoldTicks+winFlashTicks+winEndTicks
	return core.GameState{
		Score:    core.Max(g.score1, g.score2),
		GameOver: done,
	}
}

// Register the game with the registry.
func init() {
	registry.Register("pong", func() registry.Program {
		return New()
	})
}
