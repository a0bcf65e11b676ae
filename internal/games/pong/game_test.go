package pong

import (
	"testing"

	"github.com/ledgrid/ledarcade/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate:   20,
		Seed:       seed,
		Brightness: 0.3,
		Clock:      core.NewManualClock(),
	}
}

// rallying returns a game fast-forwarded past the title and countdown.
func rallying(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(seed))
	g.setPhase(PhaseRally)
	return g
}

func TestPaddleStaysInBounds(t *testing.T) {
	g := rallying(t, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionP1Up)
	for i := 0; i < 100; i++ {
		g.Step(in)
	}
	if g.p1Y != 0 {
		t.Errorf("paddle pinned up: y = %d, want 0", g.p1Y)
	}

	in.Clear()
	in.Set(core.ActionP1Down)
	for i := 0; i < 100; i++ {
		g.Step(in)
	}
	if want := core.Height - PaddleHeight; g.p1Y != want {
		t.Errorf("paddle pinned down: y = %d, want %d", g.p1Y, want)
	}
}

func TestBallVerticalBounds(t *testing.T) {
	g := rallying(t, 2)

	in := core.NewInputFrame()
	for i := 0; i < 2000 && g.phase == PhaseRally; i++ {
		g.Step(in)
		if g.ballY < 0 || g.ballY > core.Height-1 {
			t.Fatalf("tick %d: ball y = %f out of [0, %d]", i, g.ballY, core.Height-1)
		}
	}
}

func TestWallReflectionFlipsVY(t *testing.T) {
	g := rallying(t, 3)

	g.ballX = 8
	g.ballY = 0.5
	g.ballVX = 0.5
	g.ballVY = -1.0
	g.updateBall()

	if g.ballVY <= 0 {
		t.Errorf("vy = %f after top wall, want positive", g.ballVY)
	}
	if g.ballY != 0 {
		t.Errorf("ball y = %f after top wall, want clamped to 0", g.ballY)
	}
}

func TestReboundSpeedNonDecreasing(t *testing.T) {
	g := rallying(t, 4)

	// Park the ball on the left paddle plane, heading in.
	g.p1Y = 6
	g.ballX = 1.5
	g.ballY = 7
	g.ballVX = -0.8
	g.ballVY = 0

	before := abs(g.ballVX)
	g.updateBall()

	if abs(g.ballVX) < before {
		t.Errorf("|vx| decreased on rebound: %f -> %f", before, abs(g.ballVX))
	}
	if g.ballVX <= 0 {
		t.Errorf("vx = %f after left paddle hit, want positive", g.ballVX)
	}
	if g.rallyCount != 1 {
		t.Errorf("rally count = %d, want 1", g.rallyCount)
	}

	// Rebound angle follows the impact fraction.
	hit := (g.ballY - float64(g.p1Y)) / PaddleHeight
	want := (hit - 0.5) * AngleGain
	if g.ballVY != want {
		t.Errorf("vy = %f, want %f", g.ballVY, want)
	}
}

func TestReboundSpeedCapped(t *testing.T) {
	g := rallying(t, 5)

	for i := 0; i < 50; i++ {
		g.p1Y = 6
		g.ballX = 1.5
		g.ballY = 7
		g.ballVX = -abs(g.ballVX)
		g.updateBall()
		if abs(g.ballVX) > MaxSpeed {
			t.Fatalf("rebound %d: |vx| = %f exceeds cap %f", i, abs(g.ballVX), MaxSpeed)
		}
	}
}

func TestScoringServesTowardConcedingSide(t *testing.T) {
	g := rallying(t, 6)

	// Ball exits on the left: right player scores.
	g.p1Y = 12 // paddle out of the way
	g.ballX = 0.4
	g.ballY = 2
	g.ballVX = -0.8
	g.ballVY = 0
	g.updateBall()

	if g.score2 != 1 || g.score1 != 0 {
		t.Fatalf("scores = %d-%d, want 0-1", g.score1, g.score2)
	}
	if g.phase != PhaseScored {
		t.Fatalf("phase = %v, want PhaseScored", g.phase)
	}

	// Play out the score flash; the serve must head back left, toward
	// the side that was scored against.
	in := core.NewInputFrame()
	for g.phase == PhaseScored {
		g.Step(in)
	}
	if g.ballX != core.Width/2 || g.ballY != core.Height/2 {
		t.Errorf("serve position = (%f, %f), want center", g.ballX, g.ballY)
	}
	if g.ballVX >= 0 {
		t.Errorf("serve vx = %f, want negative (toward conceded side)", g.ballVX)
	}
}

func TestMatchOverAtWinningScore(t *testing.T) {
	g := rallying(t, 7)

	g.score1 = WinningScore - 1
	g.p2Y = 0 // out of the way
	g.ballX = core.Width - 1.2
	g.ballY = 12
	g.ballVX = 0.8
	g.updateBall()

	if g.score1 != WinningScore {
		t.Fatalf("score1 = %d, want %d", g.score1, WinningScore)
	}
	if g.phase != PhaseMatchOver {
		t.Errorf("phase = %v, want PhaseMatchOver", g.phase)
	}
	if g.winner != 1 {
		t.Errorf("winner = %d, want 1", g.winner)
	}

	// Terminal until reset: further ticks never leave the phase.
	in := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		g.Step(in)
	}
	if g.phase != PhaseMatchOver {
		t.Errorf("phase = %v after game over, want PhaseMatchOver", g.phase)
	}
	if !g.State().GameOver {
		t.Error("GameOver not reported after winner animation")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(12345))
		in := core.NewInputFrame()
		for i := 0; i < 500; i++ {
			in.Clear()
			if i%7 == 0 {
				in.Set(core.ActionP1Up)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	if run() != run() {
		t.Error("same seed and inputs produced different snapshots")
	}
}

func TestAIMatchTerminates(t *testing.T) {
	g := New()
	g.Reset(testConfig(99))

	in := core.NewInputFrame()
	const maxTicks = 500000
	ticks := 0
	for ; ticks < maxTicks; ticks++ {
		if g.Step(in).State.GameOver {
			break
		}
	}
	if ticks == maxTicks {
		t.Fatal("AI-vs-AI match did not terminate")
	}

	hi := core.Max(g.score1, g.score2)
	lo := core.Min(g.score1, g.score2)
	if hi != WinningScore {
		t.Errorf("winning score = %d, want %d", hi, WinningScore)
	}
	if lo >= WinningScore {
		t.Errorf("losing score = %d, want < %d", lo, WinningScore)
	}
	if g.winner != 1 && g.winner != 2 {
		t.Errorf("winner = %d, want 1 or 2", g.winner)
	}
}
