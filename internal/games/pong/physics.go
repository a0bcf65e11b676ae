package pong

import "github.com/ledgrid/ledarcade/internal/core"

// updateBall integrates the ball one tick and handles wall bounces,
// paddle rebounds and scoring.
func (g *Game) updateBall() {
	g.ballX += g.ballVX
	g.ballY += g.ballVY

	// Top/bottom wall: clamp and reflect.
	if g.ballY <= 0 {
		g.ballY = 0
		g.ballVY = abs(g.ballVY)
	} else if g.ballY >= core.Height-1 {
		g.ballY = core.Height - 1
		g.ballVY = -abs(g.ballVY)
	}

	// Left paddle.
	if g.ballX <= float64(g.p1X+1) && g.ballVX < 0 {
		if g.ballY >= float64(g.p1Y) && g.ballY <= float64(g.p1Y+PaddleHeight-1) {
			g.ballX = float64(g.p1X + 1)
			g.ballVX = abs(g.ballVX)
			g.rebound(float64(g.p1Y))
			if g.ballVX*SpeedUp < MaxSpeed {
				g.ballVX *= SpeedUp
			} else {
				g.ballVX = MaxSpeed
			}
		}
	}

	// Right paddle.
	if g.ballX >= float64(g.p2X-1) && g.ballVX > 0 {
		if g.ballY >= float64(g.p2Y) && g.ballY <= float64(g.p2Y+PaddleHeight-1) {
			g.ballX = float64(g.p2X - 1)
			g.ballVX = -abs(g.ballVX)
			g.rebound(float64(g.p2Y))
			if g.ballVX*SpeedUp > -MaxSpeed {
				g.ballVX *= SpeedUp
			} else {
				g.ballVX = -MaxSpeed
			}
		}
	}

	// Scoring.
	if g.ballX <= 0 {
		g.scorePoint(2)
	} else if g.ballX >= core.Width-1 {
		g.scorePoint(1)
	}
}

// rebound recomputes the vertical velocity from the impact fraction:
// 0 = top edge of the paddle, 1 = bottom edge, mapped linearly through
// the configured angle gain. Also counts the rally.
func (g *Game) rebound(paddleTop float64) {
	hit := (g.ballY - paddleTop) / PaddleHeight
	g.ballVY = (hit - 0.5) * AngleGain
	g.rallyCount++
}

// scorePoint awards a point and either enters the score flash or ends
// the match when the winning score is reached.
func (g *Game) scorePoint(player int) {
	g.lastScorer = player
	if player == 1 {
		g.score1++
		if g.score1 >= WinningScore {
			g.winner = 1
			g.setPhase(PhaseMatchOver)
			return
		}
	} else {
		g.score2++
		if g.score2 >= WinningScore {
			g.winner = 2
			g.setPhase(PhaseMatchOver)
			return
		}
	}
	g.setPhase(PhaseScored)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
