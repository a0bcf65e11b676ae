package pong

import "github.com/ledgrid/ledarcade/internal/core"

// aiMove steps one paddle toward its target. The target is a linear
// extrapolation of the ball over a short horizon when the ball is
// inbound, the vertical center otherwise. A fixed error chance nudges
// the target by a bounded random offset so the AI stays beatable.
func (g *Game) aiMove(player int) {
	predictY := g.ballY + g.ballVY*AIPredictTicks
	centerY := (core.Height - PaddleHeight) / 2

	var paddleY int
	var inbound bool
	if player == 1 {
		paddleY = g.p1Y
		inbound = g.ballVX < 0
	} else {
		paddleY = g.p2Y
		inbound = g.ballVX > 0
	}

	targetY := centerY
	if inbound {
		targetY = int(predictY) - PaddleHeight/2
		if g.rng.Float64() < AIErrorChance {
			targetY += g.rng.Intn(5) - 2
		}
	}

	if paddleY < targetY {
		g.movePaddle(player, 1)
	} else if paddleY > targetY {
		g.movePaddle(player, -1)
	}
}
