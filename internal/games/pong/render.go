package pong

import "github.com/ledgrid/ledarcade/internal/core"

// Element colors.
var (
	p1Color    = core.Blue
	p2Color    = core.Red
	ballColor  = core.White
	trailColor = core.RGB{R: 100, G: 100, B: 50}
	lineColor  = core.RGB{R: 50, G: 50, B: 50}
)

// Countdown digit glyphs as offsets around the screen center.
var countdownGlyphs = map[int][][2]int{
	3: {{0, -2}, {1, -2}, {2, -2}, {2, -1}, {1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 0}},
	2: {{0, -2}, {1, -2}, {2, -2}, {2, -1}, {1, 0}, {0, 0}, {2, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}},
	1: {{1, -2}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {1, 2}, {0, 2}, {2, 2}},
}

// Render draws the current phase into the surface.
func (g *Game) Render(dst *core.Surface) {
	dst.Clear()

	switch g.phase {
	case PhaseTitle:
		g.renderTitle(dst)
	case PhaseCountdown:
		g.renderCountdown(dst)
	case PhaseRally:
		g.renderPlayfield(dst)
	case PhaseScored:
		g.renderScoreFlash(dst)
	case PhaseMatchOver:
		g.renderWinner(dst)
	}
}

// renderPlayfield draws the net, paddles, ball with trail and the score
// dots along the top row.
func (g *Game) renderPlayfield(dst *core.Surface) {
	// Dashed center line.
	for y := 0; y < core.Height; y += 2 {
		dst.Set(core.Width/2, y, lineColor)
	}

	dst.VLine(g.p1X, g.p1Y, PaddleHeight, p1Color)
	dst.VLine(g.p2X, g.p2Y, PaddleHeight, p2Color)

	// Trail pixel behind the ball.
	if g.ballVX > 0 {
		dst.Set(int(g.ballX)-1, int(g.ballY), trailColor)
	} else {
		dst.Set(int(g.ballX)+1, int(g.ballY), trailColor)
	}
	dst.Set(int(g.ballX), int(g.ballY), ballColor)

	// Score dots.
	for i := 0; i < g.score1; i++ {
		dst.Set(2+i, 0, p1Color)
	}
	for i := 0; i < g.score2; i++ {
		dst.Set(core.Width-3-i, 0, p2Color)
	}
}

// renderTitle draws the PONG lettering, sweeps a ball across it and then
// shows the two paddles.
func (g *Game) renderTitle(dst *core.Surface) {
	// P
	dst.VLine(2, 2, 5, core.White)
	dst.Set(3, 2, core.White)
	dst.Set(4, 2, core.White)
	dst.Set(4, 3, core.White)
	dst.Set(3, 4, core.White)

	// O
	dst.VLine(6, 2, 5, core.White)
	dst.VLine(9, 2, 5, core.White)
	dst.Set(7, 2, core.White)
	dst.Set(8, 2, core.White)
	dst.Set(7, 6, core.White)
	dst.Set(8, 6, core.White)

	// N
	dst.VLine(11, 2, 5, core.White)
	dst.VLine(14, 2, 5, core.White)
	dst.Set(12, 3, core.White)
	dst.Set(13, 4, core.White)

	if g.animTick < titleSweepTicks {
		dst.Set(g.animTick, 10, core.Yellow)
		return
	}

	dst.VLine(1, 9, PaddleHeight, p1Color)
	dst.VLine(14, 9, PaddleHeight, p2Color)
}

// renderCountdown draws 3-2-1 then a full-screen green GO flash.
func (g *Game) renderCountdown(dst *core.Surface) {
	step := g.animTick / countStepTicks
	if step >= 3 {
		dst.Fill(core.Green)
		return
	}

	cx, cy := 7, 7
	for _, p := range countdownGlyphs[3-step] {
		dst.Set(cx+p[0], cy+p[1], core.Green)
	}
}

// renderScoreFlash flashes the scoring player's half of the matrix.
func (g *Game) renderScoreFlash(dst *core.Surface) {
	if (g.animTick/2)%2 != 0 {
		return // off beat, leave cleared
	}

	color := p1Color
	x0 := 0
	if g.lastScorer == 2 {
		color = p2Color
		x0 = core.Width / 2
	}
	dst.FillRect(x0, 0, core.Width/2, core.Height, color)
}

// renderWinner plays the match-over sequence: fill the screen row by row
// in the winner's color, hold, flash, then go dark.
func (g *Game) renderWinner(dst *core.Surface) {
	color := p1Color
	if g.winner == 2 {
		color = p2Color
	}

	t := g.animTick
	switch {
	case t < winFillTicks:
		dst.FillRect(0, 0, core.Width, t+1, color)
	case t < winFillTicks+winHoldTicks:
		dst.Fill(color)
	case t < winFillTicks+winHoldTicks+winFlashTicks:
		if ((t-winFillTicks-winHoldTicks)/2)%2 == 0 {
			dst.Fill(color)
		}
	default:
		// dark hold before the driver restarts the match
	}
}
