package pong

// Snapshot captures the observable engine state for tests and debugging.
type Snapshot struct {
	P1Y, P2Y       int
	BallX, BallY   float64
	BallVX, BallVY float64
	Score1, Score2 int
	RallyCount     int
	Phase          Phase
	Winner         int
}

// Snapshot returns a copy of the current engine state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		P1Y:        g.p1Y,
		P2Y:        g.p2Y,
		BallX:      g.ballX,
		BallY:      g.ballY,
		BallVX:     g.ballVX,
		BallVY:     g.ballVY,
		Score1:     g.score1,
		Score2:     g.score2,
		RallyCount: g.rallyCount,
		Phase:      g.phase,
		Winner:     g.winner,
	}
}
