package invaders

// Snapshot captures the observable engine state for tests and debugging.
type Snapshot struct {
	PlayerX       int
	PlayerAlive   bool
	PlayerBullets []Bullet
	AlienBullets  []Bullet
	Aliens        []Alien
	Direction     int
	Score         int
	Level         int
	Victory       bool
	GameOver      bool
	Phase         Phase
}

// Snapshot returns a copy of the current engine state. Slices are copied
// so callers cannot mutate the engine.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		PlayerX:       g.playerX,
		PlayerAlive:   g.playerAlive,
		PlayerBullets: append([]Bullet(nil), g.playerBullets...),
		AlienBullets:  append([]Bullet(nil), g.alienBullets...),
		Aliens:        append([]Alien(nil), g.aliens...),
		Direction:     g.direction,
		Score:         g.score,
		Level:         g.level,
		Victory:       g.victory,
		GameOver:      g.gameOver,
		Phase:         g.phase,
	}
}

// AliveCount returns the number of living aliens.
func (g *Game) AliveCount() int {
	n := 0
	for _, a := range g.aliens {
		if a.Alive {
			n++
		}
	}
	return n
}
