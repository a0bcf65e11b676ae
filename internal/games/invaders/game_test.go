package invaders

import (
	"testing"

	"github.com/ledgrid/ledarcade/internal/core"
)

func testGame(seed int64) (*Game, *core.ManualClock) {
	clk := core.NewManualClock()
	g := New()
	g.Reset(core.RuntimeConfig{
		TickRate:   20,
		Seed:       seed,
		Brightness: 0.3,
		Clock:      clk,
	})
	return g, clk
}

// playing returns a game fast-forwarded past the title and countdown.
func playing(t *testing.T, seed int64) (*Game, *core.ManualClock) {
	t.Helper()
	g, clk := testGame(seed)
	g.setPhase(PhasePlaying)
	return g, clk
}

// tickFor advances the game n ticks, moving the clock 50ms per tick.
func tickFor(g *Game, clk *core.ManualClock, in core.InputFrame, n int) {
	for i := 0; i < n; i++ {
		clk.Advance(50)
		g.Step(in)
	}
}

func TestSpawnFormationLevelOne(t *testing.T) {
	g, _ := testGame(1)

	if g.level != 1 {
		t.Fatalf("level = %d, want 1", g.level)
	}
	// Level 1: 3 rows x 7 columns, all alive.
	if got := len(g.aliens); got != 21 {
		t.Errorf("roster size = %d, want 21", got)
	}
	if got := g.AliveCount(); got != len(g.aliens) {
		t.Errorf("alive = %d, want %d", got, len(g.aliens))
	}
	for _, a := range g.aliens {
		if a.X < 1 || a.X > core.Width-2 {
			t.Errorf("alien spawned at x = %d, outside margins", a.X)
		}
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	g, clk := playing(t, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	tickFor(g, clk, in, 40)
	if g.playerX != 1 {
		t.Errorf("pinned left: x = %d, want 1", g.playerX)
	}

	in.Clear()
	in.Set(core.ActionRight)
	tickFor(g, clk, in, 40)
	if want := core.Width - 2; g.playerX != want {
		t.Errorf("pinned right: x = %d, want %d", g.playerX, want)
	}
}

func TestPlayerBulletCap(t *testing.T) {
	g, _ := playing(t, 1)

	for i := 0; i < 10; i++ {
		g.firePlayer()
	}
	if got := len(g.playerBullets); got != MaxPlayerBullets {
		t.Errorf("bullets = %d, want cap %d", got, MaxPlayerBullets)
	}
}

func TestDeadShipCannotFire(t *testing.T) {
	g, _ := playing(t, 1)

	g.playerAlive = false
	g.firePlayer()
	if len(g.playerBullets) != 0 {
		t.Errorf("dead ship spawned a bullet")
	}
}

func TestFormationEdgeReversal(t *testing.T) {
	g, clk := playing(t, 1)
	g.alienBullets = nil
	g.playerBullets = nil

	startDir := g.direction
	startY := g.aliens[0].Y

	// Drive only the formation clock; keep the ship passive by pausing
	// manual input out and neutralizing autoplay side effects.
	in := core.NewInputFrame()
	in.Set(core.ActionRight) // manual, but pinned at the wall soon enough

	reversed := false
	for i := 0; i < 200 && !reversed; i++ {
		clk.Advance(50)
		g.Step(in)
		if g.direction != startDir {
			reversed = true
		}
	}
	if !reversed {
		t.Fatal("formation never reversed at the edge")
	}
	if g.aliens[0].Y != startY+1 {
		t.Errorf("reversal did not drop the formation: y = %d, want %d", g.aliens[0].Y, startY+1)
	}
}

func TestDeadAliensDoNotBlockEdges(t *testing.T) {
	g, _ := playing(t, 1)

	// Kill every alien but one in the middle, then park a dead alien at
	// the right margin. The dead alien must not trigger a reversal.
	for i := range g.aliens {
		g.aliens[i].Alive = false
	}
	g.aliens[0].Alive = true
	g.aliens[0].X = 7
	g.aliens[1].X = core.Width - 2
	g.direction = 1

	g.lastAlienMove = -g.alienMoveMS // force the interval to have elapsed
	g.moveFormation()

	if g.direction != 1 {
		t.Error("dead alien at margin reversed the formation")
	}
	if g.aliens[0].X != 8 {
		t.Errorf("living alien x = %d, want 8", g.aliens[0].X)
	}
}

func TestFrontmostPerColumnSkipsDead(t *testing.T) {
	g, _ := playing(t, 1)

	for i := range g.aliens {
		g.aliens[i].Alive = false
	}
	// Two aliens in one column, the lower one dead.
	g.aliens[0].Alive = true
	g.aliens[0].X, g.aliens[0].Y = 5, 1
	g.aliens[1].X, g.aliens[1].Y = 5, 3

	shooters := g.frontmostPerColumn()
	if len(shooters) != 1 {
		t.Fatalf("shooters = %d, want 1", len(shooters))
	}
	if shooters[0] != 0 {
		t.Errorf("shooter index = %d, want the living alien 0", shooters[0])
	}
}

func TestCollisionKillsAlienAndScores(t *testing.T) {
	g, _ := playing(t, 1)

	target := &g.aliens[0]
	g.playerBullets = []Bullet{{X: target.X, Y: target.Y}}
	g.alienBullets = nil

	g.resolveCollisions()

	if target.Alive {
		t.Error("direct hit left the alien alive")
	}
	if want := 10 * (target.Type + 1); g.score != want {
		t.Errorf("score = %d, want %d", g.score, want)
	}
	if len(g.playerBullets) != 0 {
		t.Error("bullet survived its hit")
	}
}

func TestNearMissDoesNotKill(t *testing.T) {
	g, _ := playing(t, 1)

	target := g.aliens[0]
	// Two cells away exceeds the 1-cell hit radius.
	g.playerBullets = []Bullet{{X: target.X + 2, Y: target.Y}}
	g.resolveCollisions()

	if !g.aliens[0].Alive {
		t.Error("near miss killed the alien")
	}
}

func TestShipHitEndsGame(t *testing.T) {
	g, clk := playing(t, 1)

	g.alienBullets = []Bullet{{X: g.playerX, Y: core.Height - 1}}
	g.resolveCollisions()

	if !g.gameOver || g.playerAlive {
		t.Fatal("ship hit did not end the game")
	}

	// GameOver is reported only after the animation has played out.
	g.setPhase(PhaseGameOver)
	in := core.NewInputFrame()
	res := g.Step(in)
	if res.State.GameOver {
		t.Error("GameOver reported before the animation finished")
	}
	tickFor(g, clk, in, overFlashTicks+overHoldTicks)
	if !g.State().GameOver {
		t.Error("GameOver not reported after the animation")
	}
}

func TestVictoryAdvancesLevel(t *testing.T) {
	g, clk := playing(t, 1)

	for i := range g.aliens {
		g.aliens[i].Alive = false
	}
	g.resolveCollisions()

	if !g.victory {
		t.Fatal("empty roster did not set victory")
	}
	g.setPhase(PhaseVictory)

	// Shots still in flight when the formation falls must not carry
	// over to the respawned level.
	g.playerBullets = []Bullet{{X: 3, Y: 5}}
	g.alienBullets = []Bullet{{X: 12, Y: 4}}

	in := core.NewInputFrame()
	tickFor(g, clk, in, victoryTicks)

	if len(g.playerBullets) != 0 || len(g.alienBullets) != 0 {
		t.Errorf("respawn kept stale bullets: %d player, %d alien",
			len(g.playerBullets), len(g.alienBullets))
	}
	if g.level != 2 {
		t.Errorf("level = %d, want 2", g.level)
	}
	if g.phase != PhasePlaying {
		t.Errorf("phase = %v, want PhasePlaying", g.phase)
	}
	// Level 2: 4 rows, 7 columns fit within the margins.
	if got := len(g.aliens); got != 28 {
		t.Errorf("level 2 roster = %d, want 28", got)
	}
	if got := g.AliveCount(); got != len(g.aliens) {
		t.Errorf("respawned roster not fully alive: %d of %d", got, len(g.aliens))
	}
}

func TestFormationSpeedsUpAsItThins(t *testing.T) {
	g, _ := playing(t, 1)

	before := g.alienMoveMS
	for i := 0; i < len(g.aliens)/2; i++ {
		g.aliens[i].Alive = false
	}
	g.rescaleMoveInterval()

	if g.alienMoveMS >= before {
		t.Errorf("interval = %dms, want faster than %dms", g.alienMoveMS, before)
	}
	if g.alienMoveMS < MinMoveMS {
		t.Errorf("interval = %dms below floor %d", g.alienMoveMS, MinMoveMS)
	}
}

func TestAutoplayEventuallyEnds(t *testing.T) {
	g, clk := playing(t, 99)

	in := core.NewInputFrame()
	for i := 0; i < 500000; i++ {
		clk.Advance(50)
		res := g.Step(in)
		if res.State.GameOver {
			return
		}
		// Autoplay clears levels indefinitely; stop once it has proven
		// it can finish at least one formation.
		if g.level >= 3 {
			return
		}
	}
	t.Fatal("autoplay run never cleared a level or died")
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, clk := playing(t, 42)
		in := core.NewInputFrame()
		tickFor(g, clk, in, 3000)
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Level != b.Level || a.PlayerX != b.PlayerX ||
		a.Phase != b.Phase || len(a.Aliens) != len(b.Aliens) {
		t.Errorf("seeded runs diverged: %+v vs %+v", a, b)
	}
}

func TestRenderDrawsOnlyLivingAliens(t *testing.T) {
	g, _ := playing(t, 1)

	for i := range g.aliens {
		g.aliens[i].Alive = false
	}
	g.playerBullets = nil
	g.alienBullets = nil
	g.playerAlive = false

	dst := core.NewSurface(1.0, nil)
	g.Render(dst)

	lit := 0
	for y := 0; y < core.Height; y++ {
		for x := 0; x < core.Width; x++ {
			if y == 0 && x == core.Width-1 {
				continue // level indicator dot
			}
			if got := dst.Get(x, y); got != core.Black {
				lit++
			}
		}
	}
	if lit != 0 {
		t.Errorf("%d pixels lit by dead aliens", lit)
	}
}
