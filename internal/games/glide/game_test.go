package glide

import (
	"testing"

	"github.com/tinwren/pocket-arcade/internal/core"
	"github.com/tinwren/pocket-arcade/internal/ecs"
	"github.com/tinwren/pocket-arcade/internal/physics"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     12345,
	}
}

func birdBody(t *testing.T, g *Game) *body {
	t.Helper()
	b, ok := ecs.Get[*body](g.world, g.bird)
	if !ok {
		t.Fatal("bird has no body component")
	}
	return b
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig()

	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%12 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() (core.GameState, uint64) {
		g := New()
		g.Reset(cfg)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
			if st.GameOver {
				break
			}
		}
		return st, g.world.Tick()
	}

	st1, ticks1 := run()
	st2, ticks2 := run()

	if st1.Score != st2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", st1.Score, st2.Score)
	}
	if ticks1 != ticks2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", ticks1, ticks2)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	g.Reset(testConfig())

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.gameOver || g.paused {
		t.Error("Reset should clear gameOver and paused flags")
	}
	if n := len(g.world.ActorsWithTag(tagPipe)); n != 0 {
		t.Errorf("Reset should discard pipes, got %d", n)
	}
}

func TestFlapPhysics(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	b := birdBody(t, g)
	yBefore := b.Y

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)

	if b.Y >= yBefore {
		t.Errorf("flap should move the bird up, was %f, now %f", yBefore, b.Y)
	}
}

func TestGravity(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	b := birdBody(t, g)
	yBefore := b.Y

	g.Step(core.NewInputFrame())

	if b.Y <= yBefore {
		t.Errorf("gravity should pull the bird down, was %f, now %f", yBefore, b.Y)
	}
	if b.VY <= 0 {
		t.Errorf("velocity should be positive after gravity, got %f", b.VY)
	}
}

func TestGroundEndsTheGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	b := birdBody(t, g)
	b.Y = g.groundY() - 0.5
	b.VY = 5

	st := g.Step(core.NewInputFrame()).State
	if !st.GameOver {
		t.Error("hitting the ground should end the game")
	}
}

func TestPipeCollision(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	b := birdBody(t, g)

	// Pipe pair on top of the bird with the gap far above it.
	a := g.world.AddActor()
	g.world.AddComponent(a, &body{physics.Body{X: b.X, W: g.tuning.Pipes.Width}})
	g.world.AddComponent(a, &pipe{gapY: float64(hudRows) + 1, gapH: 3})
	g.world.AddTag(a, tagPipe)

	st := g.Step(core.NewInputFrame()).State
	if !st.GameOver {
		t.Error("flying into a pipe should end the game")
	}
}

func TestScoringOnPass(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	b := birdBody(t, g)

	// A pipe pair just behind the bird that has not been scored yet.
	a := g.world.AddActor()
	g.world.AddComponent(a, &body{physics.Body{X: b.Rect().Left() - 10, W: g.tuning.Pipes.Width}})
	g.world.AddComponent(a, &pipe{gapY: 5, gapH: 10})
	g.world.AddTag(a, tagPipe)

	st := g.Step(core.NewInputFrame()).State
	if st.Score != 1 {
		t.Errorf("passing a pipe should score 1, got %d", st.Score)
	}

	// The same pair must not score twice.
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	st = g.Step(in).State
	if st.Score != 1 {
		t.Errorf("a pipe should score once, got %d", st.Score)
	}
}

func TestPipesAreRecycled(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	maxPipes := 0
	for i := 0; i < 500; i++ {
		in := core.NewInputFrame()
		if i%12 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
		if g.gameOver {
			break
		}
		if n := len(g.world.ActorsWithTag(tagPipe)); n > maxPipes {
			maxPipes = n
		}
	}

	// Screen width 80, spacing 40: a handful of pairs at most.
	if maxPipes == 0 {
		t.Fatal("pipes should spawn while playing")
	}
	if maxPipes > 6 {
		t.Errorf("off-screen pipes should be removed, saw %d live pairs", maxPipes)
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)
	for i := 0; i < 10; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionJump)
		g.Step(in)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	groundY := cfg.ScreenH - 1
	if screen.Get(0, groundY) != groundChar {
		t.Errorf("ground should be drawn at the bottom, got %q", screen.Get(0, groundY))
	}
}
