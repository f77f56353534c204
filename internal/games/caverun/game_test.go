package caverun

import (
	"testing"

	"github.com/tinwren/pocket-arcade/internal/core"
	"github.com/tinwren/pocket-arcade/internal/ecs"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     1,
	}
}

func stepN(g *Game, n int, actions ...core.Action) {
	for i := 0; i < n; i++ {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		g.Step(in)
	}
}

func playerBody(t *testing.T, g *Game) *body {
	t.Helper()
	b, ok := ecs.Get[*body](g.world, g.player)
	if !ok {
		t.Fatal("player has no body component")
	}
	return b
}

func playerControl(t *testing.T, g *Game) *control {
	t.Helper()
	c, ok := ecs.Get[*control](g.world, g.player)
	if !ok {
		t.Fatal("player has no control component")
	}
	return c
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig()

	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		inputs[i].Set(core.ActionRight)
		if i%20 == 0 {
			inputs[i].Set(core.ActionJump)
		}
		if i%45 == 0 {
			inputs[i].Set(core.ActionDash)
		}
	}

	run := func() (core.GameState, float64, float64) {
		g := New()
		g.Reset(cfg)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
			if st.GameOver {
				break
			}
		}
		b := playerBody(t, g)
		return st, b.X, b.Y
	}

	st1, x1, y1 := run()
	st2, x2, y2 := run()

	if st1.Score != st2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", st1.Score, st2.Score)
	}
	if x1 != x2 || y1 != y2 {
		t.Errorf("Determinism failed: positions differ. Run1=(%f,%f), Run2=(%f,%f)", x1, y1, x2, y2)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	initialGems := g.gemsLeft
	if initialGems == 0 {
		t.Fatal("level should contain gems")
	}

	stepN(g, 60, core.ActionRight)
	g.score = 42
	g.gameOver = true

	g.Reset(testConfig())

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.gameOver || g.won || g.paused {
		t.Error("Reset should clear end-of-game flags")
	}
	if g.gemsLeft != initialGems {
		t.Errorf("Reset should restore gems, want %d, got %d", initialGems, g.gemsLeft)
	}
}

func TestPlayerFallsAndLands(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	stepN(g, 60)

	ctl := playerControl(t, g)
	if !ctl.grounded {
		t.Fatal("player should be grounded after settling")
	}

	b := playerBody(t, g)
	floorTop := float64(g.level.height - 1)
	if bottom := b.Rect().Bottom(); bottom > floorTop {
		t.Errorf("player sank into the floor: bottom=%f, floor top=%f", bottom, floorTop)
	}
}

func TestJumpFromGround(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	stepN(g, 60) // settle on the ground

	b := playerBody(t, g)
	yBefore := b.Y

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)

	if b.VY >= 0 {
		t.Errorf("jump should set upward velocity, got VY=%f", b.VY)
	}

	stepN(g, 3)
	if b.Y >= yBefore {
		t.Errorf("player should rise after jump, was y=%f, now y=%f", yBefore, b.Y)
	}
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	stepN(g, 60)

	// Hold jump: only the first tick may trigger it.
	stepN(g, 2, core.ActionJump)
	b := playerBody(t, g)
	vyAfterJump := b.VY

	// Still holding while airborne must not re-trigger.
	stepN(g, 1, core.ActionJump)
	if b.VY < vyAfterJump {
		t.Errorf("held jump retriggered: VY went from %f to %f", vyAfterJump, b.VY)
	}
}

func TestGemPickup(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	gems := g.world.ActorsWithTag(tagGem)
	if len(gems) == 0 {
		t.Fatal("level should contain gems")
	}
	gemsBefore := g.gemsLeft

	gb, _ := ecs.Get[*body](g.world, gems[0])
	pb := playerBody(t, g)
	pb.X, pb.Y = gb.X, gb.Y
	pb.VX, pb.VY = 0, 0

	g.Step(core.NewInputFrame())

	if g.score != gemPoints {
		t.Errorf("gem pickup should score %d, got %d", gemPoints, g.score)
	}
	if g.gemsLeft != gemsBefore-1 {
		t.Errorf("gem counter should drop via the remove hook, want %d, got %d", gemsBefore-1, g.gemsLeft)
	}
	if g.world.Alive(gems[0]) {
		t.Error("picked-up gem actor should be removed")
	}
}

func TestSpikesEndTheGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	hazards := g.world.ActorsWithTag(tagHazard)
	if len(hazards) == 0 {
		t.Fatal("level should contain spikes")
	}

	hb, _ := ecs.Get[*body](g.world, hazards[0])
	pb := playerBody(t, g)
	pb.X, pb.Y = hb.X, hb.Y-0.5
	pb.VX, pb.VY = 0, 0

	st := g.Step(core.NewInputFrame()).State

	if !st.GameOver {
		t.Error("touching spikes should end the game")
	}
	if st.Won {
		t.Error("dying on spikes is not a win")
	}
}

func TestExitRequiresAllGems(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	exits := g.world.ActorsWithTag(tagExit)
	if len(exits) != 1 {
		t.Fatalf("level should contain one exit, got %d", len(exits))
	}
	eb, _ := ecs.Get[*body](g.world, exits[0])

	pb := playerBody(t, g)
	pb.X, pb.Y = eb.X, eb.Y
	pb.VX, pb.VY = 0, 0

	st := g.Step(core.NewInputFrame()).State
	if st.GameOver {
		t.Fatal("exit should be locked while gems remain")
	}

	// Collect every remaining gem.
	for _, a := range g.world.ActorsWithTag(tagGem) {
		g.world.RemoveActor(a)
	}
	if g.gemsLeft != 0 {
		t.Fatalf("gem counter should hit zero via hooks, got %d", g.gemsLeft)
	}

	pb.X, pb.Y = eb.X, eb.Y
	pb.VX, pb.VY = 0, 0
	st = g.Step(core.NewInputFrame()).State

	if !st.GameOver || !st.Won {
		t.Errorf("reaching the exit with all gems should win, got %+v", st)
	}
	if st.Score < exitBonus {
		t.Errorf("win should award the exit bonus, score=%d", st.Score)
	}
}

func TestPatrolStaysInRange(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	patrols := g.world.ActorsWithTag(tagPatrol)
	if len(patrols) == 0 {
		t.Fatal("level should contain patrolling platforms")
	}
	a := patrols[0]
	p, _ := ecs.Get[*patrol](g.world, a)
	b, _ := ecs.Get[*body](g.world, a)

	sawLeft, sawRight := false, false
	for i := 0; i < 600; i++ {
		g.Step(core.NewInputFrame())
		if g.gameOver {
			break
		}
		if b.X-patrolW/2 < p.minX-1e-9 || b.X+patrolW/2 > p.maxX+1e-9 {
			t.Fatalf("patrol left its range: x=%f, range [%f, %f]", b.X, p.minX, p.maxX)
		}
		if p.dir < 0 {
			sawLeft = true
		} else {
			sawRight = true
		}
	}

	if !sawLeft || !sawRight {
		t.Error("patrol should reverse direction within its range")
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	stepN(g, 10)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Fatal("game should be paused")
	}

	b := playerBody(t, g)
	yBefore := b.Y
	tickBefore := g.world.Tick()

	g.Step(core.NewInputFrame())

	if b.Y != yBefore {
		t.Errorf("physics should not run while paused, y was %f, now %f", yBefore, b.Y)
	}
	if g.world.Tick() != tickBefore {
		t.Error("world should not tick while paused")
	}

	g.Step(pause)
	if g.paused {
		t.Error("game should be unpaused")
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)
	stepN(g, 5)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("Render should draw something to the screen")
	}
}

func TestLevelParse(t *testing.T) {
	lv := parseLevel(defaultLevel)

	if !lv.hasSpawn {
		t.Error("default level must have a player spawn")
	}
	if !lv.hasExit {
		t.Error("default level must have an exit")
	}
	if len(lv.gems) == 0 {
		t.Error("default level must have gems")
	}
	if len(lv.patrols) == 0 {
		t.Error("default level must have patrolling platforms")
	}
	if len(lv.walls) == 0 || len(lv.platforms) == 0 {
		t.Error("default level must have walls and platforms")
	}

	// Runs must be merged: the solid top border is one collider.
	for _, w := range lv.walls {
		if w.W == float64(lv.width) {
			return
		}
	}
	t.Error("full-width border rows should merge into a single collider")
}
