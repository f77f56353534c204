// Package glide implements Glide, a flappy-style game on the ecs
// world: the bird and every pipe pair are actors, tag queries drive
// the scroll and collision systems, and rendering reads a per-tick
// snapshot.
package glide

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tinwren/pocket-arcade/internal/config"
	"github.com/tinwren/pocket-arcade/internal/core"
	"github.com/tinwren/pocket-arcade/internal/ecs"
	"github.com/tinwren/pocket-arcade/internal/physics"
	"github.com/tinwren/pocket-arcade/internal/registry"
)

// Rows reserved at the top of the screen for the HUD.
const hudRows = 1

// Render glyphs.
const (
	birdChar      = '▶'
	bodyChar      = '●'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
)

// pipeSprite is the frozen draw state of one pipe pair.
type pipeSprite struct {
	x    int
	gapY int
	gapH int
}

// renderSnapshot is the frozen view of one tick, rebuilt by the
// snapshot system. Render reads only this structure.
type renderSnapshot struct {
	birdX, birdY int
	birdW, birdH int
	pipes        []pipeSprite
	score        int
}

// Game implements the Glide game logic on top of an ecs.World.
type Game struct {
	world *ecs.World
	bird  ecs.Actor
	rng   *rand.Rand

	tuning config.GlideConfig
	cfg    core.RuntimeConfig
	input  core.InputFrame

	score    int
	gameOver bool
	paused   bool

	snap *renderSnapshot
}

// New creates a new Glide game instance with default tuning.
func New() *Game {
	return NewWithConfig(config.DefaultGlideConfig())
}

// NewWithConfig creates a game instance with explicit tuning.
func NewWithConfig(tuning config.GlideConfig) *Game {
	return &Game{tuning: tuning}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "glide"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Glide"
}

// groundY returns the top edge of the ground line.
func (g *Game) groundY() float64 {
	return float64(g.cfg.ScreenH - 1)
}

// Reset initializes or restarts the game with a fresh world.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.input = core.NewInputFrame()
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.world = ecs.NewWorld()

	bird := g.tuning.Bird
	a := g.world.AddActor()
	g.world.AddComponent(a, &body{physics.Body{
		X: bird.X,
		Y: float64(cfg.ScreenH) / 2,
		W: bird.Width,
		H: bird.Height,
	}})
	g.world.AddTag(a, tagBird)
	g.bird = a

	must := func(err error) {
		if err != nil {
			panic(fmt.Sprintf("glide: system wiring: %v", err))
		}
	}
	must(g.world.AddSystem(ecs.SystemFunc{ID: sysInput, Fn: g.inputSystem}))
	must(g.world.AddSystem(ecs.SystemFunc{ID: sysMotion, Fn: g.motionSystem}, sysInput))
	must(g.world.AddSystem(ecs.SystemFunc{ID: sysScroll, Fn: g.scrollSystem}, sysInput))
	must(g.world.AddSystem(ecs.SystemFunc{ID: sysCollide, Fn: g.collideSystem}, sysMotion, sysScroll))
	must(g.world.AddSystem(ecs.SystemFunc{ID: sysSnapshot, Fn: g.snapshotSystem}, sysCollide))
	if err := g.world.Start(); err != nil {
		panic(fmt.Sprintf("glide: world start: %v", err))
	}

	g.snapshotSystem(g.world)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.input = in
	if err := g.world.Update(); err != nil {
		panic(fmt.Sprintf("glide: world update: %v", err))
	}

	return core.StepResult{State: g.State()}
}

// snapshotSystem freezes this tick's state for rendering.
func (g *Game) snapshotSystem(w *ecs.World) {
	snap := &renderSnapshot{score: g.score}

	if b, ok := ecs.Get[*body](w, g.bird); ok {
		r := b.Rect()
		snap.birdX = int(math.Floor(r.Left()))
		snap.birdY = int(math.Floor(r.Top()))
		snap.birdW = int(b.W)
		snap.birdH = int(b.H)
	}

	for _, a := range w.ActorsWithTag(tagPipe) {
		pb, ok := ecs.Get[*body](w, a)
		if !ok {
			continue
		}
		p, ok := ecs.Get[*pipe](w, a)
		if !ok {
			continue
		}
		snap.pipes = append(snap.pipes, pipeSprite{
			x:    int(math.Floor(pb.X - g.tuning.Pipes.Width/2)),
			gapY: int(p.gapY),
			gapH: int(p.gapH),
		})
	}

	g.snap = snap
}

// Render draws the last snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.snap == nil {
		return
	}

	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), groundChar)

	pipeW := int(g.tuning.Pipes.Width)
	for _, p := range g.snap.pipes {
		g.drawPipe(dst, p, pipeW, groundY)
	}

	for dy := 0; dy < g.snap.birdH; dy++ {
		for dx := 0; dx < g.snap.birdW; dx++ {
			ch := bodyChar
			if dx == g.snap.birdW-1 && dy == 0 {
				ch = birdChar
			}
			dst.SetCell(g.snap.birdX+dx, g.snap.birdY+dy, ch, core.ColorBrightYellow)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.snap.score))

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED - press P to resume ")
	}
	if g.gameOver {
		dst.DrawTextCentered(dst.Height()/2,
			fmt.Sprintf(" GAME OVER - Score: %d - press R to restart ", g.score))
	}
}

// drawPipe renders one pipe pair with caps at the gap edges.
func (g *Game) drawPipe(dst *core.Screen, p pipeSprite, pipeW, groundY int) {
	for y := hudRows; y < p.gapY; y++ {
		for x := 0; x < pipeW; x++ {
			dst.SetCell(p.x+x, y, pipeChar, core.ColorGreen)
		}
	}
	if p.gapY > hudRows {
		for x := 0; x < pipeW; x++ {
			dst.SetCell(p.x+x, p.gapY-1, pipeCapTop, core.ColorGreen)
		}
	}

	bottomY := p.gapY + p.gapH
	for y := bottomY; y < groundY; y++ {
		for x := 0; x < pipeW; x++ {
			dst.SetCell(p.x+x, y, pipeChar, core.ColorGreen)
		}
	}
	if bottomY < groundY {
		for x := 0; x < pipeW; x++ {
			dst.SetCell(p.x+x, bottomY, pipeCapBottom, core.ColorGreen)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("glide", func() registry.Game {
		return New()
	})
}
