// Package caverun implements Cave Runner, a single-screen platformer
// built on the ecs world: the level becomes collider actors, the player
// is driven by a chain of systems with declared ordering dependencies,
// and rendering reads a per-tick snapshot instead of live world state.
package caverun

import (
	"fmt"

	"github.com/tinwren/pocket-arcade/internal/config"
	"github.com/tinwren/pocket-arcade/internal/core"
	"github.com/tinwren/pocket-arcade/internal/ecs"
	"github.com/tinwren/pocket-arcade/internal/event"
	"github.com/tinwren/pocket-arcade/internal/physics"
	"github.com/tinwren/pocket-arcade/internal/registry"
)

// Scoring.
const (
	gemPoints = 10
	exitBonus = 50
)

// Game implements the Cave Runner game logic on top of an ecs.World.
type Game struct {
	world  *ecs.World
	level  *levelData
	player ecs.Actor
	events *event.Bus

	tuning config.CaverunConfig
	cfg    core.RuntimeConfig

	// input is set by Step before the world updates and read by the
	// input system.
	input core.InputFrame

	score    int
	gemsLeft int
	gameOver bool
	won      bool
	paused   bool

	static []sprite
	snap   *renderSnapshot
}

// New creates a new Cave Runner game instance with default tuning.
func New() *Game {
	return NewWithConfig(config.DefaultCaverunConfig())
}

// NewWithConfig creates a game instance with explicit tuning.
func NewWithConfig(tuning config.CaverunConfig) *Game {
	return &Game{tuning: tuning}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "caverun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cave Runner"
}

// Reset initializes or restarts the game. It rebuilds the world from
// the level map, so timers and actor state from a previous run cannot
// leak into the new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.score = 0
	g.gemsLeft = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.input = core.NewInputFrame()

	g.level = parseLevel(defaultLevel)
	g.static = buildStatic(g.level)

	g.world = ecs.NewWorld()
	g.events = event.NewBus()
	g.wireEvents()
	g.spawnLevel()
	g.wireSystems()
	if err := g.world.Start(); err != nil {
		panic(fmt.Sprintf("caverun: world start: %v", err))
	}

	// Seed the first frame before any Step happens.
	g.snapshotSystem(g.world)
}

// spawnLevel creates actors for everything the level map names.
func (g *Game) spawnLevel() {
	w := g.world
	lv := g.level

	addSolid := func(r physics.Rect, kind physics.Kind) ecs.Actor {
		a := w.AddActor()
		w.AddComponent(a, &body{physics.Body{X: r.X, Y: r.Y, W: r.W, H: r.H}})
		w.AddComponent(a, &solid{kind: kind, w: r.W, h: r.H})
		return a
	}

	for _, r := range lv.walls {
		addSolid(r, physics.KindWall)
	}
	for _, r := range lv.platforms {
		addSolid(r, physics.KindPlatform)
	}

	for _, ps := range lv.patrols {
		a := addSolid(physics.Rect{X: ps.x, Y: ps.y, W: patrolW, H: patrolH}, physics.KindPlatform)
		w.AddComponent(a, &patrol{
			minX:  ps.minX,
			maxX:  ps.maxX,
			dir:   1,
			speed: g.tuning.Physics.PatrolSpeed,
		})
		w.AddTag(a, tagPatrol)
	}

	for _, r := range lv.gems {
		a := w.AddActor()
		w.AddComponent(a, &body{physics.Body{X: r.X, Y: r.Y, W: r.W, H: r.H}})
		w.AddComponent(a, gem{remaining: &g.gemsLeft})
		w.AddTag(a, tagGem)
	}

	for _, r := range lv.hazards {
		a := w.AddActor()
		w.AddComponent(a, &body{physics.Body{X: r.X, Y: r.Y, W: r.W, H: r.H}})
		w.AddTag(a, tagHazard)
	}

	if lv.hasExit {
		a := w.AddActor()
		w.AddComponent(a, &body{physics.Body{X: lv.exit.X, Y: lv.exit.Y, W: lv.exit.W, H: lv.exit.H}})
		w.AddTag(a, tagExit)
	}

	pw := g.tuning.Player.Width
	ph := g.tuning.Player.Height
	p := w.AddActor()
	w.AddComponent(p, &body{physics.Body{
		X: lv.spawnX,
		Y: lv.spawnY + 1 - ph/2,
		W: pw,
		H: ph,
	}})
	w.AddComponent(p, &control{facing: 1, canJump: true, dashReady: true})
	w.AddTag(p, tagPlayer)
	g.player = p
}

// wireEvents subscribes the scoring and end-of-run handlers. Systems
// publish what happened; these decide what it means.
func (g *Game) wireEvents() {
	g.events.Subscribe(evGemCollected, func(any) {
		g.score += gemPoints
	})
	g.events.Subscribe(evPlayerDied, func(any) {
		g.gameOver = true
	})
	g.events.Subscribe(evLevelCleared, func(any) {
		g.score += exitBonus
		g.won = true
		g.gameOver = true
	})
}

// wireSystems registers the simulation systems. Execution order comes
// from the declared dependencies, not registration order: snapshot is
// registered first yet runs last.
func (g *Game) wireSystems() {
	w := g.world
	must := func(err error) {
		if err != nil {
			panic(fmt.Sprintf("caverun: system wiring: %v", err))
		}
	}

	must(w.AddSystem(ecs.SystemFunc{ID: sysSnapshot, Fn: g.snapshotSystem}))
	must(w.AddSystem(ecs.SystemFunc{ID: sysInput, Fn: g.inputSystem}))
	must(w.AddSystem(ecs.SystemFunc{ID: sysControl, Fn: g.controlSystem}, sysInput))
	must(w.AddSystem(ecs.SystemFunc{ID: sysPatrol, Fn: g.patrolSystem}, sysInput))
	must(w.AddSystem(ecs.SystemFunc{ID: sysMotion, Fn: g.motionSystem}, sysControl, sysPatrol))
	must(w.AddSystem(ecs.SystemFunc{ID: sysPickup, Fn: g.pickupSystem}, sysMotion))
	must(w.SetupDependency(sysPickup, sysSnapshot))
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
		panic(fmt.Sprintf("caverun: world update: %v", err))
	}

	return core.StepResult{State: g.State()}
}

// Render draws the last snapshot to the screen. The level is centered;
// the HUD occupies the top row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.snap == nil {
		return
	}

	ox := (dst.Width() - g.level.width) / 2
	oy := (dst.Height() - g.level.height) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 1 {
		oy = 1
	}

	for _, s := range g.snap.sprites {
		dst.SetCell(s.x+ox, s.y+oy, s.r, s.c)
	}

	hud := fmt.Sprintf(" Score: %d   Gems left: %d ", g.snap.score, g.snap.gemsLeft)
	dst.DrawText(2, 0, hud)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED - press P to resume ")
	}
	if g.gameOver {
		msg := fmt.Sprintf(" GAME OVER - Score: %d - press R to restart ", g.score)
		if g.won {
			msg = fmt.Sprintf(" YOU ESCAPED! Score: %d - press R to restart ", g.score)
		}
		dst.DrawTextCentered(dst.Height()/2, msg)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("caverun", func() registry.Game {
		return New()
	})
}
