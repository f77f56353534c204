package glide

import (
	"github.com/tinwren/pocket-arcade/internal/core"
	"github.com/tinwren/pocket-arcade/internal/ecs"
	"github.com/tinwren/pocket-arcade/internal/physics"
)

// System names.
const (
	sysInput    = "input"
	sysMotion   = "motion"
	sysScroll   = "scroll"
	sysCollide  = "collide"
	sysSnapshot = "snapshot"
)

// Tags used for actor queries.
const (
	tagBird = "bird"
	tagPipe = "pipe"
)

// body is the kinematic state of an actor.
type body struct {
	physics.Body
}

// pipe describes one pipe pair: the actor's body carries the pair's
// horizontal center, the gap fields carry the opening.
type pipe struct {
	gapY   float64 // top edge of the gap
	gapH   float64
	scored bool
}

// inputSystem turns a jump press into a flap impulse.
func (g *Game) inputSystem(w *ecs.World) {
	if !g.input.Has(core.ActionJump) {
		return
	}
	if b, ok := ecs.Get[*body](w, g.bird); ok {
		b.VY = g.tuning.Physics.FlapImpulse
	}
}

// motionSystem applies gravity to the bird and ends the game on
// ceiling or ground contact.
func (g *Game) motionSystem(w *ecs.World) {
	b, ok := ecs.Get[*body](w, g.bird)
	if !ok {
		return
	}
	phys := g.tuning.Physics

	b.VY += phys.Gravity
	if b.VY > phys.MaxFallSpeed {
		b.VY = phys.MaxFallSpeed
	}
	b.Y += b.VY

	top := float64(hudRows)
	if b.Rect().Top() < top {
		b.Y = top + b.H/2
		g.gameOver = true
	}
	if b.Rect().Bottom() >= g.groundY() {
		b.Y = g.groundY() - b.H/2
		g.gameOver = true
	}
}

// scrollSystem moves pipes left, retires the ones that left the
// screen, and spawns a new pair when the last one is far enough in.
func (g *Game) scrollSystem(w *ecs.World) {
	speed := g.tuning.Physics.ScrollSpeed
	pipeW := g.tuning.Pipes.Width

	rightmost := 0.0
	for _, a := range w.ActorsWithTag(tagPipe) {
		b, ok := ecs.Get[*body](w, a)
		if !ok {
			continue
		}
		b.X -= speed
		if b.X+pipeW/2 < 0 {
			w.RemoveActor(a)
			continue
		}
		if b.X > rightmost {
			rightmost = b.X
		}
	}

	if rightmost < float64(g.cfg.ScreenW)-g.tuning.Pipes.Spacing {
		g.spawnPipe(float64(g.cfg.ScreenW) + pipeW/2)
	}
}

// collideSystem checks the bird against every pipe pair and advances
// the score when a pair is fully passed.
func (g *Game) collideSystem(w *ecs.World) {
	b, ok := ecs.Get[*body](w, g.bird)
	if !ok {
		return
	}
	birdRect := b.Rect()

	for _, a := range w.ActorsWithTag(tagPipe) {
		pb, ok := ecs.Get[*body](w, a)
		if !ok {
			continue
		}
		p, ok := ecs.Get[*pipe](w, a)
		if !ok {
			continue
		}

		top, bottom := g.pipeRects(pb.X, p)
		if birdRect.Overlaps(top) || birdRect.Overlaps(bottom) {
			g.gameOver = true
			return
		}

		if !p.scored && pb.X+g.tuning.Pipes.Width/2 < birdRect.Left() {
			p.scored = true
			g.score++
		}
	}
}

// pipeRects returns the collision rects for the two segments of a
// pipe pair at horizontal center x.
func (g *Game) pipeRects(x float64, p *pipe) (top, bottom physics.Rect) {
	w := g.tuning.Pipes.Width
	ceil := float64(hudRows)
	floor := g.groundY()

	top = physics.Rect{
		X: x,
		Y: (ceil + p.gapY) / 2,
		W: w,
		H: p.gapY - ceil,
	}
	bottom = physics.Rect{
		X: x,
		Y: (p.gapY + p.gapH + floor) / 2,
		W: w,
		H: floor - (p.gapY + p.gapH),
	}
	return top, bottom
}

// spawnPipe creates a pipe pair with a randomly placed gap.
func (g *Game) spawnPipe(x float64) {
	pipes := g.tuning.Pipes

	minGapY := float64(hudRows) + pipes.TopMargin
	maxGapY := g.groundY() - pipes.BottomMargin - pipes.GapSize
	if maxGapY < minGapY {
		maxGapY = minGapY
	}
	gapY := minGapY + g.rng.Float64()*(maxGapY-minGapY)

	a := g.world.AddActor()
	g.world.AddComponent(a, &body{physics.Body{X: x, Y: 0, W: pipes.Width, H: 0}})
	g.world.AddComponent(a, &pipe{gapY: gapY, gapH: pipes.GapSize})
	g.world.AddTag(a, tagPipe)
}
