package caverun

import (
	"github.com/tinwren/pocket-arcade/internal/core"
	"github.com/tinwren/pocket-arcade/internal/ecs"
	"github.com/tinwren/pocket-arcade/internal/physics"
)

// System names. Execution order comes from the declared dependencies,
// not from registration order.
const (
	sysInput    = "input"
	sysControl  = "control"
	sysPatrol   = "patrol"
	sysMotion   = "motion"
	sysPickup   = "pickup"
	sysSnapshot = "snapshot"
)

// Gameplay events published on the game's bus.
const (
	evGemCollected = "gem.collected"
	evPlayerDied   = "player.died"
	evLevelCleared = "level.cleared"
)

// inputSystem translates the frame's input into player intent. Jump and
// dash are edge-triggered so holding the key does not retrigger.
func (g *Game) inputSystem(w *ecs.World) {
	ctl, ok := ecs.Get[*control](w, g.player)
	if !ok {
		return
	}

	ctl.moveX = 0
	if g.input.Has(core.ActionLeft) {
		ctl.moveX = -1
	}
	if g.input.Has(core.ActionRight) {
		ctl.moveX = 1
	}

	jump := g.input.Has(core.ActionJump)
	ctl.jumpQueued = jump && !ctl.jumpHeld
	ctl.jumpHeld = jump

	ctl.dashQueued = g.input.Has(core.ActionDash)
}

// controlSystem applies intent to the player's velocity: run
// acceleration and friction, jump (with the coyote window), dash.
func (g *Game) controlSystem(w *ecs.World) {
	ctl, ok := ecs.Get[*control](w, g.player)
	if !ok {
		return
	}
	b, ok := ecs.Get[*body](w, g.player)
	if !ok {
		return
	}
	phys := g.tuning.Physics

	if ctl.dashQueued && ctl.dashReady && !ctl.dashing {
		ctl.dashing = true
		ctl.dashReady = false
		ctl.dashDir = float64(ctl.facing)
		w.After(phys.DashTicks, func() { ctl.dashing = false })
		w.After(phys.DashCooldown, func() { ctl.dashReady = true })
	}

	if ctl.dashing {
		b.VX = ctl.dashDir * phys.DashSpeed
	} else if ctl.moveX != 0 {
		b.VX += ctl.moveX * phys.RunAccel
		b.VX = core.ClampF(b.VX, -phys.MaxRunSpeed, phys.MaxRunSpeed)
		ctl.facing = int(ctl.moveX)
	} else if ctl.grounded {
		b.VX *= phys.GroundFriction
		if b.VX > -0.01 && b.VX < 0.01 {
			b.VX = 0
		}
	}

	if ctl.jumpQueued && ctl.canJump {
		b.VY = phys.JumpImpulse
		ctl.canJump = false
		if ctl.coyote != nil {
			ctl.coyote.Cancel()
			ctl.coyote = nil
		}
	}
}

// patrolSystem moves patrolling platforms one step along their range,
// reversing at the edges. The displacement is kept so motionSystem can
// carry a grounded rider.
func (g *Game) patrolSystem(w *ecs.World) {
	for _, a := range ecs.ActorsWith[*patrol](w) {
		p, _ := ecs.Get[*patrol](w, a)
		b, ok := ecs.Get[*body](w, a)
		if !ok {
			continue
		}

		before := b.X
		b.X += p.dir * p.speed
		if b.X-patrolW/2 <= p.minX {
			b.X = p.minX + patrolW/2
			p.dir = 1
		} else if b.X+patrolW/2 >= p.maxX {
			b.X = p.maxX - patrolW/2
			p.dir = -1
		}
		p.lastDX = b.X - before
	}
}

// motionSystem applies gravity, resolves the player's movement against
// level colliders, and derives ground/wall contact from the collision
// normals. Patrol platforms are sampled at their current position, so
// they are static within a single resolver pass.
func (g *Game) motionSystem(w *ecs.World) {
	b, ok := ecs.Get[*body](w, g.player)
	if !ok {
		return
	}
	ctl, _ := ecs.Get[*control](w, g.player)
	phys := g.tuning.Physics

	if !ctl.dashing {
		b.VY += phys.Gravity
		if ctl.onWall != 0 && b.VY > phys.WallSlideSpeed {
			b.VY = phys.WallSlideSpeed
		}
		if b.VY > phys.MaxFallSpeed {
			b.VY = phys.MaxFallSpeed
		}
	} else {
		b.VY = 0
	}

	var platforms, walls []physics.Collider
	for _, a := range ecs.ActorsWith[*solid](w) {
		s, _ := ecs.Get[*solid](w, a)
		sb, ok := ecs.Get[*body](w, a)
		if !ok {
			continue
		}
		c := physics.Collider{
			Rect:  physics.Rect{X: sb.X, Y: sb.Y, W: s.w, H: s.h},
			Kind:  s.kind,
			Owner: uint64(a),
		}
		if s.kind == physics.KindPlatform {
			platforms = append(platforms, c)
		} else {
			walls = append(walls, c)
		}
	}

	res := physics.Resolve(&b.Body, platforms, walls)

	// The resolver only reverts position; blocked velocity is ours to drop.
	if res.NormalX != 0 {
		b.VX = 0
	}
	if res.NormalY != 0 {
		b.VY = 0
	}

	wasGrounded := ctl.grounded
	ctl.grounded = res.Collided && res.NormalY < 0
	ctl.onWall = 0
	if res.Collided {
		if res.NormalX < 0 {
			ctl.onWall = 1
		} else if res.NormalX > 0 {
			ctl.onWall = -1
		}
	}

	if ctl.grounded {
		ctl.canJump = true
		if ctl.coyote != nil {
			ctl.coyote.Cancel()
			ctl.coyote = nil
		}
		// Ride a moving platform.
		if res.Collider != nil {
			if p, ok := ecs.Get[*patrol](w, ecs.Actor(res.Collider.Owner)); ok {
				b.X += p.lastDX
			}
		}
	} else if wasGrounded && ctl.coyote == nil && ctl.canJump {
		// Walked off an edge: keep the jump available for a short window.
		ctl.coyote = w.After(phys.CoyoteTicks, func() {
			ctl.canJump = false
			ctl.coyote = nil
		})
	}

	// Fallen out of the level.
	if b.Y > float64(g.level.height)+4 {
		g.events.Publish(evPlayerDied, g.player)
	}
}

// pickupSystem detects overlap-triggered interactions with gems, spikes,
// and the exit door and publishes them on the bus. Consequences (score,
// game over) live in the event handlers wired by Reset.
func (g *Game) pickupSystem(w *ecs.World) {
	b, ok := ecs.Get[*body](w, g.player)
	if !ok {
		return
	}
	playerRect := b.Rect()

	for _, a := range w.ActorsWithTag(tagGem) {
		gb, ok := ecs.Get[*body](w, a)
		if !ok {
			continue
		}
		if playerRect.Overlaps(gb.Rect()) {
			w.RemoveActor(a)
			g.events.Publish(evGemCollected, a)
		}
	}

	for _, a := range w.ActorsWithTag(tagHazard) {
		hb, ok := ecs.Get[*body](w, a)
		if !ok {
			continue
		}
		if playerRect.Overlaps(hb.Rect()) {
			g.events.Publish(evPlayerDied, a)
			return
		}
	}

	if g.gemsLeft == 0 {
		for _, a := range w.ActorsWithTag(tagExit) {
			eb, ok := ecs.Get[*body](w, a)
			if !ok {
				continue
			}
			if playerRect.Overlaps(eb.Rect()) {
				g.events.Publish(evLevelCleared, a)
				return
			}
		}
	}
}
