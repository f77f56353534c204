package caverun

import (
	"github.com/tinwren/pocket-arcade/internal/ecs"
	"github.com/tinwren/pocket-arcade/internal/physics"
)

// Tags used for actor queries.
const (
	tagPlayer = "player"
	tagGem    = "gem"
	tagExit   = "exit"
	tagHazard = "hazard"
	tagPatrol = "patrol"
)

// body is the kinematic state of an actor. Stored as a pointer so
// systems mutate it in place.
type body struct {
	physics.Body
}

// solid marks level geometry that participates in collision resolution.
// The actor's body gives the position; solid gives the footprint.
type solid struct {
	kind physics.Kind
	w, h float64
}

// control carries the player's intent for the current tick plus the
// movement state machine (ground contact, coyote window, dash).
type control struct {
	moveX      float64 // -1, 0, +1 from input
	jumpQueued bool
	dashQueued bool
	jumpHeld   bool

	grounded bool
	onWall   int // -1 wall on the left, +1 wall on the right
	facing   int

	canJump bool
	coyote  *ecs.TimerHandle

	dashing   bool
	dashDir   float64
	dashReady bool
}

// patrol moves a platform back and forth between minX and maxX
// (edges of the free span in level coordinates). lastDX is the
// displacement applied this tick, used to carry a grounded rider.
type patrol struct {
	minX, maxX float64
	dir        float64
	speed      float64
	lastDX     float64
}

// gem decrements the shared remaining counter when its actor is
// removed, so pickups and level resets stay in sync through the
// component hook.
type gem struct {
	remaining *int
}

func (g gem) OnAdd(w *ecs.World, a ecs.Actor) {
	*g.remaining++
}

func (g gem) OnRemove(w *ecs.World, a ecs.Actor) {
	*g.remaining--
}
