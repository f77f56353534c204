package caverun

import (
	"math"

	"github.com/tinwren/pocket-arcade/internal/core"
	"github.com/tinwren/pocket-arcade/internal/ecs"
	"github.com/tinwren/pocket-arcade/internal/physics"
)

// Render glyphs.
const (
	wallChar   = '█'
	platChar   = '═'
	patrolChar = '─'
	gemChar    = '◆'
	spikeChar  = '▲'
	exitChar   = '⌂'
	playerChar = '█'
)

// sprite is one drawable cell in level coordinates.
type sprite struct {
	x, y int
	r    rune
	c    core.Color
}

// renderSnapshot is the frozen view of one tick. The snapshot system
// rebuilds it at the end of every update; Render reads only this
// structure, never the live world.
type renderSnapshot struct {
	sprites  []sprite
	score    int
	gemsLeft int
}

// rectSprites appends one sprite per cell covered by r.
func rectSprites(dst []sprite, r physics.Rect, ch rune, c core.Color) []sprite {
	x0 := int(math.Floor(r.Left()))
	x1 := int(math.Ceil(r.Right()))
	y0 := int(math.Floor(r.Top()))
	y1 := int(math.Ceil(r.Bottom()))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst = append(dst, sprite{x: x, y: y, r: ch, c: c})
		}
	}
	return dst
}

// snapshotSystem rebuilds the render snapshot from the world. It runs
// after every other system so the frame reflects this tick's state.
func (g *Game) snapshotSystem(w *ecs.World) {
	snap := &renderSnapshot{
		score:    g.score,
		gemsLeft: g.gemsLeft,
	}

	// Static geometry first, then movers on top.
	snap.sprites = append(snap.sprites, g.static...)

	for _, a := range w.ActorsWithTag(tagPatrol) {
		if b, ok := ecs.Get[*body](w, a); ok {
			snap.sprites = rectSprites(snap.sprites, b.Rect(), patrolChar, core.ColorCyan)
		}
	}
	for _, a := range w.ActorsWithTag(tagGem) {
		if b, ok := ecs.Get[*body](w, a); ok {
			snap.sprites = rectSprites(snap.sprites, b.Rect(), gemChar, core.ColorBrightYellow)
		}
	}
	if b, ok := ecs.Get[*body](w, g.player); ok {
		snap.sprites = rectSprites(snap.sprites, b.Rect(), playerChar, core.ColorBrightCyan)
	}

	g.snap = snap
}

// buildStatic renders the immobile level geometry once per Reset.
func buildStatic(lv *levelData) []sprite {
	var out []sprite
	for _, r := range lv.walls {
		out = rectSprites(out, r, wallChar, core.ColorGray)
	}
	for _, r := range lv.platforms {
		out = rectSprites(out, r, platChar, core.ColorWhite)
	}
	for _, r := range lv.hazards {
		out = rectSprites(out, r, spikeChar, core.ColorRed)
	}
	if lv.hasExit {
		out = rectSprites(out, lv.exit, exitChar, core.ColorGreen)
	}
	return out
}
