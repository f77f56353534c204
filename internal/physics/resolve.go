package physics

// Kind classifies a static collider for gameplay purposes.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlatform
	KindWall
)

// String returns a human-readable collider kind.
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindWall:
		return "wall"
	default:
		return "none"
	}
}

// Collider is a static axis-aligned rectangle a moving body collides
// with. It is treated as immobile within a single Resolve pass even if
// it is nudged between frames (patrolling platforms). Owner carries the
// owning actor's id for the caller's benefit; the resolver ignores it.
type Collider struct {
	Rect  Rect
	Kind  Kind
	Owner uint64
}

// Body is a moving axis-aligned box: center position, extents, and the
// per-tick displacement to apply. Callers clamp VX/VY to the tunneling-
// safe envelope before resolving; the resolver does not clamp.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Rect returns the body's current collision rectangle.
func (b Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Result reports the outcome of one Resolve pass. NormalX and NormalY
// are independent, so callers can tell "landed" (NormalY == -1) from
// "hit a wall" (NormalX != 0) from "hit a ceiling" (NormalY == +1).
// When both axes collide in one pass, Collider and Kind come from the
// vertical pass, which runs second.
type Result struct {
	Collided bool
	NormalX  int
	NormalY  int
	Collider *Collider
	Kind     Kind
}

// Resolve advances b by its velocity against the given static colliders,
// one axis at a time: the horizontal displacement is applied and tested
// first, reverting x entirely on any overlap; the vertical displacement
// is then applied from the resolved x and tested the same way. Platforms
// are tested before walls, and the first overlapping collider is the one
// reported; test order never affects whether a collision is detected.
//
// A zero displacement on an axis skips that axis, so a stationary body
// resting in contact reports nothing and degenerate input cannot divide
// by zero.
func Resolve(b *Body, platforms, walls []Collider) Result {
	var res Result
	if b == nil {
		return res
	}

	if b.VX != 0 {
		prevX := b.X
		b.X += b.VX
		if hit := firstOverlap(b.Rect(), platforms, walls); hit != nil {
			b.X = prevX
			res.Collided = true
			if b.VX > 0 {
				res.NormalX = -1
			} else {
				res.NormalX = 1
			}
			res.Collider = hit
			res.Kind = hit.Kind
		}
	}

	if b.VY != 0 {
		prevY := b.Y
		b.Y += b.VY
		if hit := firstOverlap(b.Rect(), platforms, walls); hit != nil {
			b.Y = prevY
			res.Collided = true
			if b.VY > 0 {
				res.NormalY = -1
			} else {
				res.NormalY = 1
			}
			res.Collider = hit
			res.Kind = hit.Kind
		}
	}

	return res
}

func firstOverlap(r Rect, platforms, walls []Collider) *Collider {
	for i := range platforms {
		if r.Overlaps(platforms[i].Rect) {
			return &platforms[i]
		}
	}
	for i := range walls {
		if r.Overlaps(walls[i].Rect) {
			return &walls[i]
		}
	}
	return nil
}
