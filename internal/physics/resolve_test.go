package physics

import "testing"

func platformAt(top, centerX, w, h float64) Collider {
	return Collider{Rect: Rect{X: centerX, Y: top + h/2, W: w, H: h}, Kind: KindPlatform}
}

func wallAt(left, centerY, w, h float64) Collider {
	return Collider{Rect: Rect{X: left + w/2, Y: centerY, W: w, H: h}, Kind: KindWall}
}

func TestResolveLanding(t *testing.T) {
	// Falling body whose bottom edge would cross a platform top: the
	// vertical move is reverted and the contact normal points up.
	body := &Body{X: 100, Y: 100, W: 16, H: 16, VX: 0, VY: 5}
	platforms := []Collider{platformAt(108, 100, 64, 8)}

	res := Resolve(body, platforms, nil)

	if !res.Collided {
		t.Fatalf("no collision reported")
	}
	if body.Y != 100 {
		t.Errorf("y = %v after landing, expected revert to 100", body.Y)
	}
	if res.NormalY != -1 || res.NormalX != 0 {
		t.Errorf("normals = (%d, %d), expected (0, -1)", res.NormalX, res.NormalY)
	}
	if res.Kind != KindPlatform {
		t.Errorf("kind = %v, expected platform", res.Kind)
	}
}

func TestResolveWallPush(t *testing.T) {
	// Body approaching a wall from the left: x reverts and the normal
	// pushes back leftward.
	body := &Body{X: 50, Y: 0, W: 16, H: 16, VX: 3, VY: 0}
	walls := []Collider{wallAt(52, 0, 8, 64)}

	res := Resolve(body, nil, walls)

	if !res.Collided {
		t.Fatalf("no collision reported")
	}
	if body.X != 50 {
		t.Errorf("x = %v, expected revert to 50", body.X)
	}
	if res.NormalX != -1 || res.NormalY != 0 {
		t.Errorf("normals = (%d, %d), expected (-1, 0)", res.NormalX, res.NormalY)
	}
	if res.Kind != KindWall {
		t.Errorf("kind = %v, expected wall", res.Kind)
	}
}

func TestResolveAxisIndependence(t *testing.T) {
	tests := []struct {
		name        string
		vx, vy      float64
		wantNX, wantNY int
	}{
		{"moving_right", 4, 0, -1, 0},
		{"moving_left", -4, 0, 1, 0},
		{"moving_down", 0, 4, 0, -1},
		{"moving_up", 0, -4, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Box of walls closely surrounding the body on all sides.
			walls := []Collider{
				wallAt(10, 0, 8, 64),          // right of body
				wallAt(-18, 0, 8, 64),         // left
				{Rect: Rect{X: 0, Y: 14, W: 64, H: 8}, Kind: KindWall}, // below
				{Rect: Rect{X: 0, Y: -14, W: 64, H: 8}, Kind: KindWall}, // above
			}
			body := &Body{X: 0, Y: 0, W: 16, H: 16, VX: tc.vx, VY: tc.vy}

			res := Resolve(body, nil, walls)

			if !res.Collided {
				t.Fatalf("no collision reported")
			}
			if res.NormalX != tc.wantNX || res.NormalY != tc.wantNY {
				t.Errorf("normals = (%d, %d), expected (%d, %d)", res.NormalX, res.NormalY, tc.wantNX, tc.wantNY)
			}
			if body.X != 0 || body.Y != 0 {
				t.Errorf("body moved to (%v, %v), expected full revert", body.X, body.Y)
			}
		})
	}
}

func TestResolveNoTunneling(t *testing.T) {
	// A 16-unit body crossing an 8-unit wall at any speed up to 15 must
	// always be stopped: the discrete step is within the safe envelope.
	for speed := 1.0; speed <= 15.0; speed++ {
		for start := -8.0; start <= 0; start += 2 {
			body := &Body{X: start, Y: 0, W: 16, H: 16, VX: speed, VY: 0}
			walls := []Collider{wallAt(10, 0, 8, 64)}
			res := Resolve(body, nil, walls)
			crossed := body.X-8 >= 18 // body left edge beyond wall right edge
			if crossed {
				t.Fatalf("speed %v from %v tunneled through wall", speed, start)
			}
			if start+speed > 2 && !res.Collided { // would overlap after the move
				t.Errorf("speed %v from %v reported no collision", speed, start)
			}
		}
	}
}

func TestResolveVerticalOverwritesReportedCollider(t *testing.T) {
	// Diagonal motion into a corner hits a wall on x and a platform on
	// y in the same pass: both normals are reported, but the collider
	// reference comes from the vertical check, which runs second.
	body := &Body{X: 0, Y: 0, W: 16, H: 16, VX: 6, VY: 6}
	platforms := []Collider{platformAt(10, 0, 64, 8)}
	walls := []Collider{wallAt(10, 0, 8, 64)}

	res := Resolve(body, platforms, walls)

	if !res.Collided {
		t.Fatalf("no collision reported")
	}
	if res.NormalX != -1 || res.NormalY != -1 {
		t.Errorf("normals = (%d, %d), expected (-1, -1)", res.NormalX, res.NormalY)
	}
	if res.Kind != KindPlatform {
		t.Errorf("reported kind = %v, expected the vertical pass's platform", res.Kind)
	}
	if body.X != 0 || body.Y != 0 {
		t.Errorf("body at (%v, %v), expected full revert", body.X, body.Y)
	}
}

func TestResolvePlatformsTestedBeforeWalls(t *testing.T) {
	// A platform and a wall occupying the same space: the platform is
	// the one reported. Order only affects reporting, not detection.
	body := &Body{X: 0, Y: 0, W: 16, H: 16, VX: 6, VY: 0}
	platforms := []Collider{{Rect: Rect{X: 14, Y: 0, W: 8, H: 64}, Kind: KindPlatform, Owner: 7}}
	walls := []Collider{wallAt(10, 0, 8, 64)}

	res := Resolve(body, platforms, walls)

	if !res.Collided {
		t.Fatalf("no collision reported")
	}
	if res.Kind != KindPlatform || res.Collider == nil || res.Collider.Owner != 7 {
		t.Errorf("reported %v owner=%v, expected the platform (owner 7)", res.Kind, res.Collider)
	}
}

func TestResolveDegenerateInput(t *testing.T) {
	t.Run("zero_velocity_moves_nothing", func(t *testing.T) {
		// Even a body already overlapping a collider reports nothing
		// when it does not move.
		body := &Body{X: 0, Y: 0, W: 16, H: 16}
		walls := []Collider{wallAt(-4, 0, 8, 64)}
		res := Resolve(body, nil, walls)
		if res.Collided {
			t.Errorf("stationary body reported a collision")
		}
		if body.X != 0 || body.Y != 0 {
			t.Errorf("stationary body moved to (%v, %v)", body.X, body.Y)
		}
	})

	t.Run("zero_size_collider_ignored", func(t *testing.T) {
		body := &Body{X: 0, Y: 0, W: 16, H: 16, VX: 4, VY: 4}
		walls := []Collider{{Rect: Rect{X: 2, Y: 2, W: 0, H: 0}, Kind: KindWall}}
		res := Resolve(body, nil, walls)
		if res.Collided {
			t.Errorf("zero-size collider caused a collision")
		}
		if body.X != 4 || body.Y != 4 {
			t.Errorf("body at (%v, %v), expected free movement to (4, 4)", body.X, body.Y)
		}
	})

	t.Run("nil_body", func(t *testing.T) {
		res := Resolve(nil, nil, nil)
		if res.Collided {
			t.Errorf("nil body reported a collision")
		}
	})
}

func TestResolveHorizontalRevertBeforeVerticalPass(t *testing.T) {
	// The vertical pass runs from the reverted x, so a ledge directly
	// above the starting column still blocks the upward move.
	body := &Body{X: 0, Y: 0, W: 16, H: 16, VX: 10, VY: -6}
	walls := []Collider{wallAt(10, 0, 8, 64)}
	platforms := []Collider{platformAt(-16, -4, 8, 8)} // only above the start column

	res := Resolve(body, platforms, walls)

	if res.NormalX != -1 {
		t.Fatalf("normalX = %d, expected -1", res.NormalX)
	}
	if res.NormalY != 1 {
		t.Errorf("normalY = %d, expected +1 (ceiling above reverted x)", res.NormalY)
	}
	if body.X != 0 || body.Y != 0 {
		t.Errorf("body at (%v, %v), expected full revert", body.X, body.Y)
	}
}
