package config

import (
	_ "embed"
)

//go:embed defaults/caverun.yaml
var defaultCaverunYAML []byte

//go:embed defaults/glide.yaml
var defaultGlideYAML []byte

// DefaultCaverunConfig returns the default Cave Runner configuration.
func DefaultCaverunConfig() CaverunConfig {
	return CaverunConfig{
		Physics: CaverunPhysics{
			Gravity:        0.08,
			JumpImpulse:    -0.9,
			MaxFallSpeed:   0.8,
			WallSlideSpeed: 0.2,
			RunAccel:       0.1,
			MaxRunSpeed:    0.6,
			GroundFriction: 0.7,
			DashSpeed:      0.9,
			DashTicks:      8,
			DashCooldown:   30,
			CoyoteTicks:    6,
			PatrolSpeed:    0.15,
		},
		Player: CaverunPlayer{
			Width:  1,
			Height: 2,
		},
	}
}

// DefaultGlideConfig returns the default Glide configuration.
func DefaultGlideConfig() GlideConfig {
	return GlideConfig{
		Physics: GlidePhysics{
			Gravity:      0.25,
			FlapImpulse:  -1.8,
			MaxFallSpeed: 3.0,
			ScrollSpeed:  0.8,
		},
		Pipes: GlidePipes{
			Width:        5,
			GapSize:      10,
			Spacing:      40,
			TopMargin:    3,
			BottomMargin: 3,
		},
		Bird: GlideBird{
			X:      10,
			Width:  2,
			Height: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "caverun":
		return defaultCaverunYAML
	case "glide":
		return defaultGlideYAML
	default:
		return nil
	}
}
