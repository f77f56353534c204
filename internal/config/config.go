// Package config provides YAML-based tuning configuration for the
// arcade games, with embedded defaults and per-user overrides.
package config

// CaverunConfig contains all tuning for the Cave Runner platformer.
type CaverunConfig struct {
	Physics CaverunPhysics `yaml:"physics"`
	Player  CaverunPlayer  `yaml:"player"`
}

// CaverunPhysics defines movement parameters in cells per tick.
type CaverunPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	WallSlideSpeed float64 `yaml:"wall_slide_speed"`
	RunAccel       float64 `yaml:"run_accel"`
	MaxRunSpeed    float64 `yaml:"max_run_speed"`
	GroundFriction float64 `yaml:"ground_friction"`
	DashSpeed      float64 `yaml:"dash_speed"`
	DashTicks      int     `yaml:"dash_ticks"`
	DashCooldown   int     `yaml:"dash_cooldown"`
	CoyoteTicks    int     `yaml:"coyote_ticks"`
	PatrolSpeed    float64 `yaml:"patrol_speed"`
}

// CaverunPlayer defines the player hitbox in cells.
type CaverunPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GlideConfig contains all tuning for the Glide game.
type GlideConfig struct {
	Physics GlidePhysics `yaml:"physics"`
	Pipes   GlidePipes   `yaml:"pipes"`
	Bird    GlideBird    `yaml:"bird"`
}

// GlidePhysics defines flight parameters in cells per tick.
type GlidePhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
}

// GlidePipes defines obstacle parameters in cells.
type GlidePipes struct {
	Width        float64 `yaml:"width"`
	GapSize      float64 `yaml:"gap_size"`
	Spacing      float64 `yaml:"spacing"`
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

// GlideBird defines the bird position and hitbox in cells.
type GlideBird struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}
