// Package config provides YAML-based configuration loading and validation
// for the merge game.
package config

// MergeConfig contains all configuration for the merge game.
type MergeConfig struct {
	Tiers   []TierConfig  `yaml:"tiers"`
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Physics PhysicsConfig `yaml:"physics"`
	Input   InputConfig   `yaml:"input"`
}

// TierConfig describes one ball tier. Order in the list defines the merge
// progression: two balls of tier i merge into tier i+1.
type TierConfig struct {
	Score int     `yaml:"score"`
	Size  float64 `yaml:"size"`  // Diameter in world units
	Color string  `yaml:"color"` // Name accepted by core.ParseColor
}

// BoardConfig defines the play field in world units (y grows downward).
type BoardConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GameOverLineY float64 `yaml:"gameover_line_y"`
	DropX         float64 `yaml:"drop_x"` // Where a fresh pending ball appears
	DropY         float64 `yaml:"drop_y"`
}

// SpawnConfig controls which tiers can be handed to the player.
type SpawnConfig struct {
	Window int `yaml:"window"` // Tiers [0, window) are spawnable
}

// PhysicsConfig defines the body parameters attached on drop and on merge.
type PhysicsConfig struct {
	GravityY      float64 `yaml:"gravity_y"`       // Per-body gravity
	WorldGravityY float64 `yaml:"world_gravity_y"` // Added to every body
	Bounce        float64 `yaml:"bounce"`          // Restitution, 0..1
}

// InputConfig tunes keyboard control of the pointer.
type InputConfig struct {
	PointerStep float64 `yaml:"pointer_step"` // World units per left/right press
}
