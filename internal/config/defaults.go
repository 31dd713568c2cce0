package config

import (
	_ "embed"
)

//go:embed defaults/merge.yaml
var defaultMergeYAML []byte

// DefaultMergeConfig returns the default merge game configuration.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		Tiers: []TierConfig{
			{Score: 10, Size: 50, Color: "orange"},
			{Score: 20, Size: 75, Color: "teal"},
			{Score: 30, Size: 100, Color: "purple"},
			{Score: 50, Size: 135, Color: "green"},
			{Score: 70, Size: 170, Color: "yellow"},
			{Score: 100, Size: 190, Color: "blue"},
			{Score: 150, Size: 230, Color: "red"},
		},
		Board: BoardConfig{
			Width:         800,
			Height:        600,
			GameOverLineY: 150,
			DropX:         400,
			DropY:         100,
		},
		Spawn: SpawnConfig{
			Window: 4,
		},
		Physics: PhysicsConfig{
			GravityY:      300,
			WorldGravityY: 200,
			Bounce:        0.5,
		},
		Input: InputConfig{
			PointerStep: 25,
		},
	}
}
