package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default Blockfall configuration.
// Matches the embedded defaults/blockfall.yaml.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			BaseInterval: 0.6,
			PerLevel:     0.05,
			MinInterval:  0.1,
		},
		Display: DisplayConfig{
			Ghost:       true,
			NextPreview: true,
		},
	}
}
