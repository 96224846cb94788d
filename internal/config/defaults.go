package config

import (
	_ "embed"
)

//go:embed defaults/brickfall.yaml
var defaultBrickfallYAML []byte

// DefaultBrickfallConfig returns the default Brickfall configuration.
// The field mirrors the classic layout: a 300x500 field of 50-unit cells,
// giving 6 brick columns and 10 grid rows.
func DefaultBrickfallConfig() BrickfallConfig {
	return BrickfallConfig{
		Field: FieldConfig{
			Width:    300,
			Height:   500,
			CellSize: 50,
		},
		Physics: PhysicsConfig{
			BallRadius:  5,
			BallSpeed:   12,
			LaunchDelay: 5,
		},
		Rules: RulesConfig{
			Lives:        3,
			PointsPerHit: 10,
			HitCooldown:  10,
			MaxResolve:   10,
			SweepRows:    3,
			AimNudge:     10,
		},
	}
}
