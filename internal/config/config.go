// Package config provides YAML-based game configuration loading for the
// brickfall platform.
package config

// BrickfallConfig contains all configuration for the Brickfall game.
type BrickfallConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Physics PhysicsConfig `yaml:"physics"`
	Rules   RulesConfig   `yaml:"rules"`
}

// FieldConfig defines the playfield geometry in field units. The number of
// brick columns and grid rows is derived from the field size and cell size.
type FieldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
}

// Cols returns the number of brick columns.
func (f FieldConfig) Cols() int {
	return int(f.Width / f.CellSize)
}

// Rows returns the number of grid rows.
func (f FieldConfig) Rows() int {
	return int(f.Height / f.CellSize)
}

// PhysicsConfig defines ball physics parameters.
type PhysicsConfig struct {
	BallRadius  float64 `yaml:"ball_radius"`
	BallSpeed   float64 `yaml:"ball_speed"`
	LaunchDelay int     `yaml:"launch_delay"` // ticks between successive launches
}

// RulesConfig defines scoring and round bookkeeping parameters.
type RulesConfig struct {
	Lives        int `yaml:"lives"`          // starting lives
	PointsPerHit int `yaml:"points_per_hit"` // score per brick hit
	HitCooldown  int `yaml:"hit_cooldown"`   // informational per-ball cooldown after a hit
	MaxResolve   int `yaml:"max_resolve"`    // collision loop cap per ball per tick
	SweepRows    int `yaml:"sweep_rows"`     // bottom rows removed on a breach
	AimNudge     int `yaml:"aim_nudge"`      // launch origin movement per key press
}

// Normalize fills in zero or nonsensical values with the defaults so a
// partial YAML file still yields a playable game.
func (c *BrickfallConfig) Normalize() {
	def := DefaultBrickfallConfig()

	if c.Field.Width <= 0 {
		c.Field.Width = def.Field.Width
	}
	if c.Field.Height <= 0 {
		c.Field.Height = def.Field.Height
	}
	if c.Field.CellSize <= 0 || c.Field.CellSize > c.Field.Width {
		c.Field.CellSize = def.Field.CellSize
	}
	if c.Physics.BallRadius <= 0 {
		c.Physics.BallRadius = def.Physics.BallRadius
	}
	if c.Physics.BallSpeed <= 0 {
		c.Physics.BallSpeed = def.Physics.BallSpeed
	}
	if c.Physics.LaunchDelay <= 0 {
		c.Physics.LaunchDelay = def.Physics.LaunchDelay
	}
	if c.Rules.Lives <= 0 {
		c.Rules.Lives = def.Rules.Lives
	}
	if c.Rules.PointsPerHit <= 0 {
		c.Rules.PointsPerHit = def.Rules.PointsPerHit
	}
	if c.Rules.HitCooldown < 0 {
		c.Rules.HitCooldown = def.Rules.HitCooldown
	}
	if c.Rules.MaxResolve <= 0 {
		c.Rules.MaxResolve = def.Rules.MaxResolve
	}
	if c.Rules.SweepRows <= 0 {
		c.Rules.SweepRows = def.Rules.SweepRows
	}
	if c.Rules.AimNudge <= 0 {
		c.Rules.AimNudge = def.Rules.AimNudge
	}
}
