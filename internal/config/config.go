// Package config provides YAML-based game configuration loading and
// difficulty presets for Cash Dodge.
package config

import "time"

// DodgeConfig contains all configuration for the Cash Dodge game.
// World coordinates are in abstract units; the renderer scales them to the screen.
type DodgeConfig struct {
	World       WorldConfig       `yaml:"world"`
	Character   CharacterConfig   `yaml:"character"`
	Velocity    VelocityConfig    `yaml:"velocity"`
	Projectiles ProjectileConfig  `yaml:"projectiles"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Leveling    LevelingConfig    `yaml:"leveling"`
	Display     DisplayConfig     `yaml:"display"`
}

// WorldConfig defines the playfield and the cosmetic scrolling background.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	TileHeight  float64 `yaml:"tile_height"`  // Background tile height; scroll offset wraps at this value
	ScrollSpeed float64 `yaml:"scroll_speed"` // Background offset advance per tick
}

// CharacterConfig defines the player entity.
type CharacterConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	StartHealth int     `yaml:"start_health"`
	Sensitivity float64 `yaml:"sensitivity"` // Position delta per unit of velocity

	// CollisionSensitivity is the fraction (0..1] of each sprite kept as hitbox.
	CollisionSensitivity float64 `yaml:"collision_sensitivity"`
}

// VelocityConfig defines how control signals become velocity.
type VelocityConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Drift        float64 `yaml:"drift"`     // Damping factor applied on idle axes, must be < 1
	DeadZone     float64 `yaml:"dead_zone"` // Analog magnitude ignored around neutral
}

// ProjectileConfig defines falling projectiles and their base difficulty.
type ProjectileConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	MaxConcurrent int     `yaml:"max_concurrent"`
	IntervalMin   float64 `yaml:"interval_min"` // Seconds
	IntervalMax   float64 `yaml:"interval_max"` // Seconds
	Damage        int     `yaml:"damage"`
}

// CollectibleConfig defines the cash pickup.
type CollectibleConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	RespawnMin float64 `yaml:"respawn_min"` // Seconds
	RespawnMax float64 `yaml:"respawn_max"` // Seconds
	Rewards    []int   `yaml:"rewards"`
}

// LevelingConfig defines the difficulty escalation rule.
type LevelingConfig struct {
	Enabled        bool    `yaml:"enabled"`
	CashQuota      int     `yaml:"cash_quota"`      // Score per level
	SpeedStep      float64 `yaml:"speed_step"`      // Added to projectile speed on even levels
	CountStep      int     `yaml:"count_step"`      // Added to max projectiles on odd levels
	IntervalEvery  int     `yaml:"interval_every"`  // Every Nth level tightens the spawn interval
	IntervalAdjust float64 `yaml:"interval_adjust"` // Seconds removed from interval_max
}

// DisplayConfig defines timings for transient notices.
type DisplayConfig struct {
	MessageDuration float64 `yaml:"message_duration"` // Seconds
}

// Seconds converts a float number of seconds into a time.Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
