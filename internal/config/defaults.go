package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default Cash Dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		World: WorldConfig{
			Width:       1200,
			Height:      1200,
			TileHeight:  600,
			ScrollSpeed: 2,
		},
		Character: CharacterConfig{
			Width:                200,
			Height:               200,
			StartX:               500,
			StartY:               990,
			StartHealth:          200,
			Sensitivity:          2,
			CollisionSensitivity: 0.2,
		},
		Velocity: VelocityConfig{
			Acceleration: 0.5,
			MaxSpeed:     10,
			Drift:        0.9,
			DeadZone:     0.2,
		},
		Projectiles: ProjectileConfig{
			Width:         30,
			Height:        60,
			Speed:         5,
			MaxConcurrent: 6,
			IntervalMin:   0.3,
			IntervalMax:   1.2,
			Damage:        10,
		},
		Collectible: CollectibleConfig{
			Width:      80,
			Height:     50,
			RespawnMin: 1,
			RespawnMax: 2,
			Rewards:    []int{5, 20, 100},
		},
		Leveling: LevelingConfig{
			Enabled:        true,
			CashQuota:      200,
			SpeedStep:      1,
			CountStep:      1,
			IntervalEvery:  3,
			IntervalAdjust: 0.15,
		},
		Display: DisplayConfig{
			MessageDuration: 1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDodgeYAML
}
