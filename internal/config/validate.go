package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c DodgeConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive")
	check(c.World.TileHeight > 0, "world.tile_height must be positive")

	check(c.Character.Width > 0 && c.Character.Height > 0, "character size must be positive")
	check(c.Character.Width <= c.World.Width && c.Character.Height <= c.World.Height,
		"character (%gx%g) does not fit the world", c.Character.Width, c.Character.Height)
	check(c.Character.StartHealth > 0, "character.start_health must be positive")
	check(c.Character.Sensitivity > 0, "character.sensitivity must be positive")
	check(c.Character.CollisionSensitivity > 0 && c.Character.CollisionSensitivity <= 1,
		"character.collision_sensitivity must be in (0, 1], got %g", c.Character.CollisionSensitivity)

	check(c.Velocity.Acceleration > 0, "velocity.acceleration must be positive")
	check(c.Velocity.MaxSpeed > 0, "velocity.max_speed must be positive")
	check(c.Velocity.Drift >= 0 && c.Velocity.Drift < 1, "velocity.drift must be in [0, 1), got %g", c.Velocity.Drift)
	check(c.Velocity.DeadZone >= 0 && c.Velocity.DeadZone < 1, "velocity.dead_zone must be in [0, 1)")

	check(c.Projectiles.Width > 0 && c.Projectiles.Height > 0, "projectile size must be positive")
	check(c.Projectiles.Width <= c.World.Width, "projectiles wider than the world")
	check(c.Projectiles.Speed > 0, "projectiles.speed must be positive")
	check(c.Projectiles.MaxConcurrent > 0, "projectiles.max_concurrent must be positive")
	check(c.Projectiles.IntervalMin >= 0, "projectiles.interval_min must not be negative")
	check(c.Projectiles.IntervalMin <= c.Projectiles.IntervalMax,
		"projectiles.interval_min (%g) exceeds interval_max (%g)", c.Projectiles.IntervalMin, c.Projectiles.IntervalMax)
	check(c.Projectiles.Damage >= 0, "projectiles.damage must not be negative")

	check(c.Collectible.Width > 0 && c.Collectible.Height > 0, "collectible size must be positive")
	check(c.Collectible.Width <= c.World.Width && c.Collectible.Height <= c.World.Height, "collectible does not fit the world")
	check(c.Collectible.RespawnMin >= 0 && c.Collectible.RespawnMin <= c.Collectible.RespawnMax,
		"collectible respawn range [%g, %g] is invalid", c.Collectible.RespawnMin, c.Collectible.RespawnMax)
	check(len(c.Collectible.Rewards) > 0, "collectible.rewards must not be empty")
	for _, r := range c.Collectible.Rewards {
		check(r >= 0, "collectible reward %d is negative", r)
	}

	if c.Leveling.Enabled {
		check(c.Leveling.CashQuota > 0, "leveling.cash_quota must be positive")
		check(c.Leveling.SpeedStep >= 0 && c.Leveling.CountStep >= 0, "leveling steps must not be negative")
		check(c.Leveling.IntervalEvery > 0, "leveling.interval_every must be positive")
		check(c.Leveling.IntervalAdjust >= 0, "leveling.interval_adjust must not be negative")
	}

	check(c.Display.MessageDuration >= 0, "display.message_duration must not be negative")

	return errors.Join(errs...)
}
