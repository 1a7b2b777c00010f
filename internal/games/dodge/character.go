package dodge

import (
	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/core"
)

// Character is the player-controlled entity.
type Character struct {
	X, Y   float64 // Top-left position, always within the world
	VX, VY float64 // Velocity applied by the last Move
	Health int

	cfg   config.CharacterConfig
	world config.WorldConfig
}

// NewCharacter creates a character at its spawn position with full health.
func NewCharacter(cfg config.CharacterConfig, world config.WorldConfig) *Character {
	c := &Character{cfg: cfg, world: world}
	c.ResetPosition()
	c.Health = cfg.StartHealth
	return c
}

// Move applies a velocity for one tick and clamps the result to the world.
func (c *Character) Move(vx, vy float64) {
	c.VX, c.VY = vx, vy
	c.X += vx * c.cfg.Sensitivity
	c.Y += vy * c.cfg.Sensitivity

	c.X = core.ClampF(c.X, 0, c.world.Width-c.cfg.Width)
	c.Y = core.ClampF(c.Y, 0, c.world.Height-c.cfg.Height)
}

// Box returns the full sprite rectangle.
func (c *Character) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.cfg.Width, c.cfg.Height)
}

// CheckCollision tests the character against another entity's sprite box.
// Both boxes are shrunk to the collision sensitivity before the AABB test so
// sprite padding does not register as a hit.
func (c *Character) CheckCollision(other core.Box) bool {
	k := c.cfg.CollisionSensitivity
	return c.Box().Shrink(k).Intersects(other.Shrink(k))
}

// CheckProjectileCollision removes the first projectile (in spawn order) that
// hits the character and reports whether there was one.
// At most one projectile is resolved per call.
func (c *Character) CheckProjectileCollision(pm *ProjectileManager) bool {
	for i := 0; i < pm.Len(); i++ {
		if c.CheckCollision(pm.Box(i)) {
			pm.Remove(i)
			return true
		}
	}
	return false
}

// ResetPosition moves the character back to its spawn point and stops it.
// Health is restored by the game, not here.
func (c *Character) ResetPosition() {
	c.X = core.ClampF(c.cfg.StartX, 0, c.world.Width-c.cfg.Width)
	c.Y = core.ClampF(c.cfg.StartY, 0, c.world.Height-c.cfg.Height)
	c.VX, c.VY = 0, 0
}

// Alive reports whether the character still has health left.
func (c *Character) Alive() bool {
	return c.Health > 0
}
