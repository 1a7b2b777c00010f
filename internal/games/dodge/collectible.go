package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/core"
)

// Collectible is the single cash pickup in the world.
// While invisible it waits for RespawnDelay before reappearing elsewhere.
type Collectible struct {
	X, Y          float64
	Visible       bool
	DisappearedAt time.Duration
	RespawnDelay  time.Duration

	rng   *rand.Rand
	cfg   config.CollectibleConfig
	world config.WorldConfig
}

// NewCollectible creates a visible collectible at a random position.
func NewCollectible(rng *rand.Rand, cfg config.CollectibleConfig, world config.WorldConfig) *Collectible {
	c := &Collectible{rng: rng, cfg: cfg, world: world}
	c.Reset()
	return c
}

// Reset places the collectible at a fresh position, visible, with a new delay.
func (c *Collectible) Reset() {
	c.relocate()
	c.Visible = true
	c.DisappearedAt = 0
	c.RespawnDelay = c.sampleDelay()
}

// Collect hides the collectible and returns the reward it was worth.
// Callers must check Visible first; collecting twice is a programming error.
func (c *Collectible) Collect(now time.Duration) int {
	if !c.Visible {
		panic("dodge: Collect called on an invisible collectible")
	}
	c.Visible = false
	c.DisappearedAt = now
	return c.cfg.Rewards[c.rng.Intn(len(c.cfg.Rewards))]
}

// Respawn brings the collectible back once its delay has elapsed.
// It is a no-op while visible. Returns true if the collectible reappeared.
func (c *Collectible) Respawn(now time.Duration) bool {
	if c.Visible || now-c.DisappearedAt <= c.RespawnDelay {
		return false
	}
	c.relocate()
	c.Visible = true
	c.RespawnDelay = c.sampleDelay()
	return true
}

// Box returns the sprite rectangle.
func (c *Collectible) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.cfg.Width, c.cfg.Height)
}

func (c *Collectible) relocate() {
	c.X = float64(c.randInt(int(c.world.Width - c.cfg.Width)))
	c.Y = float64(c.randInt(int(c.world.Height - c.cfg.Height)))
}

// randInt returns a value in [0, max], inclusive like the spawn logic.
func (c *Collectible) randInt(max int) int {
	if max <= 0 {
		return 0
	}
	return c.rng.Intn(max + 1)
}

func (c *Collectible) sampleDelay() time.Duration {
	lo := config.Seconds(c.cfg.RespawnMin)
	hi := config.Seconds(c.cfg.RespawnMax)
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(c.rng.Float64()*float64(hi-lo))
}
