package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/core"
)

// Projectile is a bullet falling straight down.
type Projectile struct {
	X, Y float64 // Top-left position
}

// ProjectileManager handles spawning, movement and removal of projectiles.
// Difficulty is owned by the game and passed in on every update.
type ProjectileManager struct {
	projectiles  []Projectile
	rng          *rand.Rand
	cfg          config.ProjectileConfig
	world        config.WorldConfig
	lastSpawn    time.Duration
	nextInterval time.Duration
}

// NewProjectileManager creates an empty manager.
func NewProjectileManager(rng *rand.Rand, cfg config.ProjectileConfig, world config.WorldConfig) *ProjectileManager {
	pm := &ProjectileManager{
		projectiles: make([]Projectile, 0, cfg.MaxConcurrent+4),
		rng:         rng,
		cfg:         cfg,
		world:       world,
	}
	pm.Reset(0)
	return pm
}

// Reset clears all projectiles and restarts the spawn timer at now.
// Difficulty is not touched here.
func (pm *ProjectileManager) Reset(now time.Duration) {
	pm.projectiles = pm.projectiles[:0]
	pm.lastSpawn = now
	pm.nextInterval = pm.sampleInterval(config.Seconds(pm.cfg.IntervalMax))
}

// Update advances one tick: move, prune, then maybe spawn.
func (pm *ProjectileManager) Update(now time.Duration, d Difficulty) {
	for i := range pm.projectiles {
		pm.projectiles[i].Y += d.Speed
	}

	// Drop projectiles that left through the bottom
	kept := pm.projectiles[:0]
	for _, p := range pm.projectiles {
		if p.Y <= pm.world.Height {
			kept = append(kept, p)
		}
	}
	pm.projectiles = kept

	if len(pm.projectiles) < d.MaxConcurrent && now-pm.lastSpawn > pm.nextInterval {
		pm.spawn()
		pm.lastSpawn = now
		pm.nextInterval = pm.sampleInterval(d.IntervalMax)
	}
}

// spawn adds a projectile at a random x along the top edge.
func (pm *ProjectileManager) spawn() {
	maxX := int(pm.world.Width - pm.cfg.Width)
	x := 0
	if maxX > 0 {
		x = pm.rng.Intn(maxX + 1)
	}
	pm.projectiles = append(pm.projectiles, Projectile{X: float64(x), Y: 0})
}

// sampleInterval draws the next spawn interval uniformly from [IntervalMin, ceiling].
func (pm *ProjectileManager) sampleInterval(ceiling time.Duration) time.Duration {
	lo := config.Seconds(pm.cfg.IntervalMin)
	if ceiling <= lo {
		return lo
	}
	return lo + time.Duration(pm.rng.Float64()*float64(ceiling-lo))
}

// Len returns the number of active projectiles.
func (pm *ProjectileManager) Len() int {
	return len(pm.projectiles)
}

// Box returns the sprite rectangle of the i-th projectile.
func (pm *ProjectileManager) Box(i int) core.Box {
	p := pm.projectiles[i]
	return core.NewBox(p.X, p.Y, pm.cfg.Width, pm.cfg.Height)
}

// Remove deletes the i-th projectile, preserving spawn order of the rest.
func (pm *ProjectileManager) Remove(i int) {
	pm.projectiles = append(pm.projectiles[:i], pm.projectiles[i+1:]...)
}

// Projectiles returns a copy of the active projectiles in spawn order.
func (pm *ProjectileManager) Projectiles() []Projectile {
	out := make([]Projectile, len(pm.projectiles))
	copy(out, pm.projectiles)
	return out
}

// NextInterval returns the currently sampled spawn interval.
func (pm *ProjectileManager) NextInterval() time.Duration {
	return pm.nextInterval
}
