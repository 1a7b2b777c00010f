package dodge

import (
	"time"

	"github.com/vovakirdan/cashdodge/internal/config"
)

// Difficulty is the set of projectile parameters that escalate with level.
type Difficulty struct {
	Speed         float64       // Projectile fall speed per tick
	MaxConcurrent int           // Projectile cap
	IntervalMax   time.Duration // Upper bound of the spawn interval
}

// BaseDifficulty returns the level 1 difficulty described by the config.
func BaseDifficulty(cfg config.ProjectileConfig) Difficulty {
	return Difficulty{
		Speed:         cfg.Speed,
		MaxConcurrent: cfg.MaxConcurrent,
		IntervalMax:   config.Seconds(cfg.IntervalMax),
	}
}

// Leveler decides when the player levels up and how difficulty changes.
type Leveler struct {
	cfg         config.LevelingConfig
	intervalMin time.Duration
}

// NewLeveler creates a leveler. The interval floor comes from the projectile config.
func NewLeveler(cfg config.LevelingConfig, projectiles config.ProjectileConfig) Leveler {
	return Leveler{cfg: cfg, intervalMin: config.Seconds(projectiles.IntervalMin)}
}

// ShouldLevelUp reports whether score sits strictly between the current
// level's quota and the next one. A score landing exactly on a quota
// multiple waits for the next collection.
func (l Leveler) ShouldLevelUp(score, level int) bool {
	if !l.cfg.Enabled || l.cfg.CashQuota <= 0 {
		return false
	}
	q := l.cfg.CashQuota
	return q*level < score && score < q*(level+1)
}

// Apply returns the difficulty after reaching newLevel.
// Odd levels add projectiles, even levels add speed, and every
// IntervalEvery-th level tightens the spawn interval down to the floor.
func (l Leveler) Apply(newLevel int, d Difficulty) Difficulty {
	if newLevel%2 == 1 {
		d.MaxConcurrent += l.cfg.CountStep
	} else {
		d.Speed += l.cfg.SpeedStep
	}

	if l.cfg.IntervalEvery > 0 && newLevel%l.cfg.IntervalEvery == 0 {
		d.IntervalMax -= config.Seconds(l.cfg.IntervalAdjust)
		if d.IntervalMax < l.intervalMin {
			d.IntervalMax = l.intervalMin
		}
	}
	return d
}
