package agent

import (
	"math"
	"sort"

	"github.com/vovakirdan/cashdodge/internal/games/dodge"
)

// NearestProjectiles is how many projectiles an observation describes.
const NearestProjectiles = 3

// ObservationSize is the length of every Observation.
const ObservationSize = 9 + 3*NearestProjectiles

// Observation is a fixed-length feature vector describing a snapshot.
//
// Layout:
//
//	0-1   character x, y (world fraction)
//	2-3   character velocity (max speed fraction)
//	4     health fraction
//	5     collectible visible (0 or 1)
//	6-7   collectible offset from character center (world fraction)
//	8     projectile speed (max speed fraction)
//	9..   per nearest projectile: dx, dy (world fraction), present (0 or 1)
type Observation []float64

// Observe builds the observation for a snapshot.
// maxSpeed is the character's velocity limit, used for normalization.
func Observe(s dodge.Snapshot, maxSpeed float64) Observation {
	obs := make(Observation, ObservationSize)
	if s.WorldW <= 0 || s.WorldH <= 0 {
		return obs
	}
	if maxSpeed <= 0 {
		maxSpeed = 1
	}

	c := s.Character
	cx, cy := c.X+c.W/2, c.Y+c.H/2

	obs[0] = c.X / s.WorldW
	obs[1] = c.Y / s.WorldH
	obs[2] = c.VX / maxSpeed
	obs[3] = c.VY / maxSpeed
	obs[4] = c.HealthFraction()

	if s.Collectible.Visible {
		col := s.Collectible
		obs[5] = 1
		obs[6] = (col.X + col.W/2 - cx) / s.WorldW
		obs[7] = (col.Y + col.H/2 - cy) / s.WorldH
	}
	obs[8] = s.Difficulty.Speed / maxSpeed

	for i, p := range nearest(s.Projectiles, cx, cy) {
		if i >= NearestProjectiles {
			break
		}
		base := 9 + 3*i
		obs[base] = (p.X + p.W/2 - cx) / s.WorldW
		obs[base+1] = (p.Y + p.H/2 - cy) / s.WorldH
		obs[base+2] = 1
	}
	return obs
}

// nearest returns projectiles ordered by distance from (x, y).
func nearest(ps []dodge.ProjectileState, x, y float64) []dodge.ProjectileState {
	sorted := make([]dodge.ProjectileState, len(ps))
	copy(sorted, ps)
	dist := func(p dodge.ProjectileState) float64 {
		return math.Hypot(p.X+p.W/2-x, p.Y+p.H/2-y)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return dist(sorted[i]) < dist(sorted[j])
	})
	return sorted
}
