package agent

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cashdodge/internal/core"
	"github.com/vovakirdan/cashdodge/internal/games/dodge"
	"github.com/vovakirdan/cashdodge/internal/registry"
)

// Policy chooses a control signal from a snapshot.
type Policy interface {
	Name() string
	Act(s dodge.Snapshot) dodge.ControlSignal
}

// Seeder is implemented by policies that use randomness.
type Seeder interface {
	Seed(seed int64)
}

// DefaultPolicy is used when no policy is selected.
const DefaultPolicy = "evade"

// Policies holds every autopilot policy by name.
var Policies = registry.New[Policy]("policy")

func init() {
	Policies.Register("idle", "never touches the controls", func() Policy { return IdlePolicy{} })
	Policies.Register("random", "random direction held for a few ticks", func() Policy { return NewRandomPolicy(1) })
	Policies.Register("evade", "sidesteps falling projectiles, otherwise chases cash", func() Policy { return NewEvadePolicy() })
}

// NewPolicy creates a policy by name and seeds it when it is random.
// An empty name selects DefaultPolicy.
func NewPolicy(name string, seed int64) (Policy, error) {
	if name == "" {
		name = DefaultPolicy
	}
	p, err := Policies.Create(name)
	if err != nil {
		return nil, err
	}
	if s, ok := p.(Seeder); ok {
		s.Seed(seed)
	}
	return p, nil
}

// IdlePolicy does nothing.
type IdlePolicy struct{}

func (IdlePolicy) Name() string { return "idle" }

func (IdlePolicy) Act(dodge.Snapshot) dodge.ControlSignal { return dodge.Neutral }

// RandomPolicy picks a random discrete action and holds it for a few ticks.
type RandomPolicy struct {
	rng     *rand.Rand
	current Action
	left    int
	hold    int
}

// NewRandomPolicy creates a random policy.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed)), hold: 8}
}

func (p *RandomPolicy) Name() string { return "random" }

// Seed restarts the random stream.
func (p *RandomPolicy) Seed(seed int64) {
	p.rng = rand.New(rand.NewSource(seed))
	p.left = 0
}

func (p *RandomPolicy) Act(dodge.Snapshot) dodge.ControlSignal {
	if p.left <= 0 {
		p.current = Action(p.rng.Intn(NumActions))
		p.left = p.hold
	}
	p.left--
	return p.current.Signal()
}

// EvadePolicy steers away from projectiles about to land on the character
// and otherwise heads for the cash.
type EvadePolicy struct {
	// Lookahead is how far above the character (world units) a projectile counts as a threat.
	Lookahead float64
	// Margin widens the character's column when looking for threats.
	Margin float64
	// Gain converts distance to target into desired velocity.
	Gain float64
}

// NewEvadePolicy creates an evade policy with tuned defaults.
func NewEvadePolicy() EvadePolicy {
	return EvadePolicy{Lookahead: 450, Margin: 40, Gain: 0.05}
}

func (EvadePolicy) Name() string { return "evade" }

func (p EvadePolicy) Act(s dodge.Snapshot) dodge.ControlSignal {
	c := s.Character
	cx, cy := c.X+c.W/2, c.Y+c.H/2

	if threat, ok := p.threat(s); ok {
		tx := threat.X + threat.W/2
		dir := 1.0
		if tx > cx {
			dir = -1
		}
		// Stuck against a wall: go the other way
		if (dir < 0 && c.X <= 0) || (dir > 0 && c.X+c.W >= s.WorldW) {
			dir = -dir
		}
		return dodge.AnalogSignal(dir, 0)
	}

	if !s.Collectible.Visible {
		return p.steer(c, s.WorldW/2-cx, 0)
	}
	col := s.Collectible
	return p.steer(c, col.X+col.W/2-cx, col.Y+col.H/2-cy)
}

// threat returns the closest projectile above the character whose column overlaps it.
func (p EvadePolicy) threat(s dodge.Snapshot) (dodge.ProjectileState, bool) {
	c := s.Character
	var best dodge.ProjectileState
	found := false
	for _, pr := range s.Projectiles {
		if pr.X+pr.W < c.X-p.Margin || pr.X > c.X+c.W+p.Margin {
			continue
		}
		below := pr.Y + pr.H
		if below > c.Y+c.H || c.Y-below > p.Lookahead {
			continue
		}
		if !found || pr.Y > best.Y {
			best, found = pr, true
		}
	}
	return best, found
}

// steer produces a signal that moves velocity toward a value proportional to the offset.
func (p EvadePolicy) steer(c dodge.CharacterState, dx, dy float64) dodge.ControlSignal {
	const maxDesired = 10
	wantX := core.ClampF(dx*p.Gain, -maxDesired, maxDesired)
	wantY := core.ClampF(dy*p.Gain, -maxDesired, maxDesired)
	sx := wantX - c.VX
	sy := wantY - c.VY
	if math.Abs(sx) < 0.5 {
		sx = 0
	}
	if math.Abs(sy) < 0.5 {
		sy = 0
	}
	return dodge.AnalogSignal(sx, sy)
}
