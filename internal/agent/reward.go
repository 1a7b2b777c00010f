package agent

import (
	"github.com/vovakirdan/cashdodge/internal/games/dodge"
	"github.com/vovakirdan/cashdodge/internal/registry"
)

// RewardFunc scores the transition from prev to curr.
type RewardFunc interface {
	Name() string
	Compute(curr, prev dodge.Snapshot) float64
}

// DefaultReward is used when no reward is selected.
const DefaultReward = "cash"

// Rewards holds every reward strategy by name.
var Rewards = registry.New[RewardFunc]("reward")

func init() {
	Rewards.Register("cash", "+10 per collection, minus health lost", func() RewardFunc { return CashReward{} })
	Rewards.Register("score", "score gained minus health lost", func() RewardFunc { return ScoreReward{} })
	Rewards.Register("survival", "+1 per step alive, -100 on game over", func() RewardFunc { return SurvivalReward{} })
}

// NewReward creates a reward strategy by name. An empty name selects DefaultReward.
func NewReward(name string) (RewardFunc, error) {
	if name == "" {
		name = DefaultReward
	}
	return Rewards.Create(name)
}

// healthLost returns how much health was lost between two snapshots.
func healthLost(curr, prev dodge.Snapshot) float64 {
	lost := prev.Character.Health - curr.Character.Health
	if lost < 0 {
		return 0
	}
	return float64(lost)
}

// CashReward pays a flat bonus for each collection and charges for damage.
type CashReward struct{}

// CollectBonus is paid for every collection.
const CollectBonus = 10

func (CashReward) Name() string { return "cash" }

func (CashReward) Compute(curr, prev dodge.Snapshot) float64 {
	r := -healthLost(curr, prev)
	if curr.HasEvent(dodge.EventCollected) {
		r += CollectBonus
	}
	return r
}

// ScoreReward pays the score delta and charges for damage.
type ScoreReward struct{}

func (ScoreReward) Name() string { return "score" }

func (ScoreReward) Compute(curr, prev dodge.Snapshot) float64 {
	return float64(curr.Score-prev.Score) - healthLost(curr, prev)
}

// SurvivalReward pays for staying alive.
type SurvivalReward struct{}

// DeathPenalty is charged on the terminal step.
const DeathPenalty = 100

func (SurvivalReward) Name() string { return "survival" }

func (SurvivalReward) Compute(curr, _ dodge.Snapshot) float64 {
	if curr.GameOver() {
		return -DeathPenalty
	}
	return 1
}
