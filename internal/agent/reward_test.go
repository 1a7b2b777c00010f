package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cashdodge/internal/games/dodge"
)

func snap(score, health int, events ...dodge.EventKind) dodge.Snapshot {
	s := dodge.Snapshot{Score: score, Phase: dodge.PhasePlaying}
	s.Character.Health = health
	s.Character.MaxHealth = 200
	for _, k := range events {
		s.Events = append(s.Events, dodge.Event{Kind: k})
	}
	if health <= 0 {
		s.Phase = dodge.PhaseGameOver
	}
	return s
}

func TestRewards(t *testing.T) {
	tests := []struct {
		name       string
		reward     RewardFunc
		curr, prev dodge.Snapshot
		want       float64
	}{
		{"cash idle", CashReward{}, snap(0, 200), snap(0, 200), 0},
		{"cash collected", CashReward{}, snap(100, 200, dodge.EventCollected), snap(0, 200), 10},
		{"cash hit", CashReward{}, snap(0, 190, dodge.EventHit), snap(0, 200), -10},
		{"cash collected and hit", CashReward{}, snap(5, 190, dodge.EventCollected, dodge.EventHit), snap(0, 200), 0},
		{"score collected", ScoreReward{}, snap(120, 200, dodge.EventCollected), snap(20, 200), 100},
		{"score reset does not pay", ScoreReward{}, snap(0, 200), snap(0, 200), 0},
		{"survival alive", SurvivalReward{}, snap(0, 50), snap(0, 60), 1},
		{"survival dead", SurvivalReward{}, snap(0, 0), snap(0, 10), -DeathPenalty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.reward.Compute(tc.curr, tc.prev), 1e-9)
		})
	}
}

func TestNewReward(t *testing.T) {
	r, err := NewReward("")
	require.NoError(t, err)
	assert.Equal(t, DefaultReward, r.Name())

	for _, name := range Rewards.Names() {
		r, err := NewReward(name)
		require.NoError(t, err)
		assert.Equal(t, name, r.Name())
	}

	_, err = NewReward("greed")
	assert.Error(t, err)
}
