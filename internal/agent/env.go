// Package agent exposes Cash Dodge as a step-based environment for automated
// controllers: discrete or analog actions in, observations and rewards out.
// Reward strategies and autopilot policies are selected by name.
package agent

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/core"
	"github.com/vovakirdan/cashdodge/internal/games/dodge"
)

// ErrEpisodeDone is returned by Step after the episode has ended.
var ErrEpisodeDone = errors.New("agent: episode is done, call Reset")

// StepResult is what the environment returns after Reset or Step.
type StepResult struct {
	EpisodeID   string         `json:"episode_id"`
	Step        int            `json:"step"`
	Observation Observation    `json:"observation"`
	Reward      float64        `json:"reward"`
	TotalReward float64        `json:"total_reward"`
	Done        bool           `json:"done"`      // Game over
	Truncated   bool           `json:"truncated"` // Step limit reached
	Snapshot    dodge.Snapshot `json:"snapshot"`
}

// Finished reports whether the episode is over for any reason.
func (r StepResult) Finished() bool {
	return r.Done || r.Truncated
}

// EpisodeSummary describes a finished (or abandoned) episode.
type EpisodeSummary struct {
	ID          string
	Reward      string // Reward strategy name
	Policy      string // Empty for external agents
	Seed        int64
	Steps       int
	Score       int
	Level       int
	TotalReward float64
	Terminated  bool
	Truncated   bool
}

// Env wraps a game as a step-based environment. It is not safe for concurrent use.
type Env struct {
	game     *dodge.Game
	reward   RewardFunc
	maxTicks int
	maxSpeed float64
	seed     int64

	episode string
	prev    dodge.Snapshot
	steps   int
	total   float64
	done    bool
	trunc   bool
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithReward selects the reward strategy.
func WithReward(r RewardFunc) EnvOption {
	return func(e *Env) {
		e.reward = r
	}
}

// WithMaxTicks truncates episodes after n steps. Zero means no limit.
func WithMaxTicks(n int) EnvOption {
	return func(e *Env) {
		e.maxTicks = n
	}
}

// NewEnv creates an environment around a fresh game and starts the first episode.
func NewEnv(cfg config.DodgeConfig, runtime core.RuntimeConfig, opts ...EnvOption) *Env {
	e := &Env{
		reward:   CashReward{},
		maxSpeed: cfg.Velocity.MaxSpeed,
		seed:     runtime.Seed,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.game = dodge.New(cfg, runtime)
	e.Reset()
	return e
}

// Reset starts a new episode with a new ID.
func (e *Env) Reset() StepResult {
	e.episode = uuid.NewString()
	e.prev = e.game.Reset()
	e.steps = 0
	e.total = 0
	e.done = false
	e.trunc = false
	return e.result(e.prev, 0)
}

// Step applies a discrete action for one tick.
func (e *Env) Step(a Action) (StepResult, error) {
	if !a.Valid() {
		return StepResult{}, fmt.Errorf("%w: %d", ErrUnknownAction, int(a))
	}
	return e.StepControl(a.Signal())
}

// StepControl applies an arbitrary control signal for one tick.
// Out-of-range values are clamped by the game.
func (e *Env) StepControl(sig dodge.ControlSignal) (StepResult, error) {
	if e.done || e.trunc {
		return StepResult{}, ErrEpisodeDone
	}

	snap, over := e.game.Step(sig)
	r := e.reward.Compute(snap, e.prev)
	e.prev = snap
	e.steps++
	e.total += r
	e.done = over
	e.trunc = !over && e.maxTicks > 0 && e.steps >= e.maxTicks
	return e.result(snap, r), nil
}

func (e *Env) result(snap dodge.Snapshot, reward float64) StepResult {
	return StepResult{
		EpisodeID:   e.episode,
		Step:        e.steps,
		Observation: Observe(snap, e.maxSpeed),
		Reward:      reward,
		TotalReward: e.total,
		Done:        e.done,
		Truncated:   e.trunc,
		Snapshot:    snap,
	}
}

// Summary describes the current episode.
func (e *Env) Summary() EpisodeSummary {
	return EpisodeSummary{
		ID:          e.episode,
		Reward:      e.reward.Name(),
		Seed:        e.seed,
		Steps:       e.steps,
		Score:       e.prev.Score,
		Level:       e.prev.Level,
		TotalReward: e.total,
		Terminated:  e.done,
		Truncated:   e.trunc,
	}
}

// Reseed changes the game seed and starts a new episode.
func (e *Env) Reseed(seed int64) StepResult {
	e.seed = seed
	e.game.Reseed(seed)
	return e.Reset()
}

// EpisodeID returns the current episode ID.
func (e *Env) EpisodeID() string {
	return e.episode
}

// Snapshot returns the latest snapshot.
func (e *Env) Snapshot() dodge.Snapshot {
	return e.prev
}

// Game exposes the underlying game, e.g. for rendering.
func (e *Env) Game() *dodge.Game {
	return e.game
}

// RewardName returns the reward strategy name.
func (e *Env) RewardName() string {
	return e.reward.Name()
}
