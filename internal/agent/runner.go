package agent

import (
	"context"
)

// RunEpisode drives env with policy until the episode ends or ctx is cancelled.
// The environment is reset first. onStep, if non-nil, sees every result.
func RunEpisode(ctx context.Context, env *Env, policy Policy, onStep func(StepResult)) (EpisodeSummary, error) {
	res := env.Reset()
	for !res.Finished() {
		if err := ctx.Err(); err != nil {
			return env.summary(policy), err
		}

		var err error
		res, err = env.StepControl(policy.Act(res.Snapshot))
		if err != nil {
			return env.summary(policy), err
		}
		if onStep != nil {
			onStep(res)
		}
	}
	return env.summary(policy), nil
}

func (e *Env) summary(p Policy) EpisodeSummary {
	s := e.Summary()
	s.Policy = p.Name()
	return s
}
