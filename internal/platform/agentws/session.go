package agentws

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/cashdodge/internal/agent"
	"github.com/vovakirdan/cashdodge/internal/core"
	"github.com/vovakirdan/cashdodge/internal/games/dodge"
	"github.com/vovakirdan/cashdodge/internal/storage"
)

// session is one agent connection and its environment.
type session struct {
	id     string
	server *Server
	conn   *websocket.Conn
	params sessionParams
	env    *agent.Env
	logger *log.Logger
	last   agent.StepResult
}

func newSession(s *Server, conn *websocket.Conn, p sessionParams) *session {
	id := newSessionID()
	runtime := s.opts.Runtime
	runtime.Seed = p.seed
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}

	env := agent.NewEnv(s.opts.Game, runtime,
		agent.WithReward(p.reward),
		agent.WithMaxTicks(p.maxTicks),
	)
	return &session{
		id:     id,
		server: s,
		conn:   conn,
		params: p,
		env:    env,
		logger: s.logger.With("session", id),
		last:   env.Reset(),
	}
}

// run serves requests until the connection closes.
func (s *session) run() {
	defer s.conn.Close()

	s.logger.Info("agent connected",
		"codec", s.params.codec.Name(),
		"reward", s.params.reward.Name(),
		"seed", s.params.seed,
	)

	s.conn.SetReadLimit(maxMessageSize)
	for {
		s.conn.SetReadDeadline(time.Now().Add(idleTimeout))
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("read error", "error", err)
			}
			break
		}

		resp := s.handle(data)
		if err := s.write(resp); err != nil {
			s.logger.Warn("write error", "error", err)
			break
		}
	}

	s.finish(storage.EndDisconnect)
	s.logger.Info("agent disconnected", "episode", s.env.EpisodeID(), "steps", s.last.Step)
}

// handle decodes one request and produces its response.
func (s *session) handle(data []byte) Response {
	var req Request
	if err := s.params.codec.Decode(data, &req); err != nil {
		return errorResponse(fmt.Errorf("malformed request: %w", err))
	}

	switch req.Type {
	case TypeReset:
		return s.reset(req.Data)
	case TypeStep:
		return s.step(req.Data)
	case TypeInfo:
		return Response{Type: TypeInfoReply, Data: s.info()}
	default:
		return errorResponse(fmt.Errorf("unknown request type %q", req.Type))
	}
}

func (s *session) reset(data *RequestData) Response {
	s.finish(storage.EndAbandoned)
	if data != nil && data.Seed != nil {
		s.params.seed = *data.Seed
		s.last = s.env.Reseed(*data.Seed)
	} else {
		s.last = s.env.Reset()
	}
	s.logger.Debug("episode reset", "episode", s.last.EpisodeID)
	return Response{Type: TypeObservation, Data: s.last}
}

func (s *session) step(data *RequestData) Response {
	var (
		res agent.StepResult
		err error
	)
	switch {
	case data == nil:
		err = errors.New("step needs an action or x/y")
	case data.Action != nil:
		res, err = s.env.Step(agent.Action(*data.Action))
	case data.X != nil || data.Y != nil:
		var x, y float64
		if data.X != nil {
			x = *data.X
		}
		if data.Y != nil {
			y = *data.Y
		}
		res, err = s.env.StepControl(dodge.AnalogSignal(x, y))
	default:
		err = errors.New("step needs an action or x/y")
	}
	if err != nil {
		return errorResponse(err)
	}

	s.last = res
	if res.Finished() {
		reason := storage.EndTerminated
		if res.Truncated {
			reason = storage.EndTruncated
		}
		s.save(reason)
	}
	return Response{Type: TypeObservation, Data: res}
}

func (s *session) info() Info {
	actions := make([]string, agent.NumActions)
	for i := range actions {
		actions[i] = agent.Action(i).String()
	}
	return Info{
		Session:         s.id,
		Codec:           s.params.codec.Name(),
		Reward:          s.params.reward.Name(),
		Rewards:         agent.Rewards.Names(),
		Actions:         actions,
		ObservationSize: agent.ObservationSize,
		MaxTicks:        s.params.maxTicks,
		TickRate:        s.server.opts.Runtime.TickRate,
	}
}

// finish records an episode that ends without reaching a terminal step.
// Finished or empty episodes are skipped.
func (s *session) finish(reason string) {
	if s.last.Finished() || s.last.Step == 0 {
		return
	}
	s.save(reason)
}

func (s *session) save(reason string) {
	if s.server.opts.Store == nil {
		return
	}
	sum := s.env.Summary()
	_, err := s.server.opts.Store.SaveEpisode(storage.Episode{
		EpisodeID:   sum.ID,
		Source:      storage.SourceAgent,
		Reward:      sum.Reward,
		Seed:        sum.Seed,
		Steps:       sum.Steps,
		Score:       sum.Score,
		Level:       sum.Level,
		TotalReward: sum.TotalReward,
		EndReason:   reason,
	})
	if err != nil {
		s.logger.Error("could not save episode", "episode", sum.ID, "error", err)
		return
	}
	s.logger.Debug("episode saved", "episode", sum.ID, "reason", reason, "score", sum.Score)
}

func (s *session) write(resp Response) error {
	payload, err := s.params.codec.Encode(resp)
	if err != nil {
		return fmt.Errorf("agentws: encode: %w", err)
	}
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(s.params.codec.FrameType(), payload)
}

func errorResponse(err error) Response {
	return Response{Type: TypeError, Data: ErrorMessage{Message: err.Error()}}
}
