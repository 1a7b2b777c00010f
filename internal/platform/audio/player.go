// Package audio plays synthesized sound cues for game events.
// It is attached to the game as an event listener; the game never knows
// whether sound is on.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cashdodge/internal/games/dodge"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// tracked marks itself done once its streamer is drained.
type tracked struct {
	beep.Streamer
	done atomic.Bool
}

func (t *tracked) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Streamer.Stream(samples)
	if !ok {
		t.done.Store(true)
	}
	return n, ok
}

// Player mixes cues into the system speaker.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	active  bool
	lastHit *tracked
}

// NewPlayer creates a player. It stays silent until Start succeeds.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Start opens the speaker and begins playback of the mixer.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.active = true
	return nil
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.active = false
}

// Play queues a cue. A hit cue is skipped while the previous one still sounds.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}
	if c == CueHit && p.lastHit != nil && !p.lastHit.done.Load() {
		return
	}

	s := Build(c, SampleRate, p.volume)
	if s == nil {
		return
	}
	t := &tracked{Streamer: s}
	if c == CueHit {
		p.lastHit = t
	}

	speaker.Lock()
	p.mixer.Add(t)
	speaker.Unlock()
}

// OnEvent maps game events to cues.
func (p *Player) OnEvent(e dodge.Event) {
	switch e.Kind {
	case dodge.EventHit:
		p.Play(CueHit)
	case dodge.EventCollected:
		p.Play(CueCash)
	case dodge.EventLevelUp:
		p.Play(CueLevelUp)
	case dodge.EventGameOver:
		p.Play(CueGameOver)
	}
}

var _ dodge.Listener = (*Player)(nil)
