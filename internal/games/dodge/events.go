package dodge

import (
	"fmt"
	"time"
)

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventCollected EventKind = iota
	EventLevelUp
	EventHit
	EventGameOver
)

// String returns the event name used in snapshots and logs.
func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "collected"
	case EventLevelUp:
		return "level_up"
	case EventHit:
		return "hit"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind by name.
func (k *EventKind) UnmarshalText(text []byte) error {
	for _, candidate := range []EventKind{EventCollected, EventLevelUp, EventHit, EventGameOver} {
		if candidate.String() == string(text) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("dodge: unknown event kind %q", text)
}

// Event is emitted by the game during Update.
// Value carries the reward, the new level, the damage or the final score.
type Event struct {
	Kind  EventKind     `json:"kind"`
	Tick  uint64        `json:"tick"`
	Value int           `json:"value"`
	At    time.Duration `json:"at"`
}

// Listener receives events as they happen.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Notice is a transient on-screen message. The renderer stops drawing it
// once Active returns false.
type Notice struct {
	Kind    EventKind     `json:"kind"`
	Text    string        `json:"text"`
	Value   int           `json:"value"`
	X       float64       `json:"x"` // World position the notice is anchored to
	Y       float64       `json:"y"`
	ShownAt time.Duration `json:"shown_at"`
	Until   time.Duration `json:"until"`
}

// Active reports whether the notice should still be displayed at now.
func (n Notice) Active(now time.Duration) bool {
	return now < n.Until
}

const levelUpText = "Next level - get the dough, they're shooting!"

func collectedText(reward int) string {
	return fmt.Sprintf("+$%d!", reward)
}
