package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueHit Cue = iota
	CueCash
	CueLevelUp
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueCash:
		return "cash"
	case CueLevelUp:
		return "level_up"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Build synthesizes the streamer for a cue at the given rate and linear volume.
// Every cue is finite.
func Build(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueHit:
		s = gunshot(rate)
	case CueCash:
		s = chime(rate)
	case CueLevelUp:
		s = arpeggio(rate)
	case CueGameOver:
		s = lament(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// gunshot is a noise crack over a low thump.
func gunshot(rate beep.SampleRate) beep.Streamer {
	const d = 180 * time.Millisecond
	crack := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 160*time.Millisecond, rate)
	thump := NewEnvelope(NewOscillator(90, d, WaveSine, rate), d, 2*time.Millisecond, 170*time.Millisecond, rate)
	return beep.Mix(newVolume(crack, 0.6), newVolume(thump, 0.4))
}

// chime is the two-note cash register ding.
func chime(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newVolume(note(987.77, 80*time.Millisecond, WaveSquare, rate), 0.5),
		newVolume(note(1318.51, 220*time.Millisecond, WaveSquare, rate), 0.5),
	)
}

// arpeggio climbs a major chord.
func arpeggio(rate beep.SampleRate) beep.Streamer {
	const d = 90 * time.Millisecond
	return beep.Seq(
		note(523.25, d, WaveSine, rate),
		note(659.25, d, WaveSine, rate),
		note(783.99, d, WaveSine, rate),
		note(1046.50, 2*d, WaveSine, rate),
	)
}

// lament descends to a low note.
func lament(rate beep.SampleRate) beep.Streamer {
	const d = 180 * time.Millisecond
	return newVolume(beep.Seq(
		note(392.00, d, WaveSaw, rate),
		note(329.63, d, WaveSaw, rate),
		note(261.63, d, WaveSaw, rate),
		note(196.00, 3*d, WaveSaw, rate),
	), 0.6)
}
