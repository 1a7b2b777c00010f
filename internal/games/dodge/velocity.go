package dodge

import (
	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/core"
)

// InputKind identifies where a control signal came from.
type InputKind int

const (
	InputAnalog  InputKind = iota // Stick or automated controller, each axis in [-1, 1]
	InputDigital                  // Four direction flags
)

// String returns the input kind name.
func (k InputKind) String() string {
	if k == InputDigital {
		return "digital"
	}
	return "analog"
}

// ControlSignal is one tick's worth of control input.
// Positive X points right and positive Y points down, matching world coordinates.
type ControlSignal struct {
	X, Y float64
	Kind InputKind
}

// Neutral is the signal of an idle controller.
var Neutral = ControlSignal{}

// AnalogSignal builds an analog signal, clamping each axis into [-1, 1].
func AnalogSignal(x, y float64) ControlSignal {
	return ControlSignal{
		X:    core.ClampF(x, -1, 1),
		Y:    core.ClampF(y, -1, 1),
		Kind: InputAnalog,
	}
}

// DigitalSignal builds a signal from four direction flags.
// Opposite flags cancel each other out.
func DigitalSignal(up, down, left, right bool) ControlSignal {
	sig := ControlSignal{Kind: InputDigital}
	if left {
		sig.X--
	}
	if right {
		sig.X++
	}
	if up {
		sig.Y--
	}
	if down {
		sig.Y++
	}
	return sig
}

// Clamped returns the signal with both axes forced into [-1, 1].
func (s ControlSignal) Clamped() ControlSignal {
	s.X = core.ClampF(s.X, -1, 1)
	s.Y = core.ClampF(s.Y, -1, 1)
	return s
}

// VelocityController converts control signals into a bounded, drift-damped velocity.
// It holds only configuration; the velocity itself belongs to the Character.
type VelocityController struct {
	cfg config.VelocityConfig
}

// NewVelocityController creates a controller from the velocity config.
func NewVelocityController(cfg config.VelocityConfig) VelocityController {
	return VelocityController{cfg: cfg}
}

// Resolve applies one tick of control to the velocity (vx, vy) and returns the result.
// Each axis accelerates toward the signal when it leaves the dead zone, otherwise
// it decays by the drift factor. Both axes are clamped to [-MaxSpeed, MaxSpeed].
func (vc VelocityController) Resolve(sig ControlSignal, vx, vy float64) (float64, float64) {
	sig = sig.Clamped()
	vx = vc.axis(sig.X, vx)
	vy = vc.axis(sig.Y, vy)
	return vx, vy
}

func (vc VelocityController) axis(signal, v float64) float64 {
	switch {
	case signal > vc.cfg.DeadZone:
		v += vc.cfg.Acceleration
	case signal < -vc.cfg.DeadZone:
		v -= vc.cfg.Acceleration
	default:
		v *= vc.cfg.Drift
	}
	return core.ClampF(v, -vc.cfg.MaxSpeed, vc.cfg.MaxSpeed)
}
