package dodge

import (
	"math"
	"testing"

	"github.com/vovakirdan/cashdodge/internal/config"
)

func TestVelocityResolve(t *testing.T) {
	vc := NewVelocityController(config.DefaultDodgeConfig().Velocity)

	tests := []struct {
		name           string
		sig            ControlSignal
		vx, vy         float64
		wantVX, wantVY float64
	}{
		{"accelerate right", AnalogSignal(1, 0), 0, 0, 0.5, 0},
		{"accelerate up", AnalogSignal(0, -1), 0, 0, 0, -0.5},
		{"drift when idle", Neutral, 10, -10, 9, -9},
		{"dead zone counts as idle", AnalogSignal(0.1, -0.15), 2, 2, 1.8, 1.8},
		{"clamp at max speed", AnalogSignal(1, 1), 10, 10, 10, 10},
		{"reverse direction", AnalogSignal(-1, 0), 3, 0, 2.5, 0},
		{"digital down left", DigitalSignal(false, true, true, false), 0, 0, -0.5, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vx, vy := vc.Resolve(tc.sig, tc.vx, tc.vy)
			if math.Abs(vx-tc.wantVX) > 1e-9 || math.Abs(vy-tc.wantVY) > 1e-9 {
				t.Errorf("Resolve = (%f, %f), expected (%f, %f)", vx, vy, tc.wantVX, tc.wantVY)
			}
		})
	}
}

func TestVelocityNeverExceedsMaxSpeed(t *testing.T) {
	cfg := config.DefaultDodgeConfig().Velocity
	vc := NewVelocityController(cfg)

	signals := []ControlSignal{
		AnalogSignal(1, 1),
		{X: 50, Y: -50, Kind: InputAnalog}, // Malformed, clamped
		DigitalSignal(true, false, false, true),
		Neutral,
	}

	var vx, vy float64
	for i := 0; i < 400; i++ {
		vx, vy = vc.Resolve(signals[(i/50)%len(signals)], vx, vy)
		if math.Abs(vx) > cfg.MaxSpeed || math.Abs(vy) > cfg.MaxSpeed {
			t.Fatalf("tick %d: velocity (%f, %f) exceeds max speed %f", i, vx, vy, cfg.MaxSpeed)
		}
	}
}

func TestVelocityDriftSettles(t *testing.T) {
	vc := NewVelocityController(config.DefaultDodgeConfig().Velocity)

	vx, vy := 10.0, -10.0
	for i := 0; i < 200; i++ {
		vx, vy = vc.Resolve(Neutral, vx, vy)
	}
	if math.Abs(vx) > 0.01 || math.Abs(vy) > 0.01 {
		t.Errorf("velocity should settle near zero, got (%f, %f)", vx, vy)
	}
}

func TestDigitalSignal(t *testing.T) {
	sig := DigitalSignal(true, true, false, true)
	if sig.X != 1 || sig.Y != 0 {
		t.Errorf("DigitalSignal(up, down, right) = (%f, %f), expected (1, 0)", sig.X, sig.Y)
	}
	if sig.Kind != InputDigital {
		t.Errorf("Kind = %s, expected digital", sig.Kind)
	}
}

func TestAnalogSignalClamps(t *testing.T) {
	sig := AnalogSignal(3, -7)
	if sig.X != 1 || sig.Y != -1 {
		t.Errorf("AnalogSignal(3, -7) = (%f, %f), expected (1, -1)", sig.X, sig.Y)
	}
}
