// Package transition implements the scroll-to-visual state machine of the
// slider: smoothed motion, index resolution, snap detection and the
// title transition lock.
package transition

import "math"

// Tuning holds the numeric constants of the scroll model. All smoothing is
// applied per frame, so behavior is tied to the tick rate.
type Tuning struct {
	IntensitySmoothing   float64 // fraction of the intensity gap closed per frame
	PositionSmoothing    float64 // fraction of the position gap closed per frame
	Friction             float64 // multiplier applied to the intensity target per frame
	InputScale           float64 // raw scroll delta to model units
	MaxIntensity         float64 // intensity target is clamped to [-MaxIntensity, MaxIntensity]
	MovementThreshold    float64 // position gap below which a snap begins
	ConvergenceThreshold float64 // position gap below which the view is stable
}

// DefaultTuning returns the tuning the slider ships with.
func DefaultTuning() Tuning {
	return Tuning{
		IntensitySmoothing:   0.5,
		PositionSmoothing:    0.05,
		Friction:             0.98,
		InputScale:           0.001,
		MaxIntensity:         1.0,
		MovementThreshold:    0.001,
		ConvergenceThreshold: 0.0001,
	}
}

// Motion owns the two smoothed scalars and their targets. Targets are only
// written by ApplyScrollDelta (and by snapping); Intensity and Position are
// only written by Advance.
type Motion struct {
	Intensity       float64
	Position        float64
	TargetIntensity float64
	TargetPosition  float64

	tuning Tuning
}

// NewMotion creates a Motion at rest at position 0.
func NewMotion(t Tuning) *Motion {
	return &Motion{tuning: t}
}

// ApplyScrollDelta folds one raw scroll sample into the targets.
func (m *Motion) ApplyScrollDelta(delta float64) {
	step := delta * m.tuning.InputScale
	m.TargetIntensity = clamp(m.TargetIntensity+step, -m.tuning.MaxIntensity, m.tuning.MaxIntensity)
	m.TargetPosition += step
}

// Advance moves the smoothed values one frame toward their targets and then
// decays the intensity target by the friction factor.
func (m *Motion) Advance() {
	m.Intensity += (m.TargetIntensity - m.Intensity) * m.tuning.IntensitySmoothing
	m.Position += (m.TargetPosition - m.Position) * m.tuning.PositionSmoothing
	m.TargetIntensity *= m.tuning.Friction
}

// Gap returns the distance between the position and its target.
func (m *Motion) Gap() float64 {
	return math.Abs(m.TargetPosition - m.Position)
}

// clamp restricts a value to a given range.
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
