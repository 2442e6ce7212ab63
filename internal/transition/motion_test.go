package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyScrollDeltaClampsIntensityOnly(t *testing.T) {
	m := NewMotion(DefaultTuning())

	m.ApplyScrollDelta(5000)
	assert.Equal(t, 1.0, m.TargetIntensity)
	assert.InDelta(t, 5.0, m.TargetPosition, 1e-12)

	m.ApplyScrollDelta(-12000)
	assert.Equal(t, -1.0, m.TargetIntensity)
	assert.InDelta(t, -7.0, m.TargetPosition, 1e-12)
}

func TestAdvanceSmoothsTowardTargets(t *testing.T) {
	m := NewMotion(DefaultTuning())
	m.TargetIntensity = 0.4
	m.TargetPosition = 1

	m.Advance()

	assert.InDelta(t, 0.2, m.Intensity, 1e-12)
	assert.InDelta(t, 0.05, m.Position, 1e-12)
	assert.InDelta(t, 0.4*0.98, m.TargetIntensity, 1e-12)
}

func TestFrictionDecay(t *testing.T) {
	m := NewMotion(DefaultTuning())
	m.TargetIntensity = 1.0

	m.Advance()
	assert.InDelta(t, 0.98, m.TargetIntensity, 1e-12)

	peak := m.Intensity
	for i := 0; i < 600; i++ {
		m.Advance()
	}
	assert.Less(t, m.Intensity, peak)
	assert.InDelta(t, 0, m.Intensity, 1e-4)
	assert.InDelta(t, 0, m.TargetIntensity, 1e-4)
}

func TestGap(t *testing.T) {
	m := NewMotion(DefaultTuning())
	m.Position = 2.5
	m.TargetPosition = 2
	assert.Equal(t, 0.5, m.Gap())
}
