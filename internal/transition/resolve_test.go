package transition

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		position float64
		n        int
		want     IndexPair
	}{
		{0, 4, IndexPair{Current: 0, Next: 1}},
		{1.5, 4, IndexPair{Current: 1, Next: 2, Blend: 0.5}},
		{3.25, 4, IndexPair{Current: 3, Next: 0, Blend: 0.25}},
		{6.75, 4, IndexPair{Current: 2, Next: 3, Blend: 0.75}},
		{-0.25, 4, IndexPair{Current: 3, Next: 0, Blend: 0.75}},
		{-1, 4, IndexPair{Current: 3, Next: 0}},
		{-5.5, 4, IndexPair{Current: 2, Next: 3, Blend: 0.5}},
		{0.5, 2, IndexPair{Current: 0, Next: 1, Blend: 0.5}},
		{1.5, 2, IndexPair{Current: 1, Next: 0, Blend: 0.5}},
		{2.5, 1, IndexPair{Current: 0, Next: 0, Blend: 0.5}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%d", tt.position, tt.n), func(t *testing.T) {
			got := Resolve(tt.position, tt.n)
			assert.Equal(t, tt.want.Current, got.Current)
			assert.Equal(t, tt.want.Next, got.Next)
			assert.InDelta(t, tt.want.Blend, got.Blend, 1e-12)
		})
	}
}

func TestResolveProperties(t *testing.T) {
	const n = 5
	for p := -12.0; p <= 12.0; p += 0.125 {
		got := Resolve(p, n)
		assert.Equal(t, (got.Current+1)%n, got.Next, "position %v", p)
		assert.GreaterOrEqual(t, got.Current, 0)
		assert.Less(t, got.Current, n)
		assert.GreaterOrEqual(t, got.Blend, 0.0)
		assert.Less(t, got.Blend, 1.0)

		shifted := Resolve(p+n, n)
		assert.Equal(t, got.Current, shifted.Current, "periodicity at %v", p)
		assert.Equal(t, got.Next, shifted.Next, "periodicity at %v", p)
		assert.InDelta(t, got.Blend, shifted.Blend, 1e-9, "periodicity at %v", p)
	}
}

func TestResolveIntegersHaveNoBlend(t *testing.T) {
	for k := -9; k <= 9; k++ {
		assert.Zero(t, Resolve(float64(k), 4).Blend, "k=%d", k)
	}
}

func TestResolveTinyNegativeStaysInRange(t *testing.T) {
	got := Resolve(-1e-17, 4)
	assert.Equal(t, 0, got.Current)
	assert.Equal(t, 1, got.Next)
	assert.Zero(t, got.Blend)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 2.0, roundHalfUp(2.4))
	assert.Equal(t, 3.0, roundHalfUp(2.5))
	assert.Equal(t, -2.0, roundHalfUp(-2.5))
	assert.Equal(t, -3.0, roundHalfUp(-2.6))
}
