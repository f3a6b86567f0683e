package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemap(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		value, srcMin, srcMax, dstMin, dstMax float64
		clamped                               bool
		expected                              float64
	}{
		{5, 0, 10, 0, 100, false, 50},
		{-5, 0, 10, 0, 100, false, -50},
		{-5, 0, 10, 0, 100, true, 0},
		{15, 0, 10, 0, 100, true, 100},
		{0.5, 0, 1, -1, 1, false, 0},
		{2, 0, 10, 100, 0, false, 80},
		{-2, 0, 10, 100, 0, true, 100},
		{12, 0, 10, 100, 0, true, 0},
		{7, 10, 0, 0, 1, false, 0.3},
		{20, 10, 30, 1, 2, false, 1.5},
	}

	for _, testCase := range testCases {
		out := Remap(testCase.value, testCase.srcMin, testCase.srcMax, testCase.dstMin, testCase.dstMax, testCase.clamped)
		assert.InDelta(t, testCase.expected, out, 1e-9, "%+v", testCase)
	}
}

func TestRemapRoundTrip(t *testing.T) {
	t.Parallel()

	ranges := [][4]float64{
		{0, 10, 0, 100},
		{-3.5, 2.25, 40, -40},
		{1e-3, 2e-3, 1e6, 2e6},
		{100, 0, 0, 1},
	}
	values := []float64{-1000, -1, 0, 0.123, 5, 42, 1e4}

	for _, r := range ranges {
		for _, v := range values {
			there := Remap(v, r[0], r[1], r[2], r[3], false)
			back := Remap(there, r[2], r[3], r[0], r[1], false)
			assert.InDelta(t, v, back, 1e-6*math.Max(1, math.Abs(v)), "value=%v range=%v", v, r)
		}
	}
}

func TestRemapZeroWidthSourceIsNotFinite(t *testing.T) {
	t.Parallel()

	out := Remap(5, 3, 3, 0, 100, false)
	assert.True(t, math.IsInf(out, 1))

	out = Remap(3, 3, 3, 0, 100, false)
	assert.True(t, math.IsNaN(out))

	out = Remap(1, 3, 3, 0, 100, false)
	assert.True(t, math.IsInf(out, -1))

	// clamping doesn't rescue a NaN
	out = Remap(3, 3, 3, 0, 100, true)
	assert.True(t, math.IsNaN(out))
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, Clamp(5.0, 0, 10))
	assert.Equal(t, 0.0, Clamp(-1.0, 0, 10))
	assert.Equal(t, 10.0, Clamp(11.0, 0, 10))
	assert.Equal(t, 255, Clamp(300, 0, 255))
	assert.Equal(t, uint8(3), Clamp(uint8(1), 3, 9))
}

func TestClampInvertedBounds(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{-20, 0, 3, 10, 50} {
		assert.Equal(t, Clamp(v, 0, 10), Clamp(v, 10, 0), "value %v", v)
	}
}

func TestRemapper(t *testing.T) {
	t.Parallel()

	toPercent := Remapper(0, 255, 0, 100, true)
	assert.InDelta(t, 100.0, toPercent(255), 1e-9)
	assert.InDelta(t, 100.0, toPercent(400), 1e-9)
	assert.InDelta(t, 0.0, toPercent(-1), 1e-9)

	toUnit := ToUnitClamp(10, 20)
	assert.Equal(t, 0.5, toUnit(15))
	assert.Equal(t, 1.0, toUnit(25))
	assert.Equal(t, 0.0, toUnit(5))

	fromUnit := FromUnit(10, 20)
	require.Equal(t, 15.0, fromUnit(0.5))
	assert.Equal(t, 25.0, fromUnit(1.5))
}
