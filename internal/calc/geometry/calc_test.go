package geometry

import (
	"errors"
	"math"
	"testing"

	"Hammerforce/internal/calc/numeric"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaftCrossSection(t *testing.T) {
	area, err := ShaftCrossSection(0.01)
	require.NoError(t, err)
	assert.InDelta(t, 7.853981633974483e-5, area, 1e-18)
}

func TestShaftCrossSection_RejectsNonPositive(t *testing.T) {
	for _, d := range []float64{0, -0.01, math.NaN(), math.Inf(1)} {
		_, err := ShaftCrossSection(d)

		var verr *numeric.ValidationError
		require.True(t, errors.As(err, &verr), "diameter %v", d)
		assert.Equal(t, "diameter", verr.Field)
	}
}

func TestConeCrossSectionAvg_ZeroAngleEqualsShaft(t *testing.T) {
	for _, d := range []float64{0.001, 0.003, 0.01, 0.04, 1.7} {
		for _, cone := range []float64{0.0005, 0.005, 0.2} {
			shaft, err := ShaftCrossSection(d)
			require.NoError(t, err)

			avg, err := ConeCrossSectionAvg(d, cone, 0)
			require.NoError(t, err)
			assert.Equal(t, shaft, avg, "d=%v cone=%v", d, cone)
		}
	}
}

func TestConeCrossSectionAvg_TaperShrinksArea(t *testing.T) {
	shaft, _ := ShaftCrossSection(0.01)
	avg, err := ConeCrossSectionAvg(0.01, 0.005, 30)

	require.NoError(t, err)
	assert.Less(t, avg, shaft)
	assert.Greater(t, avg, 0.0)

	// base 0.005, tip 0.005 - 0.005*tan(15°)
	tip := 0.005 - 0.005*math.Tan(15*math.Pi/180)
	r := (0.005 + tip) / 2
	assert.InDelta(t, math.Pi*r*r, avg, 1e-15)
}

func TestConeCrossSectionAvg_NegativeTipIsNotClamped(t *testing.T) {
	// 3 mm nail with a 1 cm cone at 30°: taper exceeds the base radius
	avg, err := ConeCrossSectionAvg(0.003, 0.01, 30)
	require.NoError(t, err)

	tip := 0.0015 - 0.01*math.Tan(15*math.Pi/180)
	require.Less(t, tip, 0.0)
	r := (0.0015 + tip) / 2
	assert.InDelta(t, math.Pi*r*r, avg, 1e-18)

	clamped, err := ConeCrossSectionAvg(0.003, 0.01, 30, WithClampedTip())
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*0.00075*0.00075, clamped, 1e-18)
	assert.Greater(t, clamped, avg)
}

func TestConeCrossSectionAvg_ClampIgnoredForPositiveTip(t *testing.T) {
	plain, _ := ConeCrossSectionAvg(0.01, 0.005, 30)
	clamped, _ := ConeCrossSectionAvg(0.01, 0.005, 30, ClampedTip(true))
	off, _ := ConeCrossSectionAvg(0.01, 0.005, 30, ClampedTip(false))

	assert.Equal(t, plain, clamped)
	assert.Equal(t, plain, off)
}

func TestConeCrossSectionAvg_Validation(t *testing.T) {
	tests := []struct {
		name     string
		d, cone  float64
		angle    float64
		expected string
	}{
		{"negative diameter", -0.01, 0.005, 30, "diameter"},
		{"negative cone length", 0.01, -0.005, 30, "coneLength"},
		{"zero cone length", 0.01, 0, 30, "coneLength"},
		{"negative angle", 0.01, 0.005, -5, "coneAngleDeg"},
		{"angle checked first", -0.01, -0.005, -5, "coneAngleDeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConeCrossSectionAvg(tt.d, tt.cone, tt.angle)

			var verr *numeric.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.expected, verr.Field)
		})
	}
}
