package stability

import (
	"math"
	"testing"

	hull "Nautica/internal/calc/hull"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveValues(t *testing.T) {
	res, err := Calculate(Input{BeamM: 0.5, KGM: 0.71, AnglesDeg: []float64{0, 30, 90}})
	require.NoError(t, err)
	require.Len(t, res.Samples, 3)

	assert.InDelta(t, 0.005, res.GMM, 1e-15)
	assert.Zero(t, res.Samples[0].GZM)

	rad := 30 * math.Pi / 180
	want := 0.005*math.Sin(rad) + 0.01*math.Sin(2*rad)
	assert.InDelta(t, want, res.Samples[1].GZM, 1e-15)

	// sin(180 deg) kills the harmonic term at 90 degrees of heel.
	assert.InDelta(t, 0.005, res.Samples[2].GZM, 1e-12)
}

func TestKGDoesNotAffectCurve(t *testing.T) {
	angles := []float64{0, 15, 30, 45, 60}
	a, err := Calculate(Input{BeamM: 0.3415, KGM: 0.2, AnglesDeg: angles})
	require.NoError(t, err)
	b, err := Calculate(Input{BeamM: 0.3415, KGM: 1.8, AnglesDeg: angles})
	require.NoError(t, err)
	assert.Equal(t, a.Samples, b.Samples)
}

func TestOrderPreserved(t *testing.T) {
	angles := []float64{45, 10, 10, 0}
	res, err := Calculate(Input{BeamM: 0.5, AnglesDeg: angles})
	require.NoError(t, err)
	require.Len(t, res.Samples, len(angles))
	for i, a := range angles {
		assert.Equal(t, a, res.Samples[i].AngleDeg)
	}
}

func TestInvalidBeam(t *testing.T) {
	_, err := Calculate(Input{BeamM: 0, AnglesDeg: []float64{0, 10}})
	require.ErrorIs(t, err, hull.ErrInvalidGeometry)
}
