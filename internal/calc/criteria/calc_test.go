package criteria

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryExample(t *testing.T) {
	res, err := Evaluate(Input{
		AnglesDeg: []float64{0, 10, 20, 35},
		GZM:       []float64{0.0, 0.1, 0.25, 0.18},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.25, res.MaxGZM)
	assert.True(t, res.MaxGZOK)
	assert.Equal(t, 20.0, res.AngleAtMaxGZDeg)
	assert.False(t, res.AngleAtMaxGZOK)

	// Only the angles up to 30 deg enter the area: trapezoids (0,10) and
	// (10,20) in radians.
	d := 10 * math.Pi / 180
	want := d*(0.0+0.1)/2 + d*(0.1+0.25)/2
	assert.InDelta(t, want, res.AreaTo30MRad, 1e-12)
	assert.False(t, res.AreaTo30OK)
}

func TestAreaWindowExcludesAnglesPast30(t *testing.T) {
	// The 45 degree sample carries an absurd GZ; it must not leak into the
	// area because the window is the first three samples.
	res, err := Evaluate(Input{
		AnglesDeg: []float64{0, 15, 30, 45},
		GZM:       []float64{0.1, 0.1, 0.1, 100},
	})
	require.NoError(t, err)

	want := (30 * math.Pi / 180) * 0.1
	assert.InDelta(t, want, res.AreaTo30MRad, 1e-12)
	assert.False(t, res.AreaTo30OK)
}

func TestFirstMaximumWins(t *testing.T) {
	res, err := Evaluate(Input{
		AnglesDeg: []float64{0, 10, 20},
		GZM:       []float64{0.2, 0.3, 0.3},
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.AngleAtMaxGZDeg)
}

func TestPassingCurve(t *testing.T) {
	res, err := Evaluate(Input{
		AnglesDeg: []float64{0, 10, 20, 30, 40},
		GZM:       []float64{0, 0.15, 0.22, 0.25, 0.26},
	})
	require.NoError(t, err)
	assert.True(t, res.MaxGZOK)
	assert.True(t, res.AngleAtMaxGZOK) // max at 40 deg
	assert.True(t, res.AreaTo30OK)
}

func TestEmptyInput(t *testing.T) {
	res, err := Evaluate(Input{})
	require.ErrorIs(t, err, ErrEmptySequence)
	assert.Zero(t, res)

	_, err = Evaluate(Input{AnglesDeg: []float64{0}, GZM: nil})
	require.ErrorIs(t, err, ErrEmptySequence)
}

func TestLengthMismatch(t *testing.T) {
	_, err := Evaluate(Input{AnglesDeg: []float64{0, 10}, GZM: []float64{0.1}})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmptySequence)
}
