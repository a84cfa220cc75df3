package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDefaults(t *testing.T) {
	res, err := Calculate(Input{LwlM: 5.0, BeamM: 0.5, DraftM: 0.3})
	require.NoError(t, err)

	assert.Equal(t, 1025.0, res.RhoKgM3)
	assert.Equal(t, 1.188e-6, res.NuM2S)
	assert.True(t, res.AwEstimated)
	assert.InDelta(t, 3.5, res.AwM2, 1e-12)      // 0.7 * 5 * 0.5 * 2
	assert.InDelta(t, 1.5, res.VolumeM3, 1e-12)  // 5 * 0.5 * 0.3 * 2
	assert.InDelta(t, 1537.5, res.DisplacementKg, 1e-9)
	assert.InDelta(t, 0.7, res.Cwp, 1e-12)
	assert.InDelta(t, 11.0, res.WettedM2, 1e-12) // 2 * (2*5*0.3 + 0.5*5)
}

func TestCalculateSuppliedWaterplane(t *testing.T) {
	res, err := Calculate(Input{LwlM: 5.0, BeamM: 0.5, DraftM: 0.3, AwM2: 3.0})
	require.NoError(t, err)

	assert.False(t, res.AwEstimated)
	assert.Equal(t, 3.0, res.AwM2)
	assert.InDelta(t, 0.6, res.Cwp, 1e-12) // 3 / (5 * 0.5 * 2)
}

// The box volume estimate and the Cb denominator are the same expression,
// so Cb stays exactly 1 until an independent volume source exists.
func TestBlockCoefficientIsUnity(t *testing.T) {
	for _, in := range []Input{
		{LwlM: 5.0, BeamM: 0.5, DraftM: 0.3},
		{LwlM: 1.198, BeamM: 0.3415, DraftM: 0.4},
		{LwlM: 12, BeamM: 1.1, DraftM: 0.6, AwM2: 20},
	} {
		res, err := Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, 1.0, res.Cb)
	}
}

func TestCalculateInvalidGeometry(t *testing.T) {
	cases := []Input{
		{LwlM: 0, BeamM: 0.5, DraftM: 0.3},
		{LwlM: 5, BeamM: -0.5, DraftM: 0.3},
		{LwlM: 5, BeamM: 0.5, DraftM: 0},
		{},
	}
	for _, in := range cases {
		_, err := Calculate(in)
		require.ErrorIs(t, err, ErrInvalidGeometry)
	}
}

func TestCalculateIdempotent(t *testing.T) {
	in := Input{LwlM: 5.0, BeamM: 0.5, DraftM: 0.3}
	a, err := Calculate(in)
	require.NoError(t, err)
	b, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
