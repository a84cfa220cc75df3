package masscenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexMean(t *testing.T) {
	res, err := Calculate(Input{Points: []Point{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 1, Y: 3, Z: 6},
	}})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.X, 1e-12)
	assert.InDelta(t, 1.0, res.Y, 1e-12)
	assert.InDelta(t, 2.0, res.Z, 1e-12)
	assert.Equal(t, res.X, res.LCGM)
	assert.Equal(t, res.Z, res.VCGM)
	assert.Equal(t, 3, res.Count)
}

func TestSinglePoint(t *testing.T) {
	res, err := Calculate(Input{Points: []Point{{X: -1.5, Y: 0.2, Z: 4}}})
	require.NoError(t, err)
	assert.Equal(t, -1.5, res.LCGM)
	assert.Equal(t, 4.0, res.VCGM)
}

func TestNoPoints(t *testing.T) {
	_, err := Calculate(Input{})
	require.Error(t, err)
}
