package batch

import (
	"testing"

	hull "Nautica/internal/calc/hull"
	resistance "Nautica/internal/calc/resistance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateResistance(t *testing.T) {
	in := ResistanceBatchInput{Items: []resistance.Input{
		{Hull: hull.Input{LwlM: 5, BeamM: 0.5, DraftM: 0.3}, SpeedsMS: []float64{0, 1}},
		{Hull: hull.Input{LwlM: 7, BeamM: 0.6, DraftM: 0.4}, SpeedsMS: []float64{2}},
	}}
	out, err := CalculateResistance(in)
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.Len(t, out.Results[0].Samples, 2)
	assert.Len(t, out.Results[1].Samples, 1)
}

func TestEmptyBatch(t *testing.T) {
	_, err := CalculateResistance(ResistanceBatchInput{})
	require.Error(t, err)
}

func TestFailsFastOnInvalidItem(t *testing.T) {
	in := ResistanceBatchInput{Items: []resistance.Input{
		{Hull: hull.Input{LwlM: 5, BeamM: 0.5, DraftM: 0.3}, SpeedsMS: []float64{1}},
		{Hull: hull.Input{LwlM: 0, BeamM: 0.5, DraftM: 0.3}, SpeedsMS: []float64{1}},
	}}
	out, err := CalculateResistance(in)
	require.ErrorIs(t, err, hull.ErrInvalidGeometry)
	assert.Empty(t, out.Results)
}
