package report

import (
	"bytes"
	"testing"

	hull "Nautica/internal/calc/hull"
	resistance "Nautica/internal/calc/resistance"
	stability "Nautica/internal/calc/stability"
	"Nautica/internal/plot"

	"github.com/phpdave11/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput() Input {
	return Input{
		Project: "test",
		Author:  "tester",
		Resistance: resistance.Input{
			Hull:     hull.Input{LwlM: 5, BeamM: 0.5, DraftM: 0.3},
			SpeedsMS: []float64{0, 1, 2, 3},
		},
		Stability: stability.Input{
			BeamM:     0.5,
			AnglesDeg: []float64{0, 15, 30, 45, 60, 75, 90},
		},
	}
}

func TestBuildProducesPDF(t *testing.T) {
	pdf, err := Build(testInput())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.Greater(t, buf.Len(), 1000)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestBuildRequiresBothSweeps(t *testing.T) {
	in := testInput()
	in.Resistance.SpeedsMS = nil
	_, err := Build(in)
	require.Error(t, err)

	in = testInput()
	in.Stability.AnglesDeg = nil
	_, err = Build(in)
	require.Error(t, err)
}

func TestBuildInvalidHull(t *testing.T) {
	in := testInput()
	in.Resistance.Hull.DraftM = 0
	_, err := Build(in)
	require.ErrorIs(t, err, hull.ErrInvalidGeometry)
}

func TestSinkRejectsEmptyFrame(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	sink := NewPDFSink(pdf)
	require.Error(t, sink.Render(plot.Frame{Title: "empty"}))
}

func TestSinkHandlesFlatSeries(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)
	sink := NewPDFSink(pdf)
	err := sink.Render(plot.Frame{
		Title:  "flat",
		XLabel: "x",
		YLabel: "y",
		Series: []plot.Series{{Label: "c", X: []float64{0, 1, 2}, Y: []float64{5, 5, 5}}},
	})
	require.NoError(t, err)
}
