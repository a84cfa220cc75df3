package report

import (
	"fmt"
	"math"

	"Nautica/internal/plot"
	"github.com/phpdave11/gofpdf"
)

// PDFSink renders plot frames as line charts onto a gofpdf document,
// advancing the page cursor past each chart.
type PDFSink struct {
	pdf *gofpdf.Fpdf
	WMM float64
	HMM float64
}

var _ plot.Sink = (*PDFSink)(nil)

func NewPDFSink(pdf *gofpdf.Fpdf) *PDFSink {
	return &PDFSink{pdf: pdf, WMM: 160, HMM: 60}
}

var palette = [][3]int{
	{20, 60, 160},
	{180, 40, 40},
	{30, 130, 60},
	{120, 120, 120},
}

func (s *PDFSink) Render(f plot.Frame) error {
	xmin, xmax, ymin, ymax, ok := bounds(f)
	if !ok {
		return fmt.Errorf("nothing to plot")
	}
	if xmax == xmin {
		xmax = xmin + 1
	}
	if ymax == ymin {
		ymax = ymin + 1
	}

	pdf := s.pdf
	_, pageH := pdf.GetPageSize()
	if pdf.GetY()+s.HMM+30 > pageH-15 {
		pdf.AddPage()
	}

	left := 30.0
	top := pdf.GetY() + 8

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(left, top-2, f.Title)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Rect(left, top, s.WMM, s.HMM, "D")

	sx := func(v float64) float64 { return left + (v-xmin)/(xmax-xmin)*s.WMM }
	sy := func(v float64) float64 { return top + s.HMM - (v-ymin)/(ymax-ymin)*s.HMM }

	pdf.SetLineWidth(0.35)
	for i, ser := range f.Series {
		c := palette[i%len(palette)]
		pdf.SetDrawColor(c[0], c[1], c[2])
		n := len(ser.X)
		if len(ser.Y) < n {
			n = len(ser.Y)
		}
		for j := 1; j < n; j++ {
			pdf.Line(sx(ser.X[j-1]), sy(ser.Y[j-1]), sx(ser.X[j]), sy(ser.Y[j]))
		}
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(left, top+s.HMM+4, fmt.Sprintf("%.3g", xmin))
	pdf.Text(left+s.WMM-10, top+s.HMM+4, fmt.Sprintf("%.3g", xmax))
	pdf.Text(left-12, top+s.HMM, fmt.Sprintf("%.3g", ymin))
	pdf.Text(left-12, top+3, fmt.Sprintf("%.3g", ymax))
	pdf.Text(left+s.WMM/2-pdf.GetStringWidth(f.XLabel)/2, top+s.HMM+8, f.XLabel)

	pdf.TransformBegin()
	pdf.TransformRotate(90, left-14, top+s.HMM/2)
	pdf.Text(left-14-pdf.GetStringWidth(f.YLabel)/2, top+s.HMM/2, f.YLabel)
	pdf.TransformEnd()

	ly := top + s.HMM + 13
	lx := left
	pdf.SetLineWidth(0.6)
	for i, ser := range f.Series {
		c := palette[i%len(palette)]
		pdf.SetDrawColor(c[0], c[1], c[2])
		pdf.Line(lx, ly-1.2, lx+6, ly-1.2)
		pdf.Text(lx+8, ly, ser.Label)
		lx += 8 + pdf.GetStringWidth(ser.Label) + 8
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetY(ly + 4)
	return nil
}

func bounds(f plot.Frame) (xmin, xmax, ymin, ymax float64, ok bool) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, ser := range f.Series {
		n := len(ser.X)
		if len(ser.Y) < n {
			n = len(ser.Y)
		}
		for i := 0; i < n; i++ {
			xmin = math.Min(xmin, ser.X[i])
			xmax = math.Max(xmax, ser.X[i])
			ymin = math.Min(ymin, ser.Y[i])
			ymax = math.Max(ymax, ser.Y[i])
			ok = true
		}
	}
	return xmin, xmax, ymin, ymax, ok
}
