package report

import (
	"fmt"
	"time"

	criteria "Nautica/internal/calc/criteria"
	resistance "Nautica/internal/calc/resistance"
	stability "Nautica/internal/calc/stability"
	"Nautica/internal/plot"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project    string           `json:"project"`
	Author     string           `json:"author"`
	Title      string           `json:"title"`
	Notes      string           `json:"notes"`
	Resistance resistance.Input `json:"resistance"`
	Stability  stability.Input  `json:"stability"`
}

// Build runs both sweeps, evaluates the stability criteria and lays the
// whole thing out as an A4 report with the curves drawn in.
func Build(in Input) (*gofpdf.Fpdf, error) {
	if len(in.Resistance.SpeedsMS) == 0 || len(in.Stability.AnglesDeg) == 0 {
		return nil, fmt.Errorf("speed and angle sweeps required")
	}
	if in.Title == "" {
		in.Title = "Hull Estimation Report"
	}

	rres, err := resistance.Calculate(in.Resistance)
	if err != nil {
		return nil, err
	}
	sres, err := stability.Calculate(in.Stability)
	if err != nil {
		return nil, err
	}

	angles := make([]float64, len(sres.Samples))
	gz := make([]float64, len(sres.Samples))
	for i, s := range sres.Samples {
		angles[i] = s.AngleDeg
		gz[i] = s.GZM
	}
	crit, err := criteria.Evaluate(criteria.Input{AnglesDeg: angles, GZM: gz})
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)
	if in.Notes != "" {
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
		pdf.Ln(4)
	}

	particulars(pdf, rres)
	criteriaTable(pdf, crit)

	sink := NewPDFSink(pdf)

	speeds := make([]float64, len(rres.Samples))
	rt := make([]float64, len(rres.Samples))
	rv := make([]float64, len(rres.Samples))
	rr := make([]float64, len(rres.Samples))
	for i, s := range rres.Samples {
		speeds[i] = s.SpeedMS
		rt[i] = s.RtN
		rv[i] = s.RvN
		rr[i] = s.RrN
	}
	if err := sink.Render(plot.Frame{
		Title:  "Towing resistance",
		XLabel: "Speed (m/s)",
		YLabel: "Resistance (N)",
		Series: []plot.Series{
			{Label: "Rt", X: speeds, Y: rt},
			{Label: "Rv", X: speeds, Y: rv},
			{Label: "Rr", X: speeds, Y: rr},
		},
	}); err != nil {
		return nil, err
	}
	if err := sink.Render(plot.Frame{
		Title:  "Static stability",
		XLabel: "Heel angle (deg)",
		YLabel: "GZ (m)",
		Series: []plot.Series{{Label: "GZ", X: angles, Y: gz}},
	}); err != nil {
		return nil, err
	}

	return pdf, nil
}

func particulars(pdf *gofpdf.Fpdf, res resistance.Result) {
	p := res.Hull
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Principal particulars")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Lwl %.3f m   Beam %.3f m   Draft %.3f m", p.LwlM, p.BeamM, p.DraftM),
		fmt.Sprintf("Displacement %.1f kg   Volume %.3f m3   Wetted surface %.2f m2", p.DisplacementKg, p.VolumeM3, p.WettedM2),
		fmt.Sprintf("Aw %.3f m2   Cb %.2f   Cwp %.2f", p.AwM2, p.Cb, p.Cwp),
	}
	for _, l := range lines {
		pdf.Cell(0, 5, l)
		pdf.Ln(5)
	}
	pdf.Ln(3)
}

func criteriaTable(pdf *gofpdf.Fpdf, crit criteria.Result) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Stability criteria")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	rows := []struct {
		name      string
		measured  float64
		threshold float64
		ok        bool
	}{
		{"Max GZ (m)", crit.MaxGZM, criteria.MinMaxGZM, crit.MaxGZOK},
		{"Angle at max GZ (deg)", crit.AngleAtMaxGZDeg, criteria.MinAngleAtMaxDeg, crit.AngleAtMaxGZOK},
		{"Area to 30 deg (m*rad)", crit.AreaTo30MRad, criteria.MinAreaTo30MRad, crit.AreaTo30OK},
	}
	for _, row := range rows {
		verdict := "FAIL"
		if row.ok {
			verdict = "OK"
		}
		pdf.CellFormat(70, 6, row.name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.4f", row.measured), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf(">= %.3f", row.threshold), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, verdict, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
}
