package main

import (
	"flag"
	"fmt"
	"log"

	criteria "Nautica/internal/calc/criteria"
	export "Nautica/internal/calc/export"
	hull "Nautica/internal/calc/hull"
	report "Nautica/internal/calc/report"
	resistance "Nautica/internal/calc/resistance"
	stability "Nautica/internal/calc/stability"
)

// Offline sweep driver: evaluates a resistance sweep and a 0-90 degree
// stability sweep for one hull and writes the PDF report and xlsx curves.
func main() {
	lwl := flag.Float64("lwl", 5.0, "waterline length, m")
	beam := flag.Float64("beam", 0.5, "beam of one float, m")
	draft := flag.Float64("draft", 0.3, "draft, m")
	aw := flag.Float64("aw", 0, "waterplane area, m2 (0 = estimate)")
	kg := flag.Float64("kg", 0.71, "center of gravity above keel, m")
	vmax := flag.Float64("vmax", 25, "max speed, m/s")
	dv := flag.Float64("dv", 0.1, "speed step, m/s")
	out := flag.String("out", "sweep", "output file prefix")
	flag.Parse()

	hullIn := hull.Input{LwlM: *lwl, BeamM: *beam, DraftM: *draft, AwM2: *aw}

	var speeds []float64
	for v := 0.0; v < *vmax; v += *dv {
		speeds = append(speeds, v)
	}
	var angles []float64
	for a := 0.0; a <= 90; a += 5 {
		angles = append(angles, a)
	}

	resIn := resistance.Input{Hull: hullIn, SpeedsMS: speeds}
	stabIn := stability.Input{BeamM: *beam, KGM: *kg, AnglesDeg: angles}

	rres, err := resistance.Calculate(resIn)
	if err != nil {
		log.Fatal(err)
	}
	sres, err := stability.Calculate(stabIn)
	if err != nil {
		log.Fatal(err)
	}

	gz := make([]float64, len(sres.Samples))
	for i, s := range sres.Samples {
		gz[i] = s.GZM
	}
	crit, err := criteria.Evaluate(criteria.Input{AnglesDeg: angles, GZM: gz})
	if err != nil {
		log.Fatal(err)
	}

	p := rres.Hull
	fmt.Printf("Displacement: %.2f kg (volume %.3f m3)\n", p.DisplacementKg, p.VolumeM3)
	fmt.Printf("Cb: %.2f  Cwp: %.2f  Wetted surface: %.2f m2\n", p.Cb, p.Cwp, p.WettedM2)
	if n := len(rres.Samples); n > 0 {
		last := rres.Samples[n-1]
		fmt.Printf("Rt at %.1f m/s: %.1f N (Rv %.1f, Rr %.1f)\n", last.SpeedMS, last.RtN, last.RvN, last.RrN)
	}
	fmt.Printf("Max GZ: %.4f m at %.0f deg (OK=%v/%v)\n", crit.MaxGZM, crit.AngleAtMaxGZDeg, crit.MaxGZOK, crit.AngleAtMaxGZOK)
	fmt.Printf("Area to 30 deg: %.4f m*rad (OK=%v)\n", crit.AreaTo30MRad, crit.AreaTo30OK)

	pdf, err := report.Build(report.Input{
		Title:      "Hull Estimation Report",
		Project:    "sweep",
		Resistance: resIn,
		Stability:  stabIn,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := pdf.OutputFileAndClose(*out + ".pdf"); err != nil {
		log.Fatal(err)
	}

	f, err := export.Build(export.Input{Resistance: resIn, Stability: stabIn})
	if err != nil {
		log.Fatal(err)
	}
	if err := f.SaveAs(*out + ".xlsx"); err != nil {
		log.Fatal(err)
	}
	f.Close()

	log.Printf("Wrote %s.pdf and %s.xlsx", *out, *out)
}
