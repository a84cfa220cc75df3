package export

import (
	"fmt"

	resistance "Nautica/internal/calc/resistance"
	stability "Nautica/internal/calc/stability"
	"github.com/xuri/excelize/v2"
)

type Input struct {
	Resistance resistance.Input `json:"resistance"`
	Stability  stability.Input  `json:"stability"`
}

// Build evaluates the requested curves and lays them out one sheet per curve.
// At least one of the two inputs must carry samples.
func Build(in Input) (*excelize.File, error) {
	hasSpeeds := len(in.Resistance.SpeedsMS) > 0
	hasAngles := len(in.Stability.AnglesDeg) > 0
	if !hasSpeeds && !hasAngles {
		return nil, fmt.Errorf("nothing to export")
	}

	f := excelize.NewFile()
	first := true

	if hasSpeeds {
		res, err := resistance.Calculate(in.Resistance)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := resistanceSheet(f, "Resistance", first, res); err != nil {
			f.Close()
			return nil, err
		}
		first = false
	}
	if hasAngles {
		res, err := stability.Calculate(in.Stability)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := gzSheet(f, "GZ", first, res); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func resistanceSheet(f *excelize.File, name string, first bool, res resistance.Result) error {
	if err := addSheet(f, name, first); err != nil {
		return err
	}
	headers := []string{"speed_ms", "re", "fn", "cf", "cr", "rv_n", "rr_n", "rt_n"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(name, cell, h)
	}
	for r, s := range res.Samples {
		values := []float64{s.SpeedMS, s.Re, s.Fn, s.Cf, s.Cr, s.RvN, s.RrN, s.RtN}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(name, cell, v)
		}
	}
	return nil
}

func gzSheet(f *excelize.File, name string, first bool, res stability.Result) error {
	if err := addSheet(f, name, first); err != nil {
		return err
	}
	f.SetCellValue(name, "A1", "angle_deg")
	f.SetCellValue(name, "B1", "gz_m")
	for r, s := range res.Samples {
		cellA, _ := excelize.CoordinatesToCellName(1, r+2)
		cellB, _ := excelize.CoordinatesToCellName(2, r+2)
		f.SetCellValue(name, cellA, s.AngleDeg)
		f.SetCellValue(name, cellB, s.GZM)
	}
	return nil
}

func addSheet(f *excelize.File, name string, first bool) error {
	if first {
		return f.SetSheetName(f.GetSheetName(0), name)
	}
	_, err := f.NewSheet(name)
	return err
}
