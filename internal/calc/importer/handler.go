package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	hull "Nautica/internal/calc/hull"
	resistance "Nautica/internal/calc/resistance"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type HullImportResult struct {
	Count   int                 `json:"count"`
	Results []resistance.Result `json:"results"`
}

// Hulls imports an xlsx of hull rows and evaluates a spot resistance per row.
func (h *Handler) Hulls(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	results, err := FromWorkbook(f)
	if err != nil {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HullImportResult{Count: len(results), Results: results})
}

// FromWorkbook reads the first sheet, skipping the header row and any row
// that fails to parse or evaluate.
func FromWorkbook(f *excelize.File) ([]resistance.Result, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return nil, fmt.Errorf("empty sheet")
	}

	var results []resistance.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseHullRow(rows[i])
		if err != nil {
			continue
		}
		res, err := resistance.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

func parseHullRow(row []string) (resistance.Input, error) {
	// expected: lwl_m, beam_m, draft_m, speed_ms, aw_m2(optional), rho(optional)
	if len(row) < 4 {
		return resistance.Input{}, fmt.Errorf("bad row")
	}
	lwl, err := toFloat(row[0])
	if err != nil {
		return resistance.Input{}, err
	}
	beam, err := toFloat(row[1])
	if err != nil {
		return resistance.Input{}, err
	}
	draft, err := toFloat(row[2])
	if err != nil {
		return resistance.Input{}, err
	}
	speed, err := toFloat(row[3])
	if err != nil {
		return resistance.Input{}, err
	}
	aw := 0.0
	if len(row) > 4 && row[4] != "" {
		aw, _ = toFloat(row[4])
	}
	rho := 0.0
	if len(row) > 5 && row[5] != "" {
		rho, _ = toFloat(row[5])
	}
	return resistance.Input{
		Hull: hull.Input{
			LwlM:    lwl,
			BeamM:   beam,
			DraftM:  draft,
			AwM2:    aw,
			RhoKgM3: rho,
		},
		SpeedsMS: []float64{speed},
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
