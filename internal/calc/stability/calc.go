package stability

import (
	"math"

	hull "Nautica/internal/calc/hull"
)

type Input struct {
	BeamM     float64   `json:"beam_m"`
	KGM       float64   `json:"kg_m"` // accepted for a future GZ model; unused by the current one
	AnglesDeg []float64 `json:"angles_deg"`
}

type Sample struct {
	AngleDeg float64 `json:"angle_deg"`
	GZM      float64 `json:"gz_m"`
}

type Result struct {
	GMM     float64  `json:"gm_m"`
	Samples []Sample `json:"samples"`
	Notes   string   `json:"notes"`
}

// Calculate produces the righting-arm curve over the supplied heel angles,
// in input order. The GZ model is a two-term approximation tuned to give the
// qualitative hump of a real curve, not a hydrostatic computation.
func Calculate(in Input) (Result, error) {
	if in.BeamM <= 0 {
		return Result{}, hull.ErrInvalidGeometry
	}
	// Linear placeholder for the metacentric height.
	gm := 0.01 * in.BeamM
	samples := make([]Sample, 0, len(in.AnglesDeg))
	for _, deg := range in.AnglesDeg {
		rad := deg * math.Pi / 180
		gz := gm*math.Sin(rad) + 0.01*math.Sin(2*rad)
		samples = append(samples, Sample{AngleDeg: deg, GZM: gz})
	}
	return Result{
		GMM:     gm,
		Samples: samples,
		Notes:   "Two-term GZ approximation; KG does not enter the current model.",
	}, nil
}
