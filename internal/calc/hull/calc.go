package hull

import "errors"

// ErrInvalidGeometry reports a non-positive principal dimension.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Sea water defaults, applied when the caller leaves the fields zero.
const (
	DefaultRhoKgM3 = 1025.0
	DefaultNuM2S   = 1.188e-6
)

type Input struct {
	LwlM    float64 `json:"lwl_m"`
	BeamM   float64 `json:"beam_m"`
	DraftM  float64 `json:"draft_m"`
	AwM2    float64 `json:"aw_m2"`      // waterplane area; 0 = estimate from Lwl and beam
	RhoKgM3 float64 `json:"rho_kg_m3"`  // 0 = sea water
	NuM2S   float64 `json:"nu_m2_s"`    // 0 = sea water
}

type Result struct {
	LwlM           float64 `json:"lwl_m"`
	BeamM          float64 `json:"beam_m"`
	DraftM         float64 `json:"draft_m"`
	RhoKgM3        float64 `json:"rho_kg_m3"`
	NuM2S          float64 `json:"nu_m2_s"`
	AwM2           float64 `json:"aw_m2"`
	AwEstimated    bool    `json:"aw_estimated"`
	VolumeM3       float64 `json:"volume_m3"`
	DisplacementKg float64 `json:"displacement_kg"`
	Cb             float64 `json:"cb"`
	Cwp            float64 `json:"cwp"`
	WettedM2       float64 `json:"wetted_m2"`
	Notes          string  `json:"notes"`
}

// Calculate derives the principal parameter set for a twin-hull vessel.
// All area and volume figures are doubled for the two floats.
func Calculate(in Input) (Result, error) {
	if in.LwlM <= 0 || in.BeamM <= 0 || in.DraftM <= 0 {
		return Result{}, ErrInvalidGeometry
	}
	if in.RhoKgM3 <= 0 {
		in.RhoKgM3 = DefaultRhoKgM3
	}
	if in.NuM2S <= 0 {
		in.NuM2S = DefaultNuM2S
	}

	aw := in.AwM2
	awEstimated := false
	if aw <= 0 {
		// 0.7 is a fixed empirical placeholder for the waterplane fullness
		// of one float, pending measured hull lines.
		aw = 0.7 * in.LwlM * in.BeamM * 2
		awEstimated = true
	}

	// Box volume per float. Cb below divides by the same expression, so it
	// stays 1.0 until an independently measured volume replaces this.
	volume := in.LwlM * in.BeamM * in.DraftM * 2
	cb := volume / (in.LwlM * in.BeamM * in.DraftM * 2)
	cwp := aw / (in.LwlM * in.BeamM * 2)
	wetted := 2.0 * (2.0*in.LwlM*in.DraftM + in.BeamM*in.LwlM)

	notes := "Box-type volume estimate for two floats."
	if awEstimated {
		notes = "Waterplane area and volume are box-type estimates for two floats."
	}

	return Result{
		LwlM:           in.LwlM,
		BeamM:          in.BeamM,
		DraftM:         in.DraftM,
		RhoKgM3:        in.RhoKgM3,
		NuM2S:          in.NuM2S,
		AwM2:           aw,
		AwEstimated:    awEstimated,
		VolumeM3:       volume,
		DisplacementKg: in.RhoKgM3 * volume,
		Cb:             cb,
		Cwp:            cwp,
		WettedM2:       wetted,
		Notes:          notes,
	}, nil
}
