package resistance

import (
	"math"

	hull "Nautica/internal/calc/hull"
)

const (
	gravity = 9.81

	// Cr is taken as a fixed fraction of Cf pending towing-tank data.
	crToCf = 0.15

	// Below this Reynolds number the ITTC correlation is undefined;
	// Cf is forced to zero so the curve stays defined at rest.
	minRe = 100.0
)

type Input struct {
	Hull     hull.Input `json:"hull"`
	SpeedsMS []float64  `json:"speeds_ms"`
}

type Sample struct {
	SpeedMS float64 `json:"speed_ms"`
	Re      float64 `json:"re"`
	Fn      float64 `json:"fn"`
	Cf      float64 `json:"cf"`
	Cr      float64 `json:"cr"`
	RvN     float64 `json:"rv_n"`
	RrN     float64 `json:"rr_n"`
	RtN     float64 `json:"rt_n"`
}

type Result struct {
	Hull    hull.Result `json:"hull"`
	Samples []Sample    `json:"samples"`
	Notes   string      `json:"notes"`
}

// Calculate evaluates the towing-resistance curve over the supplied speeds.
// Output order matches input order; callers plot against the original axis.
func Calculate(in Input) (Result, error) {
	p, err := hull.Calculate(in.Hull)
	if err != nil {
		return Result{}, err
	}
	samples := make([]Sample, 0, len(in.SpeedsMS))
	for _, v := range in.SpeedsMS {
		samples = append(samples, evaluate(p, v))
	}
	return Result{
		Hull:    p,
		Samples: samples,
		Notes:   "ITTC-1957 friction line; residual share fixed at 15% of Cf.",
	}, nil
}

func evaluate(p hull.Result, v float64) Sample {
	re := v * p.LwlM / p.NuM2S
	cf := 0.0
	if re > minRe {
		d := math.Log10(re) - 2
		cf = 0.075 / (d * d)
	}
	// Fn is reported for reference; the residual coefficient does not
	// depend on it in the current correlation.
	fn := v / math.Sqrt(gravity*p.LwlM)
	cr := crToCf * cf
	rv := 0.5 * p.RhoKgM3 * v * v * p.WettedM2 * cf
	rr := 0.5 * p.RhoKgM3 * v * v * p.WettedM2 * cr
	return Sample{
		SpeedMS: v,
		Re:      re,
		Fn:      fn,
		Cf:      cf,
		Cr:      cr,
		RvN:     rv,
		RrN:     rr,
		RtN:     rv + rr,
	}
}
