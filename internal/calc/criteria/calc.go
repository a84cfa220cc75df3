package criteria

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptySequence reports an evaluation over zero samples; the maximum and
// the trapezoidal integral are undefined on empty input.
var ErrEmptySequence = errors.New("empty sequence")

// IMO-style minimum thresholds for small craft.
const (
	MinMaxGZM        = 0.2
	MinAngleAtMaxDeg = 25.0
	MinAreaTo30MRad  = 0.055
)

type Input struct {
	AnglesDeg []float64 `json:"angles_deg"`
	GZM       []float64 `json:"gz_m"`
}

type Result struct {
	MaxGZM          float64 `json:"max_gz_m"`
	MaxGZOK         bool    `json:"max_gz_ok"`
	AngleAtMaxGZDeg float64 `json:"angle_at_max_gz_deg"`
	AngleAtMaxGZOK  bool    `json:"angle_at_max_gz_ok"`
	AreaTo30MRad    float64 `json:"area_to_30_mrad"`
	AreaTo30OK      bool    `json:"area_to_30_ok"`
	Notes           string  `json:"notes"`
}

// Evaluate checks a computed GZ curve against the fixed stability criteria.
// Angles and GZ values are positionally paired and must be equal in length.
func Evaluate(in Input) (Result, error) {
	if len(in.AnglesDeg) == 0 || len(in.GZM) == 0 {
		return Result{}, ErrEmptySequence
	}
	if len(in.AnglesDeg) != len(in.GZM) {
		return Result{}, fmt.Errorf("angle and GZ sequences differ in length: %d vs %d", len(in.AnglesDeg), len(in.GZM))
	}

	// Linear search; the first index attaining the maximum wins.
	maxGZ := in.GZM[0]
	maxIdx := 0
	for i, gz := range in.GZM {
		if gz > maxGZ {
			maxGZ = gz
			maxIdx = i
		}
	}
	angleAtMax := in.AnglesDeg[maxIdx]

	// The integration window is the first k samples where k counts every
	// angle <= 30 in the sequence. There is no interpolated cutoff at
	// exactly 30 degrees; the window simply ends at the last such sample.
	k := 0
	for _, a := range in.AnglesDeg {
		if a <= 30 {
			k++
		}
	}
	area := 0.0
	for i := 1; i < k; i++ {
		x0 := in.AnglesDeg[i-1] * math.Pi / 180
		x1 := in.AnglesDeg[i] * math.Pi / 180
		area += (x1 - x0) * (in.GZM[i-1] + in.GZM[i]) / 2
	}

	return Result{
		MaxGZM:          maxGZ,
		MaxGZOK:         maxGZ >= MinMaxGZM,
		AngleAtMaxGZDeg: angleAtMax,
		AngleAtMaxGZOK:  angleAtMax >= MinAngleAtMaxDeg,
		AreaTo30MRad:    area,
		AreaTo30OK:      area >= MinAreaTo30MRad,
		Notes:           "Simplified small-craft criteria: max GZ, its angle, area to 30 deg.",
	}, nil
}
