package masscenter

import "fmt"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Input struct {
	Points []Point `json:"points"`
}

type Result struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	LCGM  float64 `json:"lcg_m"`
	VCGM  float64 `json:"vcg_m"`
	Count int     `json:"count"`
	Notes string  `json:"notes"`
}

// Calculate takes the triangle vertices of an already-parsed hull model and
// returns their arithmetic mean as the center of mass of a single-material
// hull. Vertices shared by several triangles weigh in once per occurrence.
func Calculate(in Input) (Result, error) {
	if len(in.Points) == 0 {
		return Result{}, fmt.Errorf("no points")
	}
	var sx, sy, sz float64
	for _, p := range in.Points {
		sx += p.X
		sy += p.Y
		sz += p.Z
	}
	n := float64(len(in.Points))
	x, y, z := sx/n, sy/n, sz/n
	return Result{
		X:     x,
		Y:     y,
		Z:     z,
		LCGM:  x,
		VCGM:  z,
		Count: len(in.Points),
		Notes: "Vertex-average center of mass for a uniform-density hull.",
	}, nil
}
