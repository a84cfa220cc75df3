// Package plot defines the data handed to rendering sinks. Calculators never
// draw anything themselves; callers collect computed curves into frames and
// pass them to whichever sink they want (PDF, spreadsheet, nothing).
package plot

type Series struct {
	Label string    `json:"label"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

type Frame struct {
	Title  string   `json:"title"`
	XLabel string   `json:"x_label"`
	YLabel string   `json:"y_label"`
	Series []Series `json:"series"`
}

type Sink interface {
	Render(f Frame) error
}
