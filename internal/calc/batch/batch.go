package batch

import (
	"fmt"

	resistance "Nautica/internal/calc/resistance"
)

type ResistanceBatchInput struct {
	Items []resistance.Input `json:"items"`
}

type ResistanceBatchResult struct {
	Results []resistance.Result `json:"results"`
}

func CalculateResistance(in ResistanceBatchInput) (ResistanceBatchResult, error) {
	if len(in.Items) == 0 {
		return ResistanceBatchResult{}, fmt.Errorf("no items")
	}
	out := ResistanceBatchResult{Results: make([]resistance.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := resistance.Calculate(item)
		if err != nil {
			return ResistanceBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
