package export

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Xlsx(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	f, err := Build(input)
	if err != nil {
		http.Error(w, "Export error", http.StatusBadRequest)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"curves.xlsx\"")
	if _, err := f.WriteTo(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
