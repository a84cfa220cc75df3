package scenario

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	auth "Nautica/internal/auth"
	hull "Nautica/internal/calc/hull"
	repo "Nautica/internal/repo"

	"github.com/gorilla/mux"
)

// Handler persists named hull parameter sets per user so sweeps can be
// re-run later without re-entering dimensions.
type Handler struct {
	Repo repo.Repository
}

type Scenario struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Hull      hull.Input `json:"hull"`
	CreatedAt time.Time  `json:"created_at"`
}

type saveRequest struct {
	Name string     `json:"name"`
	Hull hull.Input `json:"hull"`
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name required", http.StatusBadRequest)
		return
	}
	// Reject geometry the calculators would refuse later.
	if _, err := hull.Calculate(req.Hull); err != nil {
		http.Error(w, "Invalid hull", http.StatusBadRequest)
		return
	}
	payload, err := json.Marshal(req.Hull)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	id, err := h.Repo.SaveScenario(r.Context(), userID, req.Name, payload)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	rows, err := h.Repo.ListScenarios(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	out := make([]Scenario, 0, len(rows))
	for _, row := range rows {
		s, err := fromRow(row)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	row, err := h.Repo.GetScenario(r.Context(), userID, id)
	if err == sql.ErrNoRows {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	s, err := fromRow(row)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

func fromRow(row repo.ScenarioRow) (Scenario, error) {
	var in hull.Input
	if err := json.Unmarshal(row.Hull, &in); err != nil {
		return Scenario{}, err
	}
	return Scenario{ID: row.ID, Name: row.Name, Hull: in, CreatedAt: row.CreatedAt}, nil
}
