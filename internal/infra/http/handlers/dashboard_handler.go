package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/coldcall-backend/internal/usecase"
)

type DashboardHandler struct {
	DashboardUC *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{DashboardUC: uc}
}

// Handle (GET /api/dashboard/stats)
func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.DashboardUC.Execute(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
