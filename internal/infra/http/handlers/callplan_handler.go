package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/coldcall-backend/internal/usecase"
)

type CallPlanHandler struct {
	CallPlanUC *usecase.CallPlanUseCase
}

func NewCallPlanHandler(uc *usecase.CallPlanUseCase) *CallPlanHandler {
	return &CallPlanHandler{CallPlanUC: uc}
}

// Handle (GET /api/callplan/today)
// Leitura pura: follow-ups vencidos primeiro, depois contatos novos.
func (h *CallPlanHandler) Handle(w http.ResponseWriter, r *http.Request) {
	plan, err := h.CallPlanUC.Execute(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}
