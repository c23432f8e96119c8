package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/infra/http/middleware"
	"github.com/xavierca1/coldcall-backend/internal/usecase"
)

type CallHandler struct {
	LogCallUC *usecase.LogCallUseCase
	Contacts  usecase.ContactRepositoryInterface
	CallLogs  usecase.CallLogRepositoryInterface
}

func NewCallHandler(uc *usecase.LogCallUseCase, contacts usecase.ContactRepositoryInterface, callLogs usecase.CallLogRepositoryInterface) *CallHandler {
	return &CallHandler{LogCallUC: uc, Contacts: contacts, CallLogs: callLogs}
}

// Handle (POST /api/calls/log)
// Registra a ligação e aplica os efeitos no contato. 404 se o contato não
// existe, 400 se o input não passa na validação.
func (h *CallHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.LogCallInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	callLog, err := h.LogCallUC.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			switch domainErr.Code {
			case usecase.CodeContactNotFound:
				writeDetail(w, http.StatusNotFound, "Contact not found")
			default:
				writeDetail(w, http.StatusBadRequest, domainErr.Message)
			}
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.RecordCallLogged(input.Disposition)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(callLog)
}

// History (GET /api/contacts/{id}/calls)
// Histórico de ligações do contato, na ordem do log (append-only).
func (h *CallHandler) History(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")

	if _, err := h.Contacts.FindByID(r.Context(), contactID); err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			writeDetail(w, http.StatusNotFound, "Contact not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	logs, err := h.CallLogs.FindByContact(r.Context(), contactID)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(logs)
}

// writeDetail: corpo de erro no formato {"detail": "..."} que o app espera.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
