package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/usecase"
)

type ContactHandler struct {
	Repo usecase.ContactRepositoryInterface
}

func NewContactHandler(repo usecase.ContactRepositoryInterface) *ContactHandler {
	return &ContactHandler{Repo: repo}
}

type createContactRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	ContactPerson string `json:"contact_person,omitempty"`
	City          string `json:"city,omitempty"`
	Industry      string `json:"industry,omitempty"`
	Source        string `json:"source,omitempty"`
	DealStage     string `json:"deal_stage,omitempty"`
	Notes         string `json:"notes,omitempty"`
	NextFollowUp  string `json:"next_follow_up,omitempty"`
}

// List (GET /api/contacts?deal_stage=&city=&industry=)
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Repo.FindAll(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	dealStage := r.URL.Query().Get("deal_stage")
	city := r.URL.Query().Get("city")
	industry := r.URL.Query().Get("industry")

	filtered := make([]*entity.Contact, 0, len(contacts))
	for _, c := range contacts {
		if dealStage != "" && c.DealStage != dealStage {
			continue
		}
		if city != "" && c.City != city {
			continue
		}
		if industry != "" && c.Industry != industry {
			continue
		}
		filtered = append(filtered, c)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(filtered)
}

// Get (GET /api/contacts/{id})
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")

	contact, err := h.Repo.FindByID(r.Context(), contactID)
	if err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			writeDetail(w, http.StatusNotFound, "Contact not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contact)
}

// Create (POST /api/contacts)
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	contact, err := entity.NewContact(req.Name, req.Phone)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	contact.ContactPerson = req.ContactPerson
	contact.City = req.City
	contact.Industry = req.Industry
	contact.Source = req.Source
	contact.Notes = req.Notes
	contact.NextFollowUp = req.NextFollowUp
	if req.DealStage != "" {
		contact.DealStage = req.DealStage
	}

	// revalida com os campos opcionais preenchidos (deal_stage, data)
	if err := contact.Validate(); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.Create(r.Context(), contact); err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(contact)
}

// Update (PUT /api/contacts/{id})
// Atualização parcial: campo ausente no JSON não é tocado.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")

	var fields entity.ContactUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if fields.DealStage != nil && !entity.IsValidDealStage(*fields.DealStage) {
		writeDetail(w, http.StatusBadRequest, "invalid deal_stage")
		return
	}

	contact, err := h.Repo.Update(r.Context(), contactID, fields)
	if err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			writeDetail(w, http.StatusNotFound, "Contact not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contact)
}

// Delete (DELETE /api/contacts/{id})
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "id")

	if err := h.Repo.Delete(r.Context(), contactID); err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			writeDetail(w, http.StatusNotFound, "Contact not found")
			return
		}
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
