package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

// Estágios do funil. Os valores são gravados literalmente na planilha.
const (
	StageNew           = "New"
	StageContacted     = "Contacted"
	StageQualified     = "Qualified"
	StageProposal      = "Proposal"
	StageNegotiation   = "Negotiation"
	StageWon           = "Won"
	StageLost          = "Lost"
	StageNotInterested = "NotInterested"
)

// TerminalStages: contatos nesses estágios nunca entram no plano de ligações.
var TerminalStages = map[string]bool{
	StageWon:           true,
	StageLost:          true,
	StageNotInterested: true,
}

var dealStages = map[string]bool{
	StageNew:           true,
	StageContacted:     true,
	StageQualified:     true,
	StageProposal:      true,
	StageNegotiation:   true,
	StageWon:           true,
	StageLost:          true,
	StageNotInterested: true,
}

func IsValidDealStage(stage string) bool {
	return dealStages[stage]
}

var ErrContactNotFound = errors.New("contact not found")

// DateLayout: datas circulam como string YYYY-MM-DD, igual à planilha.
// Comparação lexicográfica == comparação cronológica nesse formato.
const DateLayout = "2006-01-02"

// Entidade: Contact
// Espelha a linha da aba "Contacts" (string vazia = célula vazia).
type Contact struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone"`
	City          string `json:"city,omitempty"`
	Industry      string `json:"industry,omitempty"`
	Source        string `json:"source,omitempty"`
	DealStage     string `json:"deal_stage"`

	LastCalled      string `json:"last_called,omitempty"`    // YYYY-MM-DD
	NextFollowUp    string `json:"next_follow_up,omitempty"` // YYYY-MM-DD, vazio = sem follow-up
	CallCount       int    `json:"call_count"`
	LastCallSummary string `json:"last_call_summary,omitempty"`
	RecordingLink   string `json:"recording_link,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// ContactUpdate: atualização parcial. Ponteiro nil = não mexe no campo.
// NextFollowUp apontando para "" limpa o follow-up agendado.
type ContactUpdate struct {
	Name            *string `json:"name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	ContactPerson   *string `json:"contact_person,omitempty"`
	City            *string `json:"city,omitempty"`
	Industry        *string `json:"industry,omitempty"`
	Source          *string `json:"source,omitempty"`
	DealStage       *string `json:"deal_stage,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	LastCalled      *string `json:"last_called,omitempty"`
	NextFollowUp    *string `json:"next_follow_up,omitempty"`
	CallCount       *int    `json:"call_count,omitempty"`
	LastCallSummary *string `json:"last_call_summary,omitempty"`
	RecordingLink   *string `json:"recording_link,omitempty"`
}

// Factory
func NewContact(name, phone string) (*Contact, error) {
	contact := &Contact{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		DealStage: StageNew,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

func (c *Contact) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Phone == "" {
		return errors.New("phone is required")
	}
	if c.DealStage != "" && !IsValidDealStage(c.DealStage) {
		return errors.New("invalid deal_stage")
	}
	if c.NextFollowUp != "" {
		if _, err := time.Parse(DateLayout, c.NextFollowUp); err != nil {
			return errors.New("next_follow_up must be YYYY-MM-DD")
		}
	}
	return nil
}
