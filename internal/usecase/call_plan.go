package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/coldcall-backend/internal/entity"
)

// Motivos de inclusão no plano do dia.
const (
	ReasonFollowUpDue = "Follow-up due"
	ReasonNewContact  = "New contact"
)

type CallPlanUseCase struct {
	Contacts ContactRepositoryInterface
	Now      func() time.Time
}

func NewCallPlanUseCase(contacts ContactRepositoryInterface) *CallPlanUseCase {
	return &CallPlanUseCase{
		Contacts: contacts,
		Now:      time.Now,
	}
}

// Execute monta o plano de ligações do dia.
//
// Dois baldes, nessa ordem de prioridade: follow-ups vencidos (data <= hoje)
// na frente, contatos New nunca ligados depois. Estágios terminais ficam de
// fora sempre, e quem não casa com nenhum balde não aparece. A ordem dentro
// de cada balde segue a ordem da planilha.
func (uc *CallPlanUseCase) Execute(ctx context.Context) ([]entity.CallPlanItem, error) {
	contacts, err := uc.Contacts.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to load contacts: " + err.Error(),
		}
	}

	today := uc.Now().Format(entity.DateLayout)

	followUps := make([]entity.CallPlanItem, 0)
	newContacts := make([]entity.CallPlanItem, 0)

	for _, c := range contacts {
		if entity.TerminalStages[c.DealStage] {
			continue
		}

		switch {
		case c.NextFollowUp != "" && c.NextFollowUp <= today:
			followUps = append(followUps, toPlanItem(c, ReasonFollowUpDue))
		case c.DealStage == entity.StageNew && c.CallCount == 0:
			newContacts = append(newContacts, toPlanItem(c, ReasonNewContact))
		}
	}

	return append(followUps, newContacts...), nil
}

func toPlanItem(c *entity.Contact, reason string) entity.CallPlanItem {
	return entity.CallPlanItem{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		ContactPerson:   c.ContactPerson,
		DealStage:       c.DealStage,
		NextFollowUp:    c.NextFollowUp,
		CallCount:       c.CallCount,
		LastCallSummary: c.LastCallSummary,
		Reason:          reason,
	}
}
