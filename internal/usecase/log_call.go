package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/infra/queue"
)

type LogCallUseCase struct {
	Contacts ContactRepositoryInterface
	CallLogs CallLogRepositoryInterface
	Queue    QueueProducerInterface // pode ser nil (fila desligada em dev)
	Now      func() time.Time
}

func NewLogCallUseCase(
	contacts ContactRepositoryInterface,
	callLogs CallLogRepositoryInterface,
	producer QueueProducerInterface,
) *LogCallUseCase {
	return &LogCallUseCase{
		Contacts: contacts,
		CallLogs: callLogs,
		Queue:    producer,
		Now:      time.Now,
	}
}

// Execute registra a ligação e aplica os efeitos no contato:
// call_count+1, last_called=hoje, last_call_summary (se veio summary) e
// next_follow_up conforme a política de follow-up.
//
// Consistência: o log já foi appendado quando o update do contato roda.
// Se o update falhar não existe rollback do log (at-least-once, escritor único).
func (uc *LogCallUseCase) Execute(ctx context.Context, input LogCallInput) (*entity.CallLog, error) {
	if validationErrors := ValidateLogCallInput(input); len(validationErrors) > 0 {
		return nil, validationFailed(validationErrors)
	}

	contact, err := uc.Contacts.FindByID(ctx, input.ContactID)
	if err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return nil, &DomainError{
				Code:    CodeContactNotFound,
				Message: "Contact not found",
			}
		}
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to load contact: " + err.Error(),
		}
	}

	dealStage := input.DealStage
	if dealStage == "" {
		dealStage = contact.DealStage
	}

	callLog := &entity.CallLog{
		ContactID:       input.ContactID,
		ContactName:     contact.Name,
		DurationSeconds: input.DurationSeconds,
		Disposition:     input.Disposition,
		Summary:         input.Summary,
		RecordingURL:    input.RecordingURL,
		DealStage:       dealStage,
	}

	if err := uc.CallLogs.Append(ctx, callLog); err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to append call log: " + err.Error(),
		}
	}

	today := uc.Now()
	calledAt := today.Format(entity.DateLayout)
	callCount := contact.CallCount + 1

	update := entity.ContactUpdate{
		CallCount:  &callCount,
		LastCalled: &calledAt,
	}
	if input.Summary != "" {
		update.LastCallSummary = &input.Summary
	}
	if followUp, set := NextFollowUp(input.Disposition, input.NextFollowUp, today); set {
		update.NextFollowUp = &followUp
	}

	if _, err := uc.Contacts.Update(ctx, contact.ID, update); err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			// log já gravado fica como está
			return nil, &DomainError{
				Code:    CodeContactNotFound,
				Message: "Contact not found",
			}
		}
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to update contact: " + err.Error(),
		}
	}

	// Gravação com áudio vai para a fila de transcrição. Falha aqui não
	// derruba o request: a ligação já está registrada.
	if uc.Queue != nil && input.RecordingURL != "" {
		payload := queue.RecordingPayload{
			CallID:       callLog.ID,
			ContactID:    contact.ID,
			ContactName:  contact.Name,
			DealStage:    dealStage,
			RecordingURL: input.RecordingURL,
		}
		if err := uc.Queue.PublishRecording(ctx, payload); err != nil {
			log.Printf("⚠️ Ligação registrada, mas falha ao publicar gravação na fila: %v", err)
		}
	}

	return callLog, nil
}
