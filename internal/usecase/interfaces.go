package usecase

import (
	"context"

	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/infra/queue"
)

type ContactRepositoryInterface interface {
	FindAll(ctx context.Context) ([]*entity.Contact, error)
	FindByID(ctx context.Context, id string) (*entity.Contact, error)
	Create(ctx context.Context, c *entity.Contact) error
	Update(ctx context.Context, id string, fields entity.ContactUpdate) (*entity.Contact, error)
	Delete(ctx context.Context, id string) error
}

type CallLogRepositoryInterface interface {
	// Append preenche ID e Timestamp no log recebido.
	Append(ctx context.Context, log *entity.CallLog) error
	FindByContact(ctx context.Context, contactID string) ([]*entity.CallLog, error)
	FindByDate(ctx context.Context, date string) ([]*entity.CallLog, error)
}

type QueueProducerInterface interface {
	PublishRecording(ctx context.Context, payload queue.RecordingPayload) error
}

type LogCallInput struct {
	ContactID       string `json:"contact_id"`
	DurationSeconds int    `json:"duration_seconds"`
	Disposition     string `json:"disposition"`
	Summary         string `json:"summary,omitempty"`
	DealStage       string `json:"deal_stage,omitempty"`
	RecordingURL    string `json:"recording_url,omitempty"`
	Transcript      string `json:"transcript,omitempty"`
	NextFollowUp    string `json:"next_follow_up,omitempty"` // só relevante com Connected
}
