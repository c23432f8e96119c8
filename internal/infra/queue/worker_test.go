package queue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/infra/integration/groq"
)

type mockAIClient struct {
	mock.Mock
}

func (m *mockAIClient) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	args := m.Called(ctx, audio, filename)
	return args.String(0), args.Error(1)
}

func (m *mockAIClient) Summarize(ctx context.Context, input groq.SummarizeInput) (*entity.AISummary, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AISummary), args.Error(1)
}

type mockContactStore struct {
	mock.Mock
}

func (m *mockContactStore) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *mockContactStore) Update(ctx context.Context, id string, fields entity.ContactUpdate) (*entity.Contact, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func TestProcessMessageWritesSummaryToContact(t *testing.T) {
	audioServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake-audio-bytes"))
	}))
	defer audioServer.Close()

	ai := new(mockAIClient)
	contacts := new(mockContactStore)

	contact := &entity.Contact{
		ID:            "c1",
		Name:          "Acme Pizzaria",
		ContactPerson: "João",
		Industry:      "Food",
		DealStage:     entity.StageContacted,
	}

	ai.On("Transcribe", mock.Anything, []byte("fake-audio-bytes"), "rec.mp3").
		Return("Olá, aqui é da Acme...", nil)
	contacts.On("FindByID", mock.Anything, "c1").Return(contact, nil)

	var summarized groq.SummarizeInput
	ai.On("Summarize", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			summarized = args.Get(1).(groq.SummarizeInput)
		}).
		Return(&entity.AISummary{
			Summary:              "Cliente pediu proposta",
			RecommendedDealStage: entity.StageProposal,
			NextAction:           "Enviar proposta",
		}, nil)

	var captured entity.ContactUpdate
	contacts.On("Update", mock.Anything, "c1", mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(entity.ContactUpdate)
		}).
		Return(contact, nil)

	worker := NewWorker(nil, ai, contacts)
	recordingURL := audioServer.URL + "/rec.mp3"

	err := worker.processMessage(context.Background(), RecordingPayload{
		CallID:       "call-1",
		ContactID:    "c1",
		ContactName:  "Acme Pizzaria",
		DealStage:    entity.StageContacted,
		RecordingURL: recordingURL,
	})

	assert.NoError(t, err)

	// contact_person tem prioridade sobre o nome da empresa no prompt
	assert.Equal(t, "João", summarized.ContactName)
	assert.Equal(t, "Acme Pizzaria", summarized.Business)
	assert.Equal(t, "Olá, aqui é da Acme...", summarized.Transcript)

	assert.NotNil(t, captured.LastCallSummary)
	assert.Equal(t, "Cliente pediu proposta", *captured.LastCallSummary)
	assert.NotNil(t, captured.RecordingLink)
	assert.Equal(t, recordingURL, *captured.RecordingLink)
	assert.NotNil(t, captured.Notes)
	assert.Equal(t, "Next action: Enviar proposta", *captured.Notes)
}

func TestProcessMessageDownloadFailure(t *testing.T) {
	audioServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer audioServer.Close()

	ai := new(mockAIClient)
	contacts := new(mockContactStore)

	worker := NewWorker(nil, ai, contacts)

	err := worker.processMessage(context.Background(), RecordingPayload{
		CallID:       "call-1",
		ContactID:    "c1",
		RecordingURL: audioServer.URL + "/gone.mp3",
	})

	assert.Error(t, err)
	ai.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything)
	contacts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessMessageContactGone(t *testing.T) {
	audioServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("audio"))
	}))
	defer audioServer.Close()

	ai := new(mockAIClient)
	contacts := new(mockContactStore)

	ai.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).Return("texto", nil)
	contacts.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrContactNotFound)

	worker := NewWorker(nil, ai, contacts)

	err := worker.processMessage(context.Background(), RecordingPayload{
		CallID:       "call-1",
		ContactID:    "ghost",
		RecordingURL: audioServer.URL + "/rec.mp3",
	})

	assert.Error(t, err)
	ai.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
}
