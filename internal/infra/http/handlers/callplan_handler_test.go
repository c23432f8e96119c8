package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/infra/http/handlers"
	"github.com/xavierca1/coldcall-backend/internal/usecase"
)

func newCallPlanHandler(contacts []*entity.Contact) *handlers.CallPlanHandler {
	mockRepo := new(MockContactRepository)
	mockRepo.On("FindAll", mock.Anything).Return(contacts, nil)

	uc := usecase.NewCallPlanUseCase(mockRepo)
	uc.Now = func() time.Time {
		return time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)
	}
	return handlers.NewCallPlanHandler(uc)
}

func TestCallPlanHandlerOrdering(t *testing.T) {
	contacts := []*entity.Contact{
		{ID: "new1", Name: "Lead A", Phone: "1", DealStage: entity.StageNew, CallCount: 0},
		{ID: "due1", Name: "Overdue A", Phone: "2", DealStage: entity.StageContacted, NextFollowUp: "2026-02-20"},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/callplan/today", nil)
	rr := httptest.NewRecorder()

	newCallPlanHandler(contacts).Handle(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var plan []entity.CallPlanItem
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
	assert.Len(t, plan, 2)
	assert.Equal(t, "due1", plan[0].ID)
	assert.Equal(t, "new1", plan[1].ID)
}

// Plano vazio responde [] e não null.
func TestCallPlanHandlerEmptyPlan(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/callplan/today", nil)
	rr := httptest.NewRecorder()

	newCallPlanHandler([]*entity.Contact{}).Handle(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}
