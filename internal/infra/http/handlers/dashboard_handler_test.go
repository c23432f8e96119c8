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

func TestDashboardHandlerStats(t *testing.T) {
	mockContacts := new(MockContactRepository)
	mockCallLogs := new(MockCallLogRepository)

	mockCallLogs.On("FindByDate", mock.Anything, "2026-02-23").Return([]*entity.CallLog{
		{Disposition: entity.DispositionConnected},
		{Disposition: entity.DispositionNoAnswer},
	}, nil)
	mockCallLogs.On("FindByDate", mock.Anything, "2026-02-22").Return([]*entity.CallLog{}, nil)
	mockContacts.On("FindAll", mock.Anything).Return([]*entity.Contact{
		{ID: "c1", DealStage: entity.StageNew},
	}, nil)

	uc := usecase.NewDashboardUseCase(mockContacts, mockCallLogs)
	uc.Now = func() time.Time {
		return time.Date(2026, 2, 23, 15, 0, 0, 0, time.UTC)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	rr := httptest.NewRecorder()

	handlers.NewDashboardHandler(uc).Handle(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var stats entity.DashboardStats
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.CallsToday)
	assert.Equal(t, 1, stats.ConnectedToday)
	assert.Equal(t, 0.5, stats.ConversionRate)
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, map[string]int{entity.StageNew: 1}, stats.Pipeline)
}
