package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/usecase"
)

var today = time.Date(2026, 2, 23, 10, 0, 0, 0, time.UTC)

func TestNextFollowUpCallback(t *testing.T) {
	value, set := usecase.NextFollowUp(entity.DispositionCallback, "", today)

	assert.True(t, set)
	assert.Equal(t, "2026-02-24", value)
}

func TestNextFollowUpNoAnswer(t *testing.T) {
	value, set := usecase.NextFollowUp(entity.DispositionNoAnswer, "", today)

	assert.True(t, set)
	assert.Equal(t, "2026-02-26", value)
}

func TestNextFollowUpVoicemail(t *testing.T) {
	value, set := usecase.NextFollowUp(entity.DispositionVoicemail, "", today)

	assert.True(t, set)
	assert.Equal(t, "2026-03-02", value)
}

func TestNextFollowUpClearsOnNotInterested(t *testing.T) {
	value, set := usecase.NextFollowUp(entity.DispositionNotInterested, "", today)

	assert.True(t, set)
	assert.Empty(t, value)
}

func TestNextFollowUpClearsOnWrongNumber(t *testing.T) {
	value, set := usecase.NextFollowUp(entity.DispositionWrongNumber, "", today)

	assert.True(t, set)
	assert.Empty(t, value)
}

// Connected com data pedida pelo operador: grava a data exata, mesmo passada.
func TestNextFollowUpConnectedWithRequestedDate(t *testing.T) {
	value, set := usecase.NextFollowUp(entity.DispositionConnected, "2026-03-15", today)

	assert.True(t, set)
	assert.Equal(t, "2026-03-15", value)
}

func TestNextFollowUpConnectedWithoutRequestedDateLeavesField(t *testing.T) {
	_, set := usecase.NextFollowUp(entity.DispositionConnected, "", today)

	assert.False(t, set)
}

// Disposition desconhecido não mexe no campo (enum pode crescer um dia).
func TestNextFollowUpUnknownDispositionLeavesField(t *testing.T) {
	_, set := usecase.NextFollowUp("Ghosted", "2026-03-15", today)

	assert.False(t, set)
}
