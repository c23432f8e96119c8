package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/coldcall-backend/internal/entity"
)

func TestCallLogFromRow(t *testing.T) {
	row := []string{
		"log1", "c1", "Acme", "2026-02-23T14:30:00Z", "185",
		"Connected", "Pediu proposta", "https://cdn/rec.mp3", "Contacted", "Qualified",
	}

	l := callLogFromRow(row)

	assert.Equal(t, "log1", l.ID)
	assert.Equal(t, "c1", l.ContactID)
	assert.Equal(t, "Acme", l.ContactName)
	assert.Equal(t, "2026-02-23T14:30:00Z", l.Timestamp)
	assert.Equal(t, 185, l.DurationSeconds)
	assert.Equal(t, entity.DispositionConnected, l.Disposition)
	assert.Equal(t, "Pediu proposta", l.Summary)
	assert.Equal(t, "https://cdn/rec.mp3", l.RecordingURL)
	assert.Equal(t, entity.StageContacted, l.DealStage)
	assert.Equal(t, entity.StageQualified, l.DealStageAfter)
}

// Duração vazia ou corrompida vira 0.
func TestCallLogFromRowDurationDefaultsToZero(t *testing.T) {
	row := make([]string, len(callLogHeaders))
	row[0] = "log1"
	row[4] = ""

	assert.Equal(t, 0, callLogFromRow(row).DurationSeconds)

	row[4] = "??"
	assert.Equal(t, 0, callLogFromRow(row).DurationSeconds)
}

func TestCallLogRowRoundTrip(t *testing.T) {
	callLog := &entity.CallLog{
		ID:              "log1",
		ContactID:       "c1",
		ContactName:     "Acme",
		Timestamp:       "2026-02-23T14:30:00Z",
		DurationSeconds: 42,
		Disposition:     entity.DispositionVoicemail,
		Summary:         "Deixei recado",
		RecordingURL:    "https://cdn/rec.mp3",
		DealStage:       entity.StageContacted,
		DealStageAfter:  entity.StageContacted,
	}

	row := callLogToRow(callLog)
	assert.Len(t, row, len(callLogHeaders))

	asStrings := make([]string, len(row))
	for i, v := range row {
		asStrings[i] = v.(string)
	}

	assert.Equal(t, callLog, callLogFromRow(asStrings))
}
