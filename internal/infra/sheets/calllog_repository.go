package sheets

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/coldcall-backend/internal/entity"
)

type CallLogRepository struct {
	Client *Client
}

func NewCallLogRepository(client *Client) *CallLogRepository {
	return &CallLogRepository{Client: client}
}

// Append grava o log e preenche ID e Timestamp. Append-only: não existe
// update nem delete de log de ligação.
func (r *CallLogRepository) Append(ctx context.Context, callLog *entity.CallLog) error {
	callLog.ID = uuid.New().String()
	callLog.Timestamp = time.Now().UTC().Format(time.RFC3339)

	return r.Client.appendRow(ctx, callLogsSheet, callLogToRow(callLog))
}

func (r *CallLogRepository) FindByContact(ctx context.Context, contactID string) ([]*entity.CallLog, error) {
	rows, err := r.Client.rows(ctx, callLogsSheet, len(callLogHeaders))
	if err != nil {
		return nil, err
	}

	logs := make([]*entity.CallLog, 0)
	for _, row := range rows {
		if row[1] == contactID {
			logs = append(logs, callLogFromRow(row))
		}
	}

	return logs, nil
}

// FindByDate: o "dia" de um log é o prefixo YYYY-MM-DD do timestamp RFC3339.
func (r *CallLogRepository) FindByDate(ctx context.Context, date string) ([]*entity.CallLog, error) {
	rows, err := r.Client.rows(ctx, callLogsSheet, len(callLogHeaders))
	if err != nil {
		return nil, err
	}

	logs := make([]*entity.CallLog, 0)
	for _, row := range rows {
		if strings.HasPrefix(row[3], date) {
			logs = append(logs, callLogFromRow(row))
		}
	}

	return logs, nil
}

func callLogFromRow(row []string) *entity.CallLog {
	duration, _ := strconv.Atoi(row[4])

	return &entity.CallLog{
		ID:              row[0],
		ContactID:       row[1],
		ContactName:     row[2],
		Timestamp:       row[3],
		DurationSeconds: duration,
		Disposition:     row[5],
		Summary:         row[6],
		RecordingURL:    row[7],
		DealStage:       row[8],
		DealStageAfter:  row[9],
	}
}

func callLogToRow(l *entity.CallLog) []interface{} {
	return []interface{}{
		l.ID,
		l.ContactID,
		l.ContactName,
		l.Timestamp,
		strconv.Itoa(l.DurationSeconds),
		l.Disposition,
		l.Summary,
		l.RecordingURL,
		l.DealStage,
		l.DealStageAfter,
	}
}
