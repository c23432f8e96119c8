package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/coldcall-backend/internal/entity"
)

// streakScanLimit trava a caminhada do streak. Sem isso, um log corrompido
// com timestamps antigos viraria uma leitura por dia até o fim dos tempos.
const streakScanLimit = 3650

type DashboardUseCase struct {
	Contacts ContactRepositoryInterface
	CallLogs CallLogRepositoryInterface
	Now      func() time.Time
}

func NewDashboardUseCase(
	contacts ContactRepositoryInterface,
	callLogs CallLogRepositoryInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		Contacts: contacts,
		CallLogs: callLogs,
		Now:      time.Now,
	}
}

// Execute calcula o snapshot do dia: volume e conversão de hoje, streak de
// dias consecutivos com ligação e distribuição do funil.
func (uc *DashboardUseCase) Execute(ctx context.Context) (*entity.DashboardStats, error) {
	today := uc.Now()

	todaysLogs, err := uc.CallLogs.FindByDate(ctx, today.Format(entity.DateLayout))
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to load call logs: " + err.Error(),
		}
	}

	callsToday := len(todaysLogs)
	connectedToday := 0
	for _, callLog := range todaysLogs {
		if callLog.Disposition == entity.DispositionConnected {
			connectedToday++
		}
	}

	// divisão por zero é resultado definido (0.0), não erro
	conversionRate := 0.0
	if callsToday > 0 {
		conversionRate = float64(connectedToday) / float64(callsToday)
	}

	// Streak: anda para trás a partir de hoje até o primeiro dia sem ligação.
	// Hoje sem ligação = streak 0. O primeiro passo relê os logs de hoje de
	// propósito: manter a caminhada uniforme vale mais que economizar uma
	// leitura, não "otimize" juntando com a consulta lá de cima.
	streak := 0
	day := today
	for i := 0; i < streakScanLimit; i++ {
		logs, err := uc.CallLogs.FindByDate(ctx, day.Format(entity.DateLayout))
		if err != nil {
			return nil, &TechnicalError{
				Code:    "STORE_ERROR",
				Message: "failed to load call logs: " + err.Error(),
			}
		}
		if len(logs) == 0 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	contacts, err := uc.Contacts.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to load contacts: " + err.Error(),
		}
	}

	// estágio sem contato fica fora do mapa (sem chave com valor 0)
	pipeline := make(map[string]int)
	for _, c := range contacts {
		if c.DealStage != "" {
			pipeline[c.DealStage]++
		}
	}

	return &entity.DashboardStats{
		CallsToday:     callsToday,
		ConnectedToday: connectedToday,
		ConversionRate: conversionRate,
		Streak:         streak,
		Pipeline:       pipeline,
	}, nil
}
