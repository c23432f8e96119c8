package usecase

import (
	"time"

	"github.com/xavierca1/coldcall-backend/internal/entity"
)

// NextFollowUp decide o que escrever em next_follow_up depois de uma ligação.
//
// Retorna (valor, true) para gravar o valor ("" limpa o campo) ou ("", false)
// para deixar o campo como está. A ordem das regras importa: a primeira que
// casar vence, e só Connected olha a data pedida pelo operador.
func NextFollowUp(disposition, requested string, today time.Time) (string, bool) {
	switch disposition {
	case entity.DispositionCallback:
		return today.AddDate(0, 0, 1).Format(entity.DateLayout), true
	case entity.DispositionNoAnswer:
		return today.AddDate(0, 0, 3).Format(entity.DateLayout), true
	case entity.DispositionVoicemail:
		return today.AddDate(0, 0, 7).Format(entity.DateLayout), true
	case entity.DispositionNotInterested, entity.DispositionWrongNumber:
		return "", true // limpa o follow-up agendado
	case entity.DispositionConnected:
		if requested != "" {
			// data exata escolhida pelo operador, sem validar se é futura
			return requested, true
		}
		return "", false
	default:
		// enum fechado hoje; se um disposition novo aparecer, não mexe no campo
		return "", false
	}
}
