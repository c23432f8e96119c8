package groq

import (
	"encoding/json"

	"github.com/xavierca1/coldcall-backend/internal/entity"
)

// ParseSummary converte a resposta do modelo em AISummary.
//
// O modelo às vezes ignora o "ONLY valid JSON" e manda prosa. Nesse caso o
// texto cru vira o summary, o estágio atual é ecoado de volta e ninguém
// recebe erro.
func ParseSummary(content, currentStage string) *entity.AISummary {
	var summary entity.AISummary
	if err := json.Unmarshal([]byte(content), &summary); err == nil {
		return &summary
	}

	return &entity.AISummary{
		Summary:              content,
		RecommendedDealStage: currentStage,
		NextAction:           "Review transcript manually",
	}
}
