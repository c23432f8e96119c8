package groq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/infra/integration/groq"
)

func TestParseSummaryValidJSON(t *testing.T) {
	content := `{"summary":"Client wants a proposal by Friday","recommended_deal_stage":"Proposal","next_action":"Send proposal"}`

	summary := groq.ParseSummary(content, entity.StageContacted)

	assert.Equal(t, "Client wants a proposal by Friday", summary.Summary)
	assert.Equal(t, entity.StageProposal, summary.RecommendedDealStage)
	assert.Equal(t, "Send proposal", summary.NextAction)
}

// Modelo respondeu prosa em vez de JSON: texto cru vira o summary e o
// estágio atual é mantido.
func TestParseSummaryFallbackOnProse(t *testing.T) {
	content := "The call went well, the client seemed interested."

	summary := groq.ParseSummary(content, entity.StageQualified)

	assert.Equal(t, content, summary.Summary)
	assert.Equal(t, entity.StageQualified, summary.RecommendedDealStage)
	assert.Equal(t, "Review transcript manually", summary.NextAction)
}
