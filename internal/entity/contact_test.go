package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/coldcall-backend/internal/entity"
)

func TestNewContact(t *testing.T) {
	contact, err := entity.NewContact("Acme Pizzaria", "11999990000")

	assert.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "Acme Pizzaria", contact.Name)
	assert.Equal(t, entity.StageNew, contact.DealStage)
	assert.Equal(t, 0, contact.CallCount)
}

func TestNewContactRequiresName(t *testing.T) {
	_, err := entity.NewContact("", "11999990000")

	assert.EqualError(t, err, "name is required")
}

func TestNewContactRequiresPhone(t *testing.T) {
	_, err := entity.NewContact("Acme", "")

	assert.EqualError(t, err, "phone is required")
}

func TestValidateRejectsUnknownDealStage(t *testing.T) {
	contact := &entity.Contact{Name: "Acme", Phone: "1", DealStage: "Maybe"}

	assert.EqualError(t, contact.Validate(), "invalid deal_stage")
}

func TestValidateRejectsBadFollowUpDate(t *testing.T) {
	contact := &entity.Contact{Name: "Acme", Phone: "1", DealStage: entity.StageNew, NextFollowUp: "23/02/2026"}

	assert.Error(t, contact.Validate())
}

func TestTerminalStages(t *testing.T) {
	assert.True(t, entity.TerminalStages[entity.StageWon])
	assert.True(t, entity.TerminalStages[entity.StageLost])
	assert.True(t, entity.TerminalStages[entity.StageNotInterested])
	assert.False(t, entity.TerminalStages[entity.StageNegotiation])
}
