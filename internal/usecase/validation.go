package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/xavierca1/coldcall-backend/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateLogCallInput(input LogCallInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.ContactID) == "" {
		errors = append(errors, ValidationError{"contact_id", "is required"})
	}

	if input.DurationSeconds < 0 {
		errors = append(errors, ValidationError{"duration_seconds", "must not be negative"})
	}

	if strings.TrimSpace(input.Disposition) == "" {
		errors = append(errors, ValidationError{"disposition", "is required"})
	} else if !entity.IsValidDisposition(input.Disposition) {
		errors = append(errors, ValidationError{"disposition", "is invalid"})
	}

	if input.DealStage != "" && !entity.IsValidDealStage(input.DealStage) {
		errors = append(errors, ValidationError{"deal_stage", "is invalid"})
	}

	if input.NextFollowUp != "" && !isValidDate(input.NextFollowUp) {
		errors = append(errors, ValidationError{"next_follow_up", "must be YYYY-MM-DD"})
	}

	return errors
}

func isValidDate(s string) bool {
	_, err := time.Parse(entity.DateLayout, s)
	return err == nil
}

// validationFailed monta o DomainError no formato "campo (motivo), ..."
func validationFailed(errs []ValidationError) *DomainError {
	errMsg := "validation failed: "
	for _, e := range errs {
		errMsg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: errMsg,
	}
}
