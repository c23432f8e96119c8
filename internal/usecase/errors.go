package usecase

import "errors"

// Códigos usados pelos handlers para mapear status HTTP.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeContactNotFound = "CONTACT_NOT_FOUND"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// IsNotFound: true quando o erro é o DomainError de contato inexistente.
func IsNotFound(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == CodeContactNotFound
	}
	return false
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}
