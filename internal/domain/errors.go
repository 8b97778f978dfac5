package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies domain failures independently of any transport.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "NOT_FOUND"
	KindNotAvailable  ErrorKind = "NOT_AVAILABLE"
	KindInvalidInput  ErrorKind = "INVALID_INPUT"
	KindLackOfRights  ErrorKind = "LACK_OF_RIGHTS"
	KindDuplicateData ErrorKind = "DUPLICATE_DATA"
)

// DomainError is the error type returned by services for rule violations.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewNotFoundError reports a missing entity.
func NewNotFoundError(entity string, id int64) *DomainError {
	return &DomainError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s with id = %d not found", entity, id),
	}
}

// NewNotAvailableError reports a failed domain precondition.
func NewNotAvailableError(message string) *DomainError {
	return &DomainError{Kind: KindNotAvailable, Message: message}
}

// NewValidationError reports a malformed or out-of-range request.
func NewValidationError(message string) *DomainError {
	return &DomainError{Kind: KindInvalidInput, Message: message}
}

// NewLackOfRightsError reports an authenticated but unauthorized caller.
func NewLackOfRightsError(message string) *DomainError {
	return &DomainError{Kind: KindLackOfRights, Message: message}
}

// NewDuplicateError reports a uniqueness violation.
func NewDuplicateError(message string) *DomainError {
	return &DomainError{Kind: KindDuplicateData, Message: message}
}

// KindOf returns the kind of a domain error anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

func IsNotFound(err error) bool      { return hasKind(err, KindNotFound) }
func IsNotAvailable(err error) bool  { return hasKind(err, KindNotAvailable) }
func IsValidation(err error) bool    { return hasKind(err, KindInvalidInput) }
func IsLackOfRights(err error) bool  { return hasKind(err, KindLackOfRights) }
func IsDuplicateData(err error) bool { return hasKind(err, KindDuplicateData) }

func hasKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
