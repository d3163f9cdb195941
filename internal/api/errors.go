package api

import (
	"errors"
	"net/http"

	"poker-stack-go/internal/models"
)

const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodePlayerNotFound   = "PLAYER_NOT_FOUND"
	ErrCodeBalanceMismatch  = "BALANCE_MISMATCH"
	ErrCodeOperationFailed  = "OPERATION_FAILED"
)

const (
	ErrMsgValidationFailed = "invalid input"
	ErrMsgPlayerNotFound   = "player not found"
	ErrMsgBalanceMismatch  = "ledger totals do not reconcile"
	ErrMsgOperationFailed  = "operation failed"
)

var ErrBalanceMismatch = errors.New("balance mismatch")

var errorMessages = map[string]string{
	ErrCodeValidationFailed: ErrMsgValidationFailed,
	ErrCodePlayerNotFound:   ErrMsgPlayerNotFound,
	ErrCodeBalanceMismatch:  ErrMsgBalanceMismatch,
	ErrCodeOperationFailed:  ErrMsgOperationFailed,
}

// Error is a coded failure returned by LedgerService. The code decides how
// the transport layer reports it; Cause keeps the original chain.
type Error struct {
	Code  string
	Cause error
}

func NewError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// Message returns a caller-safe description. Validation errors expose their
// field detail; everything else uses the generic message for its code.
func (e Error) Message() string {
	var validationErr *models.ValidationError
	if e.Code == ErrCodeValidationFailed && errors.As(e.Cause, &validationErr) {
		return validationErr.Error()
	}
	return GetErrorMessage(e.Code)
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgOperationFailed
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodePlayerNotFound:
		return http.StatusNotFound
	case ErrCodeBalanceMismatch:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
