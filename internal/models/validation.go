package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors for entity validation
var (
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNameRequired           = errors.New("name is required")
	ErrInvalidPlayerId        = errors.New("player id must be positive")
)

// Amount bounds. Exponent forms such as 1e2000000 parse cheaply but expand
// to millions of digits once stored and rendered.
const (
	MaxAmountIntegerDigits = 12
	MaxAmountScale         = 8
)

// ValidationError reports a rejected field on an entity being created
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate trims the name and normalises a blank telegram username to nil
func (p *PlayerCreate) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return &ValidationError{Field: "name", Err: ErrNameRequired}
	}
	p.TelegramUsername = NormalizeOptional(p.TelegramUsername)
	return nil
}

func (t *TransactionCreate) Validate() error {
	if t.PlayerId <= 0 {
		return &ValidationError{Field: "player_id", Err: ErrInvalidPlayerId}
	}
	if err := validateAmount(t.Amount); err != nil {
		return &ValidationError{Field: "amount", Err: err}
	}
	if !t.Type.Valid() {
		return &ValidationError{
			Field: "type",
			Err:   fmt.Errorf("%w: %q", ErrInvalidTransactionType, string(t.Type)),
		}
	}
	t.Note = NormalizeOptional(t.Note)
	return nil
}

// validateAmount only inspects the coefficient and exponent so that it never
// expands an out-of-range value.
func validateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w, got %s", ErrInvalidAmount, amount.String())
	}
	exp := amount.Exponent()
	if int64(amount.NumDigits())+int64(exp) > MaxAmountIntegerDigits {
		return fmt.Errorf("%w: more than %d integer digits", ErrInvalidAmount, MaxAmountIntegerDigits)
	}
	if exp < -(MaxAmountIntegerDigits + MaxAmountScale) {
		return fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, MaxAmountScale)
	}
	if exp < -MaxAmountScale && !amount.Equal(amount.Truncate(MaxAmountScale)) {
		return fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, MaxAmountScale)
	}
	return nil
}

// NormalizeOptional maps nil or whitespace-only strings to nil
func NormalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
