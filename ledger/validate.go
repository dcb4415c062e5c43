package ledger

import (
	"fmt"
	"strings"
)

type Direction string

const (
	Credit Direction = "credit"
	Debit  Direction = "debit"
)

// ValidationError marks input the caller got wrong. It is always raised
// before any store access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// CreateInput is the raw decoded create body. Amount is a pointer so a
// missing field and an explicit zero are distinguishable.
type CreateInput struct {
	Title     string   `json:"title"`
	Amount    *float64 `json:"amount"`
	Direction string   `json:"direction"`
}

// CreateParams is a create body that passed validation. The amount still
// carries the caller's sign; the service derives the stored sign from the
// direction.
type CreateParams struct {
	Title     string
	Amount    float64
	Direction Direction
}

// ValidateCreate checks the create input field by field and returns the
// typed params the service works with. It runs before any session or
// store work.
func ValidateCreate(input CreateInput) (CreateParams, error) {
	if strings.TrimSpace(input.Title) == "" {
		return CreateParams{}, &ValidationError{Field: "title", Reason: "is required"}
	}
	if input.Amount == nil {
		return CreateParams{}, &ValidationError{Field: "amount", Reason: "is required"}
	}
	switch Direction(input.Direction) {
	case Credit, Debit:
	default:
		return CreateParams{}, &ValidationError{Field: "direction", Reason: "must be credit or debit"}
	}
	return CreateParams{
		Title:     input.Title,
		Amount:    *input.Amount,
		Direction: Direction(input.Direction),
	}, nil
}
