package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func amount(v float64) *float64 { return &v }

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name  string
		input CreateInput
		err   string
	}{
		{
			"Valid",
			CreateInput{Title: "Salary", Amount: amount(5000), Direction: "credit"},
			"",
		},
		{
			"ValidDebit",
			CreateInput{Title: "Rent", Amount: amount(1200), Direction: "debit"},
			"",
		},
		{
			"MissingTitle",
			CreateInput{Amount: amount(10), Direction: "credit"},
			"title: is required",
		},
		{
			"BlankTitle",
			CreateInput{Title: "   ", Amount: amount(10), Direction: "credit"},
			"title: is required",
		},
		{
			"MissingAmount",
			CreateInput{Title: "Salary", Direction: "credit"},
			"amount: is required",
		},
		{
			"MissingDirection",
			CreateInput{Title: "Salary", Amount: amount(10)},
			"direction: must be credit or debit",
		},
		{
			"UnknownDirection",
			CreateInput{Title: "Salary", Amount: amount(10), Direction: "transfer"},
			"direction: must be credit or debit",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(st *testing.T) {
			params, err := ValidateCreate(test.input)

			if test.err == "" {
				assert.NoError(st, err)
				assert.Equal(st, test.input.Title, params.Title)
				assert.Equal(st, *test.input.Amount, params.Amount)
				assert.Equal(st, Direction(test.input.Direction), params.Direction)
				return
			}
			assert.EqualError(st, err, test.err)
		})
	}
}

func TestValidateCreateZeroAmountAccepted(t *testing.T) {
	// an explicit zero is a present amount, only a missing field fails
	params, err := ValidateCreate(CreateInput{Title: "Nothing", Amount: amount(0), Direction: "debit"})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, params.Amount)
}
