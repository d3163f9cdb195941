package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		input   string
		want    TransactionType
		wantErr bool
	}{
		{"buy_in", TransactionTypeBuyIn, false},
		{"win", TransactionTypeWin, false},
		{"loss", TransactionTypeLoss, false},
		{"BUY_IN", "", true},
		{" loss ", "", true},
		{"not_a_real_type", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTransactionType(tt.input)
		if tt.wantErr {
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr, "input %q", tt.input)
			assert.Equal(t, "type", validationErr.Field)
			assert.ErrorIs(t, err, ErrInvalidTransactionType)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestTransactionCreate_Validate(t *testing.T) {
	valid := func() TransactionCreate {
		return TransactionCreate{
			PlayerId: 1,
			Type:     TransactionTypeBuyIn,
			Amount:   decimal.NewFromInt(100),
		}
	}

	t.Run("accepts positive amount", func(t *testing.T) {
		tc := valid()
		assert.NoError(t, tc.Validate())
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		tc := valid()
		tc.Amount = decimal.Zero
		assert.ErrorIs(t, tc.Validate(), ErrInvalidAmount)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		tc := valid()
		tc.Amount = decimal.NewFromInt(-10)
		err := tc.Validate()
		assert.ErrorIs(t, err, ErrInvalidAmount)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "amount", validationErr.Field)
	})

	t.Run("rejects out-of-range amounts", func(t *testing.T) {
		for _, raw := range []string{"1e2000000", "1e-2000000", "1000000000000", "0.000000001"} {
			tc := valid()
			tc.Amount = decimal.RequireFromString(raw)
			assert.ErrorIs(t, tc.Validate(), ErrInvalidAmount, "amount %s", raw)
		}
	})

	t.Run("accepts amounts at the bounds", func(t *testing.T) {
		for _, raw := range []string{"999999999999.99999999", "0.00000001", "12.50000000000000000000"} {
			tc := valid()
			tc.Amount = decimal.RequireFromString(raw)
			assert.NoError(t, tc.Validate(), "amount %s", raw)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		tc := valid()
		tc.Type = TransactionType("not_a_real_type")
		assert.ErrorIs(t, tc.Validate(), ErrInvalidTransactionType)
	})

	t.Run("rejects missing player", func(t *testing.T) {
		tc := valid()
		tc.PlayerId = 0
		assert.ErrorIs(t, tc.Validate(), ErrInvalidPlayerId)
	})

	t.Run("blank note becomes nil", func(t *testing.T) {
		tc := valid()
		blank := "   "
		tc.Note = &blank
		require.NoError(t, tc.Validate())
		assert.Nil(t, tc.Note)
	})
}

func TestPlayerCreate_Validate(t *testing.T) {
	blank := ""
	p := PlayerCreate{Name: "  Alice  ", TelegramUsername: &blank}
	require.NoError(t, p.Validate())
	assert.Equal(t, "Alice", p.Name)
	assert.Nil(t, p.TelegramUsername)

	missing := PlayerCreate{Name: "   "}
	assert.ErrorIs(t, missing.Validate(), ErrNameRequired)
}

func TestTransactionType_Label(t *testing.T) {
	assert.Equal(t, "Buy-in", TransactionTypeBuyIn.Label())
	assert.Equal(t, "mystery", TransactionType("mystery").Label())
	assert.False(t, TransactionType("mystery").Valid())
}
