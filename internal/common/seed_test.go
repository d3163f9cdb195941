package common

import (
	"os"
	"path/filepath"
	"testing"

	"poker-stack-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `
players:
  - name: Alice Johnson
    telegram_username: alice_j
    transactions:
      - type: buy_in
        amount: "100"
      - type: win
        amount: "250.50"
        note: final table
  - name: Bob Smith
`

func TestLoadSeedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o600))

	config, err := LoadSeedConfig(path)
	require.NoError(t, err)
	require.Len(t, config.Players, 2)

	alice := config.Players[0]
	assert.Equal(t, "alice_j", *alice.ToCreate().TelegramUsername)
	require.Len(t, alice.Transactions, 2)

	params, err := alice.Transactions[1].ToCreate(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), params.PlayerId)
	assert.Equal(t, models.TransactionTypeWin, params.Type)
	assert.Equal(t, "250.5", params.Amount.String())
	assert.Equal(t, "final table", *params.Note)

	assert.Nil(t, config.Players[1].ToCreate().TelegramUsername)
	assert.Empty(t, config.Players[1].Transactions)
}

func TestParseSeedConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"missing name", "players:\n  - telegram_username: x\n", nil},
		{"bad type", "players:\n  - name: A\n    transactions:\n      - type: rebuy\n        amount: \"5\"\n", models.ErrInvalidTransactionType},
		{"non-positive amount", "players:\n  - name: A\n    transactions:\n      - type: win\n        amount: \"0\"\n", models.ErrInvalidAmount},
		{"unknown field", "players:\n  - name: A\n    email: a@example.com\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeedConfig([]byte(tt.yaml), "inline")
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestLoadSeedConfig_MissingFile(t *testing.T) {
	_, err := LoadSeedConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "unable to read")
}
