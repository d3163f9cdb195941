package ledger_test

import (
	"testing"

	"poker-stack-go/internal/ledger"
	"poker-stack-go/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(playerId int64, txType models.TransactionType, amount string) models.Transaction {
	return models.Transaction{
		PlayerId: playerId,
		Type:     txType,
		Amount:   decimal.RequireFromString(amount),
	}
}

func fixed(summary models.PlayerSummary) [4]string {
	return [4]string{
		summary.BuyInsTotal.StringFixed(2),
		summary.WinningsTotal.StringFixed(2),
		summary.LossesTotal.StringFixed(2),
		summary.Balance.StringFixed(2),
	}
}

func TestComputeSummaries(t *testing.T) {
	alice := models.Player{Id: 1, Name: "Alice"}

	t.Run("buy-in, win and loss fold into balance", func(t *testing.T) {
		summaries := ledger.ComputeSummaries([]models.Player{alice}, []models.Transaction{
			tx(1, models.TransactionTypeBuyIn, "100"),
			tx(1, models.TransactionTypeWin, "250"),
			tx(1, models.TransactionTypeLoss, "50"),
		})

		require.Len(t, summaries, 1)
		assert.Equal(t, [4]string{"100.00", "250.00", "50.00", "100.00"}, fixed(summaries[0]))
		assert.Equal(t, "Alice", summaries[0].Name)
	})

	t.Run("player without transactions gets zeros", func(t *testing.T) {
		summaries := ledger.ComputeSummaries([]models.Player{alice}, nil)

		require.Len(t, summaries, 1)
		assert.Equal(t, [4]string{"0.00", "0.00", "0.00", "0.00"}, fixed(summaries[0]))
	})

	t.Run("empty player list yields empty result", func(t *testing.T) {
		summaries := ledger.ComputeSummaries(nil, []models.Transaction{tx(1, models.TransactionTypeWin, "10")})

		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})

	t.Run("buy-ins alone produce a negative balance", func(t *testing.T) {
		summaries := ledger.ComputeSummaries([]models.Player{alice}, []models.Transaction{
			tx(1, models.TransactionTypeBuyIn, "40"),
			tx(1, models.TransactionTypeBuyIn, "60"),
		})

		assert.Equal(t, [4]string{"100.00", "0.00", "0.00", "-100.00"}, fixed(summaries[0]))
	})

	t.Run("transactions for unknown players are ignored", func(t *testing.T) {
		summaries := ledger.ComputeSummaries([]models.Player{alice}, []models.Transaction{
			tx(1, models.TransactionTypeWin, "5"),
			tx(99, models.TransactionTypeWin, "500"),
		})

		require.Len(t, summaries, 1)
		assert.Equal(t, "5.00", summaries[0].WinningsTotal.StringFixed(2))
	})
}

func TestComputeSummaries_RoundsAtOutputOnly(t *testing.T) {
	alice := models.Player{Id: 1, Name: "Alice"}
	amounts := []string{"33.333", "33.333", "33.333"}

	var transactions []models.Transaction
	roundedEachAddend := decimal.Zero
	for _, a := range amounts {
		transactions = append(transactions, tx(1, models.TransactionTypeWin, a))
		roundedEachAddend = roundedEachAddend.Add(decimal.RequireFromString(a).Round(2))
	}

	summaries := ledger.ComputeSummaries([]models.Player{alice}, transactions)
	require.Len(t, summaries, 1)

	assert.Equal(t, "100.00", summaries[0].WinningsTotal.StringFixed(2))
	assert.Equal(t, "99.99", roundedEachAddend.StringFixed(2))
	assert.False(t, summaries[0].WinningsTotal.Equal(roundedEachAddend),
		"rounding each addend must differ from rounding the accumulated sum")
	assert.Equal(t, "100.00", summaries[0].Balance.StringFixed(2))
}

func TestComputeSummaries_BalanceUsesUnroundedTotals(t *testing.T) {
	alice := models.Player{Id: 1, Name: "Alice"}

	// 10.005 rounds to 10.01 on its own; 0.004 rounds to 0.00.
	// The unrounded balance 10.001 rounds to 10.00.
	summaries := ledger.ComputeSummaries([]models.Player{alice}, []models.Transaction{
		tx(1, models.TransactionTypeWin, "10.005"),
		tx(1, models.TransactionTypeLoss, "0.004"),
	})

	assert.Equal(t, "10.01", summaries[0].WinningsTotal.StringFixed(2))
	assert.Equal(t, "0.00", summaries[0].LossesTotal.StringFixed(2))
	assert.Equal(t, "10.00", summaries[0].Balance.StringFixed(2))
}

func TestComputeSummaries_MultiPlayerIsolation(t *testing.T) {
	players := []models.Player{
		{Id: 1, Name: "Alice"},
		{Id: 2, Name: "Bob"},
		{Id: 3, Name: "Carol"},
	}
	transactions := []models.Transaction{
		tx(2, models.TransactionTypeBuyIn, "20"),
		tx(1, models.TransactionTypeBuyIn, "100"),
		tx(2, models.TransactionTypeWin, "75.5"),
		tx(1, models.TransactionTypeLoss, "30"),
		tx(2, models.TransactionTypeLoss, "5.25"),
		tx(1, models.TransactionTypeWin, "10"),
	}

	summaries := ledger.ComputeSummaries(players, transactions)
	require.Len(t, summaries, 3)

	assert.Equal(t, int64(1), summaries[0].Id)
	assert.Equal(t, [4]string{"100.00", "10.00", "30.00", "-120.00"}, fixed(summaries[0]))

	assert.Equal(t, int64(2), summaries[1].Id)
	assert.Equal(t, [4]string{"20.00", "75.50", "5.25", "50.25"}, fixed(summaries[1]))

	assert.Equal(t, int64(3), summaries[2].Id)
	assert.Equal(t, [4]string{"0.00", "0.00", "0.00", "0.00"}, fixed(summaries[2]))
}

func TestComputeSummaries_PreservesPlayerOrder(t *testing.T) {
	players := []models.Player{
		{Id: 7, Name: "Gus"},
		{Id: 2, Name: "Bob"},
		{Id: 5, Name: "Eve"},
	}

	summaries := ledger.ComputeSummaries(players, nil)

	require.Len(t, summaries, 3)
	assert.Equal(t, []int64{7, 2, 5}, []int64{summaries[0].Id, summaries[1].Id, summaries[2].Id})
}

func TestComputeSummaries_IsPure(t *testing.T) {
	players := []models.Player{{Id: 1, Name: "Alice"}, {Id: 2, Name: "Bob"}}
	transactions := []models.Transaction{
		tx(1, models.TransactionTypeBuyIn, "12.345"),
		tx(2, models.TransactionTypeWin, "0.015"),
	}

	first := ledger.ComputeSummaries(players, transactions)
	second := ledger.ComputeSummaries(players, transactions)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, fixed(first[i]), fixed(second[i]))
	}
}

func TestTotals_Add(t *testing.T) {
	var totals ledger.Totals
	totals.Add(tx(1, models.TransactionTypeBuyIn, "1.5"))
	totals.Add(tx(1, models.TransactionTypeWin, "4"))
	totals.Add(tx(1, models.TransactionType("bonus"), "1000"))

	assert.True(t, totals.BuyIns.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, totals.Winnings.Equal(decimal.NewFromInt(4)))
	assert.True(t, totals.Balance().Equal(decimal.RequireFromString("2.5")))
}
