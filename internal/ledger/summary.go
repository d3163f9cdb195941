// Package ledger folds the transaction log into per-player summaries.
package ledger

import (
	"poker-stack-go/internal/models"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimal places summaries are rounded to
const DisplayPlaces = 2

// Totals holds the full-precision sums for one player
type Totals struct {
	BuyIns   decimal.Decimal
	Winnings decimal.Decimal
	Losses   decimal.Decimal
}

// Add accumulates one transaction. Unknown types are ignored.
func (t *Totals) Add(tx models.Transaction) {
	switch tx.Type {
	case models.TransactionTypeBuyIn:
		t.BuyIns = t.BuyIns.Add(tx.Amount)
	case models.TransactionTypeWin:
		t.Winnings = t.Winnings.Add(tx.Amount)
	case models.TransactionTypeLoss:
		t.Losses = t.Losses.Add(tx.Amount)
	}
}

// Balance is winnings minus losses minus buy-ins, unrounded
func (t Totals) Balance() decimal.Decimal {
	return t.Winnings.Sub(t.Losses).Sub(t.BuyIns)
}

// Rounded returns the totals rounded to DisplayPlaces
func (t Totals) Rounded() Totals {
	return Totals{
		BuyIns:   t.BuyIns.Round(DisplayPlaces),
		Winnings: t.Winnings.Round(DisplayPlaces),
		Losses:   t.Losses.Round(DisplayPlaces),
	}
}

// GroupByPlayer sums transactions per player id at full precision
func GroupByPlayer(transactions []models.Transaction) map[int64]*Totals {
	grouped := make(map[int64]*Totals)
	for _, tx := range transactions {
		totals, ok := grouped[tx.PlayerId]
		if !ok {
			totals = &Totals{}
			grouped[tx.PlayerId] = totals
		}
		totals.Add(tx)
	}
	return grouped
}

// ComputeSummaries produces one summary per player, in input order.
// Transactions for players outside the input set are ignored. Rounding
// happens once, after accumulation; the balance is derived from the
// unrounded totals.
func ComputeSummaries(players []models.Player, transactions []models.Transaction) []models.PlayerSummary {
	results := make([]models.PlayerSummary, 0, len(players))
	if len(players) == 0 {
		return results
	}

	grouped := GroupByPlayer(transactions)
	for _, player := range players {
		var totals Totals
		if t, ok := grouped[player.Id]; ok {
			totals = *t
		}
		rounded := totals.Rounded()

		results = append(results, models.PlayerSummary{
			Id:               player.Id,
			Name:             player.Name,
			TelegramUsername: player.TelegramUsername,
			BuyInsTotal:      rounded.BuyIns,
			WinningsTotal:    rounded.Winnings,
			LossesTotal:      rounded.Losses,
			Balance:          totals.Balance().Round(DisplayPlaces),
		})
	}
	return results
}
