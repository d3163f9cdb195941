/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import "fmt"

// TransactionType is the closed set of ledger movements. The sign of a
// transaction is carried by its type, never by its amount.
type TransactionType string

const (
	TransactionTypeBuyIn TransactionType = "buy_in"
	TransactionTypeWin   TransactionType = "win"
	TransactionTypeLoss  TransactionType = "loss"
)

// TransactionTypes lists every valid type in display order
var TransactionTypes = []TransactionType{
	TransactionTypeBuyIn,
	TransactionTypeWin,
	TransactionTypeLoss,
}

var transactionTypeLabels = map[TransactionType]string{
	TransactionTypeBuyIn: "Buy-in",
	TransactionTypeWin:   "Win",
	TransactionTypeLoss:  "Loss",
}

// ParseTransactionType converts untrusted input into a TransactionType.
// Only the exact stored values are accepted.
func ParseTransactionType(value string) (TransactionType, error) {
	t := TransactionType(value)
	if !t.Valid() {
		return "", &ValidationError{
			Field: "type",
			Err:   fmt.Errorf("%w: %q", ErrInvalidTransactionType, value),
		}
	}
	return t, nil
}

func (t TransactionType) Valid() bool {
	_, ok := transactionTypeLabels[t]
	return ok
}

// Label returns the human readable name shown on the dashboard
func (t TransactionType) Label() string {
	if label, ok := transactionTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t TransactionType) String() string {
	return string(t)
}
