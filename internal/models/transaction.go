package models

import "time"

// TransactionKind classifies a wallet transaction.
type TransactionKind string

const (
	// KindIncome increases the balance.
	KindIncome TransactionKind = "income"

	// KindExpense decreases the balance.
	KindExpense TransactionKind = "expense"

	// KindTransfer decreases the balance; used for payments to other
	// people, such as settling a group expense.
	KindTransfer TransactionKind = "transfer"
)

// Transaction is one entry in the wallet's append-only history. Entries are
// immutable once recorded and kept newest first.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// Kind is income, expense or transfer.
	Kind TransactionKind `json:"kind"`

	// Amount is always positive; Kind determines the sign of its effect
	// on the balance.
	Amount float64 `json:"amount"`

	// Description is a free-form note supplied by the caller.
	Description string `json:"description"`

	// Timestamp is when the transaction was recorded.
	Timestamp time.Time `json:"timestamp"`
}
