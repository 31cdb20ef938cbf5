// Package wallet implements the session wallet: a single balance backed by
// an append-only transaction history, guarded against overdraft.
package wallet

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/models"
)

var (
	// ErrNonPositiveAmount is returned when a credit or debit amount is
	// zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a debit would take the
	// balance below zero. The account is left untouched.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account is the single source of truth for a wallet balance. The
// sufficiency check and the balance mutation of a debit happen under one
// lock, so two debits can never both succeed when only one could be
// individually afforded.
type Account struct {
	mu           sync.Mutex
	balance      float64
	transactions []models.Transaction // newest first
}

// NewAccount creates an account seeded with the given opening balance.
// The seed is not recorded as a transaction.
func NewAccount(openingBalance float64) *Account {
	return &Account{balance: openingBalance}
}

// Credit adds amount to the balance and records an income transaction.
func (a *Account) Credit(amount float64, description string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance += amount
	return a.record(models.KindIncome, amount, description), nil
}

// Debit subtracts amount from the balance and records a transaction of the
// given kind (expense or transfer). If the balance cannot cover the amount,
// nothing changes and ErrInsufficientFunds is returned.
func (a *Account) Debit(amount float64, description string, kind models.TransactionKind) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balance < amount {
		return nil, ErrInsufficientFunds
	}
	a.balance -= amount
	return a.record(kind, amount, description), nil
}

// record places a transaction at the head of the history. Caller holds a.mu.
func (a *Account) record(kind models.TransactionKind, amount float64, description string) *models.Transaction {
	tx := models.Transaction{
		ID:          uuid.NewString(),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Timestamp:   time.Now(),
	}
	a.transactions = append([]models.Transaction{tx}, a.transactions...)
	return &tx
}

// Balance returns the current balance.
func (a *Account) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns transactions newest first, as a copy. If limit is
// positive, at most limit entries are returned.
func (a *Account) History(limit int) []models.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := len(a.transactions)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.Transaction, n)
	copy(out, a.transactions[:n])
	return out
}

// AddIncome credits the account. It fails only on a non-positive amount.
func (a *Account) AddIncome(amount float64, description string) error {
	_, err := a.Credit(amount, description)
	return err
}

// DeductExpense debits the account as an expense and reports whether the
// debit was applied. False means the balance could not cover the amount
// (or the amount was not positive) and nothing changed.
func (a *Account) DeductExpense(amount float64, description string) bool {
	_, err := a.Debit(amount, description, models.KindExpense)
	return err == nil
}

// TransferMoney debits the account as a transfer to someone else. Same
// semantics as DeductExpense.
func (a *Account) TransferMoney(amount float64, description string) bool {
	_, err := a.Debit(amount, description, models.KindTransfer)
	return err == nil
}
