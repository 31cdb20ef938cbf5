package service

import (
	"errors"
	"log/slog"

	"github.com/finflow/backend/internal/metrics"
	"github.com/finflow/backend/internal/models"
	"github.com/finflow/backend/internal/wallet"
)

// WalletService exposes the wallet surface consumed by the API: the current
// balance, the newest-first history, and the three mutation operations.
type WalletService struct {
	account *wallet.Account
}

// NewWalletService wraps the session's wallet account.
func NewWalletService(account *wallet.Account) *WalletService {
	return &WalletService{account: account}
}

// Balance returns the current balance.
func (s *WalletService) Balance() float64 {
	return s.account.Balance()
}

// Transactions returns the history newest first, at most limit entries if
// limit is positive.
func (s *WalletService) Transactions(limit int) []models.Transaction {
	return s.account.History(limit)
}

// AddIncome credits the wallet.
func (s *WalletService) AddIncome(amount float64, description string) error {
	tx, err := s.account.Credit(amount, description)
	if err != nil {
		slog.Warn("Income rejected", "amount", amount, "error", err)
		return err
	}
	metrics.WalletTransactions.WithLabelValues(string(models.KindIncome)).Inc()

	slog.Info("Income added",
		"transaction_id", tx.ID,
		"amount", amount,
		"balance", s.account.Balance(),
	)
	return nil
}

// DeductExpense debits the wallet as an expense.
func (s *WalletService) DeductExpense(amount float64, description string) error {
	return s.debit(amount, description, models.KindExpense)
}

// TransferMoney debits the wallet as a transfer.
func (s *WalletService) TransferMoney(amount float64, description string) error {
	return s.debit(amount, description, models.KindTransfer)
}

func (s *WalletService) debit(amount float64, description string, kind models.TransactionKind) error {
	tx, err := s.account.Debit(amount, description, kind)
	if err != nil {
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			metrics.WalletRejections.Inc()
		}
		slog.Warn("Debit rejected", "kind", kind, "amount", amount, "error", err)
		return err
	}
	metrics.WalletTransactions.WithLabelValues(string(kind)).Inc()

	slog.Info("Debit applied",
		"kind", kind,
		"transaction_id", tx.ID,
		"amount", amount,
		"balance", s.account.Balance(),
	)
	return nil
}
