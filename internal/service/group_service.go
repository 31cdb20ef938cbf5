// Package service holds the session-scoped services behind the HTTP
// surface: the group settlement engine and the wallet wrapper. All state
// lives in memory for the process lifetime.
package service

import (
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/calculator"
	"github.com/finflow/backend/internal/metrics"
	"github.com/finflow/backend/internal/models"
	"github.com/finflow/backend/internal/upi"
	"github.com/finflow/backend/internal/wallet"
)

var (
	// ErrEmptyName rejects members whose trimmed name is empty.
	ErrEmptyName = errors.New("member name must not be empty")

	// ErrEmptyTitle rejects expenses whose trimmed title is empty.
	ErrEmptyTitle = errors.New("expense title must not be empty")

	// ErrInvalidAmount rejects amounts that are not positive finite numbers.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrUnknownMember rejects expenses whose payer is not in the group.
	ErrUnknownMember = errors.New("payer is not a group member")

	// ErrNoMembers means a split was requested for an empty group.
	ErrNoMembers = errors.New("group has no members")

	// ErrNoExpenses means a split was requested with no expenses recorded.
	ErrNoExpenses = errors.New("group has no expenses")
)

// Summary describes the group's expense totals for display.
type Summary struct {
	TotalAmount    float64 `json:"total_amount"`
	SharePerPerson float64 `json:"share_per_person"`
	MembersCount   int     `json:"members_count"`
	ExpensesCount  int     `json:"expenses_count"`
}

// GroupService owns one group session: the roster, the shared expenses and
// the last computed settlement plan. Paying a settlement through
// PayFromWallet does not remove it from the plan or flag it resolved; only
// recomputation changes the plan. That matches the product behavior this
// backend replaces.
type GroupService struct {
	mu          sync.Mutex
	name        string
	members     []models.Member
	expenses    []models.Expense
	settlements []models.Settlement
	computed    bool

	account *wallet.Account
	links   *upi.Formatter
}

// NewGroupService creates an empty group bound to the given wallet account
// for settlement payments and link formatter for external payment.
func NewGroupService(account *wallet.Account, links *upi.Formatter) *GroupService {
	return &GroupService{account: account, links: links}
}

// Name returns the group/trip name.
func (s *GroupService) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// Rename sets the group/trip name. Display-only, not part of any calculation.
func (s *GroupService) Rename(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = strings.TrimSpace(name)
}

// AddMember adds a member with a fresh ID at the end of the roster.
// The name is trimmed; an empty result leaves the group untouched.
func (s *GroupService) AddMember(name string) (*models.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	member := models.Member{ID: uuid.NewString(), Name: name}
	s.members = append(s.members, member)

	slog.Info("Member added",
		"member_id", member.ID,
		"name", member.Name,
		"members_count", len(s.members),
	)
	return &member, nil
}

// RemoveMember removes the member and cascades: every expense the member
// paid for is deleted in the same step, under the session lock. Shares are
// deliberately not reassigned; the next split simply no longer sees that
// member or their expenses. Unknown IDs are a no-op.
func (s *GroupService) RemoveMember(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := s.members[:0]
	removed := false
	for _, m := range s.members {
		if m.ID == id {
			removed = true
			continue
		}
		members = append(members, m)
	}
	s.members = members
	if !removed {
		return
	}

	expenses := s.expenses[:0]
	dropped := 0
	for _, e := range s.expenses {
		if e.PaidBy == id {
			dropped++
			continue
		}
		expenses = append(expenses, e)
	}
	s.expenses = expenses

	slog.Info("Member removed",
		"member_id", id,
		"expenses_dropped", dropped,
		"members_count", len(s.members),
	)
}

// Members returns the roster in insertion order, as a copy.
func (s *GroupService) Members() []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Member(nil), s.members...)
}

// AddExpense records an expense paid by an existing member, snapshotting
// the payer's name. Validation failures leave the group untouched.
func (s *GroupService) AddExpense(title string, amount float64, paidBy string) (*models.Expense, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payer := s.findMember(paidBy)
	if payer == nil {
		return nil, ErrUnknownMember
	}

	expense := models.Expense{
		ID:         uuid.NewString(),
		Title:      title,
		Amount:     amount,
		PaidBy:     payer.ID,
		PaidByName: payer.Name,
	}
	s.expenses = append(s.expenses, expense)

	slog.Info("Expense added",
		"expense_id", expense.ID,
		"title", expense.Title,
		"amount", expense.Amount,
		"paid_by", expense.PaidByName,
	)
	return &expense, nil
}

// RemoveExpense deletes the expense. No cascade; unknown IDs are a no-op.
func (s *GroupService) RemoveExpense(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := s.expenses[:0]
	for _, e := range s.expenses {
		if e.ID == id {
			slog.Info("Expense removed", "expense_id", id, "title", e.Title)
			continue
		}
		expenses = append(expenses, e)
	}
	s.expenses = expenses
}

// Expenses returns the expense list in insertion order, as a copy.
func (s *GroupService) Expenses() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Expense(nil), s.expenses...)
}

// Summary totals the expenses and the equal per-person share.
func (s *GroupService) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, e := range s.expenses {
		total += e.Amount
	}
	share := 0.0
	if len(s.members) > 0 {
		share = total / float64(len(s.members))
	}
	return Summary{
		TotalAmount:    total,
		SharePerPerson: share,
		MembersCount:   len(s.members),
		ExpensesCount:  len(s.expenses),
	}
}

// CalculateSplit recomputes net positions and replaces the settlement plan
// wholesale. With no members or no expenses the previous plan is left
// untouched and the error says why.
func (s *GroupService) CalculateSplit() ([]models.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.members) == 0 {
		return nil, ErrNoMembers
	}
	if len(s.expenses) == 0 {
		return nil, ErrNoExpenses
	}

	balances := calculator.Balances(s.members, s.expenses)
	s.settlements = calculator.Settle(balances)
	s.computed = true
	metrics.SettlementRuns.Inc()

	slog.Info("Split calculated",
		"members_count", len(s.members),
		"expenses_count", len(s.expenses),
		"settlements_count", len(s.settlements),
	)
	return append([]models.Settlement(nil), s.settlements...), nil
}

// Settlements returns the last computed plan (as a copy) and whether a plan
// has been computed at all this session.
func (s *GroupService) Settlements() ([]models.Settlement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Settlement(nil), s.settlements...), s.computed
}

// PayFromWallet realizes a settlement as an outgoing wallet transfer. The
// settlement stays in the plan afterwards. Insufficient funds pass through
// as wallet.ErrInsufficientFunds with no state change anywhere.
func (s *GroupService) PayFromWallet(settlement models.Settlement) error {
	tx, err := s.account.Debit(settlement.Amount, "Group expense payment to "+settlement.ToName, models.KindTransfer)
	if err != nil {
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			metrics.WalletRejections.Inc()
		}
		slog.Warn("Settlement payment rejected",
			"to", settlement.ToName,
			"amount", settlement.Amount,
			"error", err,
		)
		return err
	}
	metrics.WalletTransactions.WithLabelValues(string(models.KindTransfer)).Inc()

	slog.Info("Settlement paid from wallet",
		"transaction_id", tx.ID,
		"to", settlement.ToName,
		"amount", settlement.Amount,
	)
	return nil
}

// PaymentLink renders the UPI deep link for paying a settlement externally.
func (s *GroupService) PaymentLink(settlement models.Settlement) string {
	return s.links.Link(settlement.ToName, settlement.Amount, "Group expense payment")
}

// findMember resolves an ID against the roster. Caller holds s.mu.
func (s *GroupService) findMember(id string) *models.Member {
	for i := range s.members {
		if s.members[i].ID == id {
			return &s.members[i]
		}
	}
	return nil
}
