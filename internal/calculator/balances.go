// Package calculator computes equal-split balances and a greedy settlement
// plan for a group of members and their shared expenses. Everything here is
// pure: functions read only their arguments, so they are re-entrant and safe
// to call from any goroutine.
package calculator

import "github.com/finflow/backend/internal/models"

// MemberBalance is one member's position against the group.
type MemberBalance struct {
	// MemberID identifies the member.
	MemberID string `json:"member_id"`

	// Name is the member's display name.
	Name string `json:"name"`

	// Paid is the total this member paid out of pocket.
	Paid float64 `json:"paid"`

	// Owes is the member's equal share of the group total.
	Owes float64 `json:"owes"`

	// Net is Paid - Owes. Positive = owed money, negative = owes money.
	Net float64 `json:"net"`
}

// Balances computes each member's paid/owes/net position. Every expense is
// split evenly across all current members, regardless of who benefited from
// it. The result preserves member order. With no members the result is nil;
// the share is never divided by zero.
func Balances(members []models.Member, expenses []models.Expense) []MemberBalance {
	if len(members) == 0 {
		return nil
	}

	var total float64
	paid := make(map[string]float64, len(members))
	for _, e := range expenses {
		total += e.Amount
		paid[e.PaidBy] += e.Amount
	}
	share := total / float64(len(members))

	balances := make([]MemberBalance, len(members))
	for i, m := range members {
		balances[i] = MemberBalance{
			MemberID: m.ID,
			Name:     m.Name,
			Paid:     paid[m.ID],
			Owes:     share,
			Net:      paid[m.ID] - share,
		}
	}
	return balances
}
