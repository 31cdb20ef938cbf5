package calculator

import (
	"math"

	"github.com/finflow/backend/internal/models"
)

// zeroTolerance is one smallest currency unit. Members whose net position is
// within it of zero join neither the creditor nor the debtor list, and legs
// below it are never emitted, so float rounding cannot produce spurious
// micro-payments.
const zeroTolerance = 0.01

// Settle reduces net positions to pairwise payments using greedy matching:
// creditors are visited in member order, and each is paid off by debtors in
// member order until the creditor's credit is exhausted. The plan has at
// most creditors+debtors-1 legs and zeroes every position, but it is
// order-dependent, not a globally minimal solver.
//
// Settle does not modify balances and is deterministic for a fixed input.
func Settle(balances []MemberBalance) []models.Settlement {
	var creditors, debtors []MemberBalance
	for _, b := range balances {
		switch {
		case b.Net > zeroTolerance:
			creditors = append(creditors, b)
		case b.Net < -zeroTolerance:
			debtors = append(debtors, b)
		}
	}

	var settlements []models.Settlement
	for _, creditor := range creditors {
		remaining := creditor.Net
		for j := range debtors {
			debtor := &debtors[j]
			if remaining <= zeroTolerance || debtor.Net >= -zeroTolerance {
				continue
			}

			amount := math.Min(remaining, -debtor.Net)
			settlements = append(settlements, models.Settlement{
				From:     debtor.MemberID,
				FromName: debtor.Name,
				To:       creditor.MemberID,
				ToName:   creditor.Name,
				Amount:   amount,
			})
			remaining -= amount
			debtor.Net += amount
		}
	}
	return settlements
}
