package calculator

import (
	"math"
	"reflect"
	"testing"

	"github.com/finflow/backend/internal/models"
)

func member(id, name string) models.Member {
	return models.Member{ID: id, Name: name}
}

func expense(amount float64, paidBy string) models.Expense {
	return models.Expense{ID: "e-" + paidBy, Title: "t", Amount: amount, PaidBy: paidBy}
}

func TestBalances(t *testing.T) {
	tests := []struct {
		name         string
		members      []models.Member
		expenses     []models.Expense
		validateFunc func(t *testing.T, balances []MemberBalance)
	}{
		{
			name:    "two members one expense",
			members: []models.Member{member("a", "Alice"), member("b", "Bob")},
			expenses: []models.Expense{
				expense(100, "a"),
			},
			validateFunc: func(t *testing.T, balances []MemberBalance) {
				if len(balances) != 2 {
					t.Fatalf("got %d balances, want 2", len(balances))
				}
				alice, bob := balances[0], balances[1]
				if alice.Paid != 100 || alice.Owes != 50 || alice.Net != 50 {
					t.Errorf("Alice = %+v, want paid 100 owes 50 net 50", alice)
				}
				if bob.Paid != 0 || bob.Owes != 50 || bob.Net != -50 {
					t.Errorf("Bob = %+v, want paid 0 owes 50 net -50", bob)
				}
			},
		},
		{
			name:    "three members uneven payers",
			members: []models.Member{member("a", "A"), member("b", "B"), member("c", "C")},
			expenses: []models.Expense{
				expense(60, "a"),
				expense(30, "b"),
			},
			validateFunc: func(t *testing.T, balances []MemberBalance) {
				// total 90, share 30
				wantNet := []float64{30, 0, -30}
				for i, b := range balances {
					if b.Owes != 30 {
						t.Errorf("%s owes %v, want 30", b.Name, b.Owes)
					}
					if b.Net != wantNet[i] {
						t.Errorf("%s net %v, want %v", b.Name, b.Net, wantNet[i])
					}
				}
			},
		},
		{
			name:    "no expenses means all zero",
			members: []models.Member{member("a", "A"), member("b", "B")},
			validateFunc: func(t *testing.T, balances []MemberBalance) {
				for _, b := range balances {
					if b.Paid != 0 || b.Owes != 0 || b.Net != 0 {
						t.Errorf("%s = %+v, want all zero", b.Name, b)
					}
				}
			},
		},
		{
			name: "no members",
			expenses: []models.Expense{
				expense(100, "ghost"),
			},
			validateFunc: func(t *testing.T, balances []MemberBalance) {
				if balances != nil {
					t.Errorf("got %v, want nil", balances)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, Balances(tt.members, tt.expenses))
		})
	}
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name         string
		members      []models.Member
		expenses     []models.Expense
		validateFunc func(t *testing.T, settlements []models.Settlement)
	}{
		{
			name:    "single debtor pays single creditor",
			members: []models.Member{member("a", "Alice"), member("b", "Bob")},
			expenses: []models.Expense{
				expense(100, "a"),
			},
			validateFunc: func(t *testing.T, settlements []models.Settlement) {
				want := []models.Settlement{
					{From: "b", FromName: "Bob", To: "a", ToName: "Alice", Amount: 50},
				}
				if !reflect.DeepEqual(settlements, want) {
					t.Errorf("settlements = %+v, want %+v", settlements, want)
				}
			},
		},
		{
			name:    "zero-net member appears in no settlement",
			members: []models.Member{member("a", "A"), member("b", "B"), member("c", "C")},
			expenses: []models.Expense{
				expense(60, "a"),
				expense(30, "b"),
			},
			validateFunc: func(t *testing.T, settlements []models.Settlement) {
				want := []models.Settlement{
					{From: "c", FromName: "C", To: "a", ToName: "A", Amount: 30},
				}
				if !reflect.DeepEqual(settlements, want) {
					t.Errorf("settlements = %+v, want %+v", settlements, want)
				}
			},
		},
		{
			name: "one creditor many debtors in member order",
			members: []models.Member{
				member("a", "A"), member("b", "B"), member("c", "C"), member("d", "D"),
			},
			expenses: []models.Expense{
				expense(400, "a"),
			},
			validateFunc: func(t *testing.T, settlements []models.Settlement) {
				want := []models.Settlement{
					{From: "b", FromName: "B", To: "a", ToName: "A", Amount: 100},
					{From: "c", FromName: "C", To: "a", ToName: "A", Amount: 100},
					{From: "d", FromName: "D", To: "a", ToName: "A", Amount: 100},
				}
				if !reflect.DeepEqual(settlements, want) {
					t.Errorf("settlements = %+v, want %+v", settlements, want)
				}
			},
		},
		{
			name: "debtor split across creditors",
			members: []models.Member{
				member("a", "A"), member("b", "B"), member("c", "C"),
			},
			expenses: []models.Expense{
				expense(90, "a"),
				expense(60, "b"),
			},
			validateFunc: func(t *testing.T, settlements []models.Settlement) {
				// total 150, share 50: A +40, B +10, C -50.
				want := []models.Settlement{
					{From: "c", FromName: "C", To: "a", ToName: "A", Amount: 40},
					{From: "c", FromName: "C", To: "b", ToName: "B", Amount: 10},
				}
				if !reflect.DeepEqual(settlements, want) {
					t.Errorf("settlements = %+v, want %+v", settlements, want)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, Settle(Balances(tt.members, tt.expenses)))
		})
	}
}

func TestSettleProperties(t *testing.T) {
	members := []models.Member{
		member("a", "A"), member("b", "B"), member("c", "C"),
		member("d", "D"), member("e", "E"),
	}
	expenses := []models.Expense{
		expense(250, "a"),
		expense(130, "b"),
		expense(20, "c"),
	}

	balances := Balances(members, expenses)
	settlements := Settle(balances)

	// Count bound: at most creditors+debtors-1 legs.
	creditors, debtors := 0, 0
	for _, b := range balances {
		switch {
		case b.Net > zeroTolerance:
			creditors++
		case b.Net < -zeroTolerance:
			debtors++
		}
	}
	if len(settlements) > creditors+debtors-1 {
		t.Errorf("%d settlements for %d creditors and %d debtors, want at most %d",
			len(settlements), creditors, debtors, creditors+debtors-1)
	}

	// Zero sum: paid out equals received equals total surplus.
	var surplus float64
	for _, b := range balances {
		if b.Net > 0 {
			surplus += b.Net
		}
	}
	paid := make(map[string]float64)
	received := make(map[string]float64)
	var moved float64
	for _, s := range settlements {
		if s.Amount <= 0 {
			t.Errorf("non-positive settlement amount in %+v", s)
		}
		paid[s.From] += s.Amount
		received[s.To] += s.Amount
		moved += s.Amount
	}
	if math.Abs(moved-surplus) > 1e-9 {
		t.Errorf("moved %v, want total surplus %v", moved, surplus)
	}

	// Every debtor pays exactly their deficit, every creditor receives
	// exactly their surplus.
	for _, b := range balances {
		switch {
		case b.Net > zeroTolerance:
			if math.Abs(received[b.MemberID]-b.Net) > 1e-9 {
				t.Errorf("%s received %v, want %v", b.Name, received[b.MemberID], b.Net)
			}
		case b.Net < -zeroTolerance:
			if math.Abs(paid[b.MemberID]+b.Net) > 1e-9 {
				t.Errorf("%s paid %v, want %v", b.Name, paid[b.MemberID], -b.Net)
			}
		}
	}

	// Idempotence: same input, same plan.
	again := Settle(Balances(members, expenses))
	if !reflect.DeepEqual(settlements, again) {
		t.Errorf("recomputation differs: %+v vs %+v", settlements, again)
	}
}

func TestSettleIgnoresRoundingNoise(t *testing.T) {
	balances := []MemberBalance{
		{MemberID: "a", Name: "A", Net: 0.004},
		{MemberID: "b", Name: "B", Net: -0.004},
	}
	if got := Settle(balances); len(got) != 0 {
		t.Errorf("got %d settlements from sub-paise noise, want 0", len(got))
	}
}

func TestSettleDoesNotMutateInput(t *testing.T) {
	balances := Balances(
		[]models.Member{member("a", "A"), member("b", "B")},
		[]models.Expense{expense(100, "a")},
	)
	snapshot := append([]MemberBalance(nil), balances...)

	Settle(balances)

	if !reflect.DeepEqual(balances, snapshot) {
		t.Errorf("Settle mutated its input: %+v vs %+v", balances, snapshot)
	}
}
