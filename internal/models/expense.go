package models

// Expense is a single payment made by one member on behalf of the whole
// group, split evenly across all current members. Expenses are immutable
// once created; the only mutation is removal.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Title is the human-readable label (e.g. "Dinner", "Travel").
	Title string `json:"title"`

	// Amount is the full amount the payer spent. Always positive.
	Amount float64 `json:"amount"`

	// PaidBy is the ID of the member who paid.
	PaidBy string `json:"paid_by"`

	// PaidByName is a snapshot of the payer's name at creation time.
	PaidByName string `json:"paid_by_name"`
}
