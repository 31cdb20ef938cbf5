package models

// Settlement instructs one member to pay another a specific amount so that
// every member's net position reaches zero. It is the output of a split
// calculation, never stored on its own.
type Settlement struct {
	// From is the debtor's member ID.
	From string `json:"from"`

	// FromName is the debtor's display name.
	FromName string `json:"from_name"`

	// To is the creditor's member ID.
	To string `json:"to"`

	// ToName is the creditor's display name.
	ToName string `json:"to_name"`

	// Amount is the payment amount. Always positive.
	Amount float64 `json:"amount"`
}
