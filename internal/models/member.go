package models

// Member is a participant in a shared-expense group.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string `json:"id"`

	// Name is the display name, trimmed of surrounding whitespace.
	Name string `json:"name"`
}
