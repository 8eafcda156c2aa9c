package models

// Friend is a participant on the shared tab, created lazily the first time
// their name appears on a purchase.
type Friend struct {
	// Name is the unique key, trimmed of surrounding whitespace.
	Name string `json:"name"`

	// Balance is the amount this friend has paid so far. It only grows;
	// a friend never pays a negative amount.
	Balance float64 `json:"balance"`
}
