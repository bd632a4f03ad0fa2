package domain

import "time"

// Redirect maps Path to URL. Path never has a leading slash and is unique
// across all users, not just within UserID.
type Redirect struct {
	ID        string
	UserID    string
	Path      string
	URL       string
	CreatedAt time.Time
}
