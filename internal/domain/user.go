package domain

import "strings"

type User struct {
	ID   int64
	Name string
}

// NewUser builds a validated User with no id assigned yet.
func NewUser(name string) (User, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < 2 {
		return User{}, &ValidationError{Field: "name", Reason: "must be at least 2 characters"}
	}
	return User{Name: name}, nil
}

// Subscription links a user to a currency they follow. At most one edge per
// (UserID, CurrencyID) pair exists at any time.
type Subscription struct {
	ID         int64
	UserID     int64
	CurrencyID int64
}

// ToggleAction reports what ToggleSubscription did with the edge.
type ToggleAction string

const (
	Subscribed   ToggleAction = "subscribed"
	Unsubscribed ToggleAction = "unsubscribed"
)
