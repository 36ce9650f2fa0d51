package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCurrencyNotFound  = errors.New("currency not found")
	ErrDuplicateCurrency = errors.New("currency with this char code already exists")
	// ErrSourceUnavailable marks rate feed failures. It never crosses the
	// refresh boundary: the reconciler falls back to cached or built-in data.
	ErrSourceUnavailable = errors.New("rate source unavailable")
)

// ValidationError reports a field that violates an entity invariant.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ReferentialError reports an operation referencing an entity that does not
// exist. It is returned before any store mutation happens.
type ReferentialError struct {
	Entity string
	ID     int64
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}
