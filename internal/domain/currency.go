package domain

import (
	"strings"
	"unicode"
)

// Currency is a tracked currency with its latest rate. Value is quoted per
// Nominal units of the currency, e.g. JPY may be 0.61 per 100.
type Currency struct {
	ID       int64
	NumCode  string
	CharCode string
	Name     string
	Value    float64
	Nominal  int
}

// PerUnit returns the rate for a single unit of the currency.
func (c Currency) PerUnit() float64 {
	return c.Value / float64(c.Nominal)
}

// NewCurrency builds a validated Currency with no id assigned yet.
// CharCode is normalized to uppercase. Returns *ValidationError when any
// field violates its invariant, so an invalid Currency never exists.
func NewCurrency(numCode, charCode, name string, value float64, nominal int) (Currency, error) {
	numCode = strings.TrimSpace(numCode)
	charCode = NormalizeCode(charCode)
	name = strings.TrimSpace(name)

	if len(numCode) != 3 {
		return Currency{}, &ValidationError{Field: "num_code", Reason: "must be exactly 3 characters"}
	}
	if !isLetterCode(charCode) {
		return Currency{}, &ValidationError{Field: "char_code", Reason: "must be exactly 3 letters"}
	}
	if len([]rune(name)) < 2 {
		return Currency{}, &ValidationError{Field: "name", Reason: "must be at least 2 characters"}
	}
	if value < 0 {
		return Currency{}, &ValidationError{Field: "value", Reason: "must not be negative"}
	}
	if nominal <= 0 {
		return Currency{}, &ValidationError{Field: "nominal", Reason: "must be positive"}
	}

	return Currency{
		NumCode:  numCode,
		CharCode: charCode,
		Name:     name,
		Value:    value,
		Nominal:  nominal,
	}, nil
}

// NormalizeCode maps a char code to its canonical uppercase form. Every code
// path that matches currencies by char code must go through this, otherwise
// reconciliation would duplicate rows under differing case.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func isLetterCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
