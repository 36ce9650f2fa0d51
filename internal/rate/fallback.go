package rate

import "currencymon/internal/domain"

// FallbackSnapshot is the built-in rate table used when neither the live feed
// nor a previously cached snapshot is available, so the service always has
// currencies to serve. Values are per single unit.
func FallbackSnapshot() domain.RateSnapshot {
	return domain.RateSnapshot{
		"USD": {NumCode: "840", Name: "US Dollar", Value: 90.5, Nominal: 1},
		"EUR": {NumCode: "978", Name: "Euro", Value: 98.7, Nominal: 1},
		"GBP": {NumCode: "826", Name: "Pound Sterling", Value: 115.3, Nominal: 1},
		"JPY": {NumCode: "392", Name: "Japanese Yen", Value: 0.61, Nominal: 100},
		"CNY": {NumCode: "156", Name: "Chinese Yuan", Value: 12.5, Nominal: 10},
		"CHF": {NumCode: "756", Name: "Swiss Franc", Value: 103.2, Nominal: 1},
		"CAD": {NumCode: "124", Name: "Canadian Dollar", Value: 67.8, Nominal: 1},
		"AUD": {NumCode: "036", Name: "Australian Dollar", Value: 60.1, Nominal: 1},
		"TRY": {NumCode: "949", Name: "Turkish Lira", Value: 2.8, Nominal: 10},
		"BRL": {NumCode: "986", Name: "Brazilian Real", Value: 17.9, Nominal: 10},
		"INR": {NumCode: "356", Name: "Indian Rupee", Value: 1.09, Nominal: 100},
		"KRW": {NumCode: "410", Name: "South Korean Won", Value: 0.068, Nominal: 1000},
	}
}
