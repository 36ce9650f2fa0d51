package domain

// SnapshotEntry carries one currency from an external rate feed. Value is
// already quoted per Nominal units, exactly as a Currency row stores it.
type SnapshotEntry struct {
	NumCode string
	Name    string
	Value   float64
	Nominal int
}

// RateSnapshot is a full feed read keyed by normalized char code. It is built
// entirely before any store mutation begins.
type RateSnapshot map[string]SnapshotEntry
