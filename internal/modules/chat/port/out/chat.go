package out

import "context"

// HistoryEntry is one raw transcript row from the backend.
type HistoryEntry struct {
	Content string
	Role    string
}

// ChatAPI is the trainer endpoint pair.
type ChatAPI interface {
	History(ctx context.Context) ([]HistoryEntry, error)
	// Send returns the trainer's reply text, which may be empty when the
	// model produced nothing.
	Send(ctx context.Context, message string) (string, error)
}

// AccountStats is the profile snapshot the analysis prompt is built
// from.
type AccountStats struct {
	WeightKg int
	HeightCm int
	AgeYears int
	Gender   string // user-facing value (male/female/other)
}

// StatsReader fetches the stored account stats.
type StatsReader interface {
	Stats(ctx context.Context) (AccountStats, error)
}
