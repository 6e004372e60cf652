package repository

// Default SQLite settings.
const (
	defaultJournalMode = "WAL"
	defaultBusyTimeout = 5000 // milliseconds
)

// Option applies a configuration option to the SQLiteStore.
type Option func(*SQLiteStore)

// WithJournalMode sets the SQLite journal mode (WAL, DELETE, MEMORY, ...).
func WithJournalMode(mode string) Option {
	return func(s *SQLiteStore) {
		if mode != "" {
			s.journalMode = mode
		}
	}
}

// WithBusyTimeout sets how long, in milliseconds, SQLite waits on a locked database.
func WithBusyTimeout(ms int) Option {
	return func(s *SQLiteStore) {
		if ms > 0 {
			s.busyTimeout = ms
		}
	}
}
