package cmd

import "time"

// Config carries every runtime setting of the service. Values come from the
// environment; parsing happens at startup so wiring code works with typed
// fields only.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// LedgerBaseURL is the accounting ledger endpoint used for invoice
	// verification.
	LedgerBaseURL string

	// RedisURL selects the Redis verification cache when set. Empty means
	// the Postgres-backed cache is used instead.
	RedisURL string

	// CacheTTL bounds how long a Redis cache entry stays valid. Ignored by
	// the Postgres cache, which keeps entries until invalidated.
	CacheTTL time.Duration

	// VerifyTimeout bounds each external verifier call inside a batch.
	VerifyTimeout time.Duration

	// RetrySchedule is the cron expression (with seconds) for the
	// reconciliation retry job.
	RetrySchedule string

	// DefaultStoreIDs are the stores visible to callers without an explicit
	// assignment.
	DefaultStoreIDs []string

	// ElevatedUserIDs may devalidate deliveries and clear the verification
	// cache.
	ElevatedUserIDs []string
}
