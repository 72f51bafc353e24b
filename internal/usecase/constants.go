package usecase

import "time"

const (
	// DefaultTransactionTimeout bounds a posting transaction so a stuck
	// commit cannot hold account locks indefinitely.
	DefaultTransactionTimeout = 10 * time.Second

	// BalanceCacheTTL is how long cached account balances stay valid when no
	// posting invalidates them first.
	BalanceCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
