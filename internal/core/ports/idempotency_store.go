package ports

import "context"

// IdempotencyStore remembers the outcome of a request keyed by a client supplied key.
// Entries expire after a store defined TTL.
type IdempotencyStore interface {
	// TryLock claims key within scope. It returns false when another request holds or has
	// completed it.
	TryLock(ctx context.Context, scope, key string) (bool, error)

	// Release drops a claim whose request failed, so the client may retry with the same key.
	Release(ctx context.Context, scope, key string) error

	// Remember stores the serialized outcome of a completed request.
	Remember(ctx context.Context, scope, key, value string) error

	// Recall returns the stored outcome and whether there is one.
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}
