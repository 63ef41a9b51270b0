package revocation

import (
	"context"
	"time"
)

// Store is an optional denylist of revoked token ids. Token validity is
// otherwise derived purely from signature and expiry, which means a token
// cannot be invalidated early; a configured Store closes that gap for
// deployments that need it. A nil Store keeps the gateway fully stateless.
type Store interface {
	// Revoke denylists a token id for the remaining lifetime of the token.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked reports whether a token id is on the denylist.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
