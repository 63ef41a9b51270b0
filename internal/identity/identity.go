package identity

import (
	"context"
	"errors"

	"github.com/Pushpa2611/api-auth-gateway/internal/domain"
)

// ErrPrincipalNotFound is returned by stores when no principal matches.
var ErrPrincipalNotFound = errors.New("principal not found")

// ErrInvalidCredentials is the uniform verification failure. Unknown user,
// wrong password, and suspended account are indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Store resolves principals. Resolution happens fresh on every issuance,
// refresh, and validation call; results are never cached across requests.
type Store interface {
	GetByID(ctx context.Context, id int64) (*domain.Principal, error)
	GetByUsername(ctx context.Context, username string) (*domain.Principal, error)
}

// Verifier checks a username/password pair against the identity store.
type Verifier interface {
	Verify(ctx context.Context, username, password string) (*domain.Principal, error)
}

type bcryptVerifier struct {
	store Store
}

// NewVerifier returns a Verifier backed by the store and bcrypt comparison.
func NewVerifier(store Store) Verifier {
	return &bcryptVerifier{store: store}
}

// Verify resolves the principal and compares the password hash. Every
// failure collapses into ErrInvalidCredentials.
func (v *bcryptVerifier) Verify(ctx context.Context, username, password string) (*domain.Principal, error) {
	principal, err := v.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if principal.Status != domain.PrincipalStatusActive {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(principal.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return principal, nil
}
