package token

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Pushpa2611/api-auth-gateway/internal/domain"
)

const (
	// DefaultAccessTTL is the default access-token lifetime.
	DefaultAccessTTL = 15 * time.Minute

	// DefaultRefreshTTL is the default refresh-token lifetime.
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Issuer builds access and refresh claim sets from a principal and the
// current time and encodes them through the codec.
type Issuer struct {
	codec      *Codec
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewIssuer builds an issuer. Non-positive lifetimes fall back to the
// defaults (15 minutes access, 7 days refresh).
func NewIssuer(codec *Codec, issuer string, accessTTL, refreshTTL time.Duration) *Issuer {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &Issuer{codec: codec, issuer: issuer, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssuePair mints an access token and a refresh token for the principal.
func (i *Issuer) IssuePair(principal *domain.Principal, now time.Time) (string, string, error) {
	access, err := i.codec.Encode(i.newClaims(ClassAccess, principal.ID, now, i.accessTTL))
	if err != nil {
		return "", "", err
	}
	refresh, err := i.codec.Encode(i.newClaims(ClassRefresh, principal.ID, now, i.refreshTTL))
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// IssueAccess mints only a new access token. Used by the refresh flow;
// refresh tokens are not rotated.
func (i *Issuer) IssueAccess(principal *domain.Principal, now time.Time) (string, error) {
	return i.codec.Encode(i.newClaims(ClassAccess, principal.ID, now, i.accessTTL))
}

// AccessTTL returns the configured access-token lifetime.
func (i *Issuer) AccessTTL() time.Duration {
	return i.accessTTL
}

func (i *Issuer) newClaims(class Class, principalID int64, now time.Time, ttl time.Duration) *Claims {
	return &Claims{
		Class:   class,
		Subject: Subject{User: SubjectUser{ID: principalID}},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
}
