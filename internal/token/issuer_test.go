package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pushpa2611/api-auth-gateway/internal/domain"
)

func TestIssuePair(t *testing.T) {
	codec := NewCodec("test-secret")
	issuer := NewIssuer(codec, "http://example.test", 15*time.Minute, 7*24*time.Hour)
	principal := &domain.Principal{ID: 7, Username: "alice", DisplayName: "Alice"}
	now := time.Now()

	access, refresh, err := issuer.IssuePair(principal, now)
	require.NoError(t, err)

	accessClaims, err := codec.Decode(access)
	require.NoError(t, err)
	assert.Equal(t, ClassAccess, accessClaims.Class)
	assert.Equal(t, int64(7), accessClaims.Subject.User.ID)
	assert.Equal(t, "http://example.test", accessClaims.Issuer)
	assert.Equal(t, int64(900), accessClaims.ExpiresAt.Unix()-accessClaims.IssuedAt.Unix())

	refreshClaims, err := codec.Decode(refresh)
	require.NoError(t, err)
	assert.Equal(t, ClassRefresh, refreshClaims.Class)
	assert.Equal(t, int64(7), refreshClaims.Subject.User.ID)
	assert.Equal(t, int64(604800), refreshClaims.ExpiresAt.Unix()-refreshClaims.IssuedAt.Unix())

	assert.NotEmpty(t, accessClaims.ID)
	assert.NotEmpty(t, refreshClaims.ID)
	assert.NotEqual(t, accessClaims.ID, refreshClaims.ID)
}

func TestIssueAccess(t *testing.T) {
	codec := NewCodec("test-secret")
	issuer := NewIssuer(codec, "http://example.test", 15*time.Minute, 7*24*time.Hour)
	now := time.Now()

	access, err := issuer.IssueAccess(&domain.Principal{ID: 3}, now)
	require.NoError(t, err)

	claims, err := codec.Decode(access)
	require.NoError(t, err)
	assert.Equal(t, ClassAccess, claims.Class)
	assert.Equal(t, int64(3), claims.Subject.User.ID)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}

func TestIssuerDefaultLifetimes(t *testing.T) {
	issuer := NewIssuer(NewCodec("test-secret"), "http://example.test", 0, 0)

	assert.Equal(t, DefaultAccessTTL, issuer.accessTTL)
	assert.Equal(t, DefaultRefreshTTL, issuer.refreshTTL)
	assert.Equal(t, DefaultAccessTTL, issuer.AccessTTL())
}

func TestExpiresAfterIssuedAt(t *testing.T) {
	codec := NewCodec("test-secret")
	issuer := NewIssuer(codec, "http://example.test", time.Second, time.Second)
	now := time.Now()

	access, refresh, err := issuer.IssuePair(&domain.Principal{ID: 1}, now)
	require.NoError(t, err)

	for _, tokenStr := range []string{access, refresh} {
		claims, err := codec.Decode(tokenStr)
		require.NoError(t, err)
		assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
	}
}
