package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pushpa2611/api-auth-gateway/internal/domain"
)

type memStore struct {
	principals map[string]*domain.Principal
}

func (m *memStore) GetByID(_ context.Context, id int64) (*domain.Principal, error) {
	for _, p := range m.principals {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrPrincipalNotFound
}

func (m *memStore) GetByUsername(_ context.Context, username string) (*domain.Principal, error) {
	if p, ok := m.principals[username]; ok {
		return p, nil
	}
	return nil, ErrPrincipalNotFound
}

func newMemStore(t *testing.T) *memStore {
	t.Helper()
	hash, err := HashPassword("correct", bcrypt.MinCost)
	require.NoError(t, err)

	return &memStore{principals: map[string]*domain.Principal{
		"alice": {ID: 1, Username: "alice", DisplayName: "Alice", PasswordHash: hash, Status: domain.PrincipalStatusActive},
		"mallory": {ID: 2, Username: "mallory", DisplayName: "Mallory", PasswordHash: hash,
			Status: domain.PrincipalStatusSuspended},
	}}
}

func TestVerifySuccess(t *testing.T) {
	verifier := NewVerifier(newMemStore(t))

	principal, err := verifier.Verify(context.Background(), "alice", "correct")
	require.NoError(t, err)
	assert.Equal(t, int64(1), principal.ID)
	assert.Equal(t, "Alice", principal.DisplayName)
}

func TestVerifyFailuresAreUniform(t *testing.T) {
	verifier := NewVerifier(newMemStore(t))

	cases := map[string]struct {
		username string
		password string
	}{
		"wrong password": {"alice", "wrong"},
		"unknown user":   {"nobody", "correct"},
		"suspended":      {"mallory", "correct"},
		"empty password": {"alice", ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			principal, err := verifier.Verify(context.Background(), tc.username, tc.password)
			assert.Nil(t, principal)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret"))
	assert.Error(t, ComparePassword(hash, "other"))
}
