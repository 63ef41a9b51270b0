package token

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims(now time.Time, ttl time.Duration) *Claims {
	return &Claims{
		Class:   ClassAccess,
		Subject: Subject{User: SubjectUser{ID: 42}},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "http://example.test",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        "jti-1",
		},
	}
}

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")
	now := time.Now()

	encoded, err := codec.Encode(testClaims(now, time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, ClassAccess, decoded.Class)
	assert.Equal(t, int64(42), decoded.Subject.User.ID)
	assert.Equal(t, "http://example.test", decoded.Issuer)
	assert.Equal(t, "jti-1", decoded.ID)
	assert.Equal(t, now.Unix(), decoded.IssuedAt.Unix())
	assert.Equal(t, now.Add(time.Hour).Unix(), decoded.ExpiresAt.Unix())
}

func TestCodecRejectsTamperedSignature(t *testing.T) {
	codec := NewCodec("test-secret")

	encoded, err := codec.Encode(testClaims(time.Now(), time.Hour))
	require.NoError(t, err)

	parts := strings.Split(encoded, ".")
	require.Len(t, parts, 3)

	// Flip each of the first half of the signature characters in turn; the
	// trailing characters are left alone because their low bits are padding
	// in base64url and flipping them may not change the decoded bytes.
	sig := []byte(parts[2])
	for i := 0; i < len(sig)/2; i++ {
		tampered := make([]byte, len(sig))
		copy(tampered, sig)
		if tampered[i] == 'A' {
			tampered[i] = 'Q'
		} else {
			tampered[i] = 'A'
		}

		_, err := codec.Decode(parts[0] + "." + parts[1] + "." + string(tampered))
		assert.ErrorIs(t, err, ErrInvalidToken, "signature byte %d", i)
	}
}

func TestCodecRejectsExpired(t *testing.T) {
	codec := NewCodec("test-secret")

	// Signature is valid; only the expiry has passed.
	encoded, err := codec.Encode(testClaims(time.Now().Add(-2*time.Hour), time.Hour))
	require.NoError(t, err)

	_, err = codec.Decode(encoded)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecRejectsWrongSecret(t *testing.T) {
	encoded, err := NewCodec("secret-a").Encode(testClaims(time.Now(), time.Hour))
	require.NoError(t, err)

	_, err = NewCodec("secret-b").Decode(encoded)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecRejectsWrongAlgorithm(t *testing.T) {
	// "none" and any non-HS256 method must be refused even with a valid
	// payload shape.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims(time.Now(), time.Hour)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewCodec("test-secret").Decode(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecRejectsMalformed(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, tokenStr := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := codec.Decode(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", tokenStr)
	}
}

func TestCodecExpiredAndTamperedIndistinguishable(t *testing.T) {
	codec := NewCodec("test-secret")

	expired, err := codec.Encode(testClaims(time.Now().Add(-2*time.Hour), time.Hour))
	require.NoError(t, err)
	_, errExpired := codec.Decode(expired)

	_, errTampered := codec.Decode(expired + "x")

	assert.Equal(t, errExpired, errTampered)
}
