package token

import (
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every decode failure: bad signature, malformed
// structure, or expiry. Callers cannot tell which occurred; distinguishing
// them would hand an oracle to an attacker probing tokens.
var ErrInvalidToken = errors.New("invalid token")

// Codec signs and opens token claim sets with a single shared secret and a
// single signing algorithm (HS256). Only the codec constructs or opens wire
// tokens; everything else treats them as opaque strings.
type Codec struct {
	secret []byte
}

// NewCodec builds a codec around the shared signing secret. The secret is
// injected here once and immutable afterwards.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode serializes and signs the claims. It fails only on unserializable
// input, which is a programming error rather than a runtime condition.
func (c *Codec) Encode(claims *Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Decode verifies the signature and structure and checks expiry in one
// step, returning the claims or ErrInvalidToken.
func (c *Codec) Decode(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
