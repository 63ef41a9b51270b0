package token

import (
	jwt "github.com/golang-jwt/jwt/v5"
)

// Class distinguishes the two token kinds. A token of the wrong class must
// never be accepted where the other is expected.
type Class string

const (
	ClassAccess  Class = "access"
	ClassRefresh Class = "refresh"
)

// SubjectUser carries the principal reference inside the subject payload.
type SubjectUser struct {
	ID int64 `json:"id"`
}

// Subject is the nested subject structure signed into every token.
type Subject struct {
	User SubjectUser `json:"user"`
}

// Claims describes the JWT payload. The wire layout is fixed: class under
// "type", subject under "data.user.id", plus the registered iss/iat/exp/jti.
type Claims struct {
	Class   Class   `json:"type"`
	Subject Subject `json:"data"`
	jwt.RegisteredClaims
}
