package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("validation_failed", message, http.StatusBadRequest, details)
}

// NewInvalidCredentials covers every credential-verification failure
// uniformly; the cause (unknown user vs wrong password) is never exposed.
func NewInvalidCredentials() error {
	return NewDomainError("invalid_credentials", "invalid username or password", http.StatusForbidden, nil)
}

// NewJWTRequired is returned when a request carries no usable bearer token.
func NewJWTRequired() error {
	return NewDomainError("jwt_required", "JWT access token required", http.StatusUnauthorized, nil)
}

// NewInvalidToken covers signature, structure, and expiry failures of a
// bearer token without distinguishing them.
func NewInvalidToken() error {
	return NewDomainError("invalid_token", "invalid JWT token", http.StatusForbidden, nil)
}

// NewInvalidAccessToken is returned when a well-formed token of the wrong
// class is presented as a bearer credential.
func NewInvalidAccessToken() error {
	return NewDomainError("invalid_access_token", "access token required", http.StatusForbidden, nil)
}

// NewInvalidRefreshToken covers all decode failures of a presented refresh token.
func NewInvalidRefreshToken() error {
	return NewDomainError("invalid_refresh_token", "invalid refresh token", http.StatusForbidden, nil)
}

// NewInvalidTokenType is returned when the refresh flow receives a token
// that is not refresh-class.
func NewInvalidTokenType() error {
	return NewDomainError("invalid_token_type", "refresh token required", http.StatusForbidden, nil)
}

// NewInvalidUser is returned when a token's subject no longer resolves.
func NewInvalidUser() error {
	return NewDomainError("invalid_user", "invalid user in token", http.StatusForbidden, nil)
}

// NewTokenRevoked is returned when a token's id is on the denylist.
func NewTokenRevoked() error {
	return NewDomainError("token_revoked", "token has been revoked", http.StatusForbidden, nil)
}

// NewRevocationUnavailable is returned when revocation is requested but no
// denylist store is configured.
func NewRevocationUnavailable() error {
	return NewDomainError("revocation_unavailable", "revocation store not configured", http.StatusServiceUnavailable, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "internal_error",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "internal_error",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
