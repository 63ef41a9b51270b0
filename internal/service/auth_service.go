package service

import (
	"context"
	"errors"
	"time"

	"github.com/Pushpa2611/api-auth-gateway/internal/config"
	"github.com/Pushpa2611/api-auth-gateway/internal/domain"
	"github.com/Pushpa2611/api-auth-gateway/internal/identity"
	"github.com/Pushpa2611/api-auth-gateway/internal/revocation"
	"github.com/Pushpa2611/api-auth-gateway/internal/token"
	apperrors "github.com/Pushpa2611/api-auth-gateway/pkg/util"
)

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// AuthService coordinates the token lifecycle: issuance after credential
// verification, refresh, and optional revocation.
type AuthService struct {
	verifier identity.Verifier
	store    identity.Store
	codec    *token.Codec
	issuer   *token.Issuer
	revoked  revocation.Store
}

// AuthDependencies encapsulates collaborator requirements for the service.
// Revoked may be nil, in which case the gateway stays fully stateless and
// issued tokens cannot be invalidated before natural expiry.
type AuthDependencies struct {
	Store    identity.Store
	Verifier identity.Verifier
	Revoked  revocation.Store
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	codec := token.NewCodec(cfg.Auth.JWTSecret)
	return &AuthService{
		verifier: deps.Verifier,
		store:    deps.Store,
		codec:    codec,
		issuer:   token.NewIssuer(codec, cfg.App.URL, cfg.Auth.AccessTokenTTL(), cfg.Auth.RefreshTokenTTL()),
		revoked:  deps.Revoked,
	}
}

// Login verifies credentials and mints an access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Principal, *TokenPair, error) {
	principal, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return nil, nil, apperrors.NewInvalidCredentials()
	}

	access, refresh, err := s.issuer.IssuePair(principal, time.Now())
	if err != nil {
		return nil, nil, apperrors.NewInternalError(err)
	}

	return principal, &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.issuer.AccessTTL().Seconds()),
	}, nil
}

// Refresh validates a presented refresh token and mints a new access token.
// The refresh token itself is not rotated; it stays valid until its own
// expiry and may be reused.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, int, error) {
	claims, err := s.codec.Decode(refreshToken)
	if err != nil {
		return "", 0, apperrors.NewInvalidRefreshToken()
	}

	// Order matters: a well-formed token of the wrong class must be
	// rejected even though it decodes successfully.
	if claims.Class != token.ClassRefresh {
		return "", 0, apperrors.NewInvalidTokenType()
	}

	if s.revoked != nil {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return "", 0, apperrors.NewInternalError(err)
		}
		if revoked {
			return "", 0, apperrors.NewTokenRevoked()
		}
	}

	principal, err := s.store.GetByID(ctx, claims.Subject.User.ID)
	if err != nil {
		if errors.Is(err, identity.ErrPrincipalNotFound) {
			return "", 0, apperrors.NewInvalidUser()
		}
		return "", 0, apperrors.NewInternalError(err)
	}

	access, err := s.issuer.IssueAccess(principal, time.Now())
	if err != nil {
		return "", 0, apperrors.NewInternalError(err)
	}
	return access, int(s.issuer.AccessTTL().Seconds()), nil
}

// Revoke denylists the token behind the given claims until its natural
// expiry. Fails when no revocation store is configured.
func (s *AuthService) Revoke(ctx context.Context, claims *token.Claims) error {
	if s.revoked == nil {
		return apperrors.NewRevocationUnavailable()
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.revoked.Revoke(ctx, claims.ID, ttl); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// Codec exposes the underlying token codec for middleware usage.
func (s *AuthService) Codec() *token.Codec {
	return s.codec
}
