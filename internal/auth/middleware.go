package auth

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Pushpa2611/api-auth-gateway/internal/domain"
	"github.com/Pushpa2611/api-auth-gateway/internal/identity"
	"github.com/Pushpa2611/api-auth-gateway/internal/revocation"
	"github.com/Pushpa2611/api-auth-gateway/internal/token"
	apperrors "github.com/Pushpa2611/api-auth-gateway/pkg/util"
)

const (
	principalKey = "auth_principal"
	claimsKey    = "auth_claims"
	deniedKey    = "auth_denied"
)

// Case-sensitive literal followed by one whitespace and a non-whitespace
// token. Deliberately unanchored.
var bearerPattern = regexp.MustCompile(`Bearer\s(\S+)`)

// Gate validates bearer tokens on every inbound request and binds the
// resolved principal into request context. It runs upstream of all
// resource handlers and is a pure function of the request's prior state,
// path, Authorization header, current time, the codec secret, and the
// identity store; its only side effect is the principal binding.
type Gate struct {
	codec   *token.Codec
	store   identity.Store
	revoked revocation.Store
	exempt  []string
}

// NewGate constructs the request authenticator. Exempt routes are exactly
// the token-issuance and refresh endpoints under the API namespace; those
// perform their own credential or refresh-token validation internally.
// revoked may be nil.
func NewGate(codec *token.Codec, store identity.Store, revoked revocation.Store, namespace string) *Gate {
	return &Gate{
		codec:   codec,
		store:   store,
		revoked: revoked,
		exempt:  []string{namespace + "/token", namespace + "/refresh"},
	}
}

// Handle evaluates the authentication decision for one request. The steps
// run in strict order and short-circuit on the first rejection.
func (g *Gate) Handle(c *fiber.Ctx) error {
	// A positive decision from an upstream mechanism is never overridden.
	if _, ok := PrincipalFromContext(c); ok {
		return c.Next()
	}

	// Neither is an explicit upstream rejection.
	if err, ok := c.Locals(deniedKey).(error); ok && err != nil {
		return err
	}

	// Substring match against the exempt route prefixes.
	for _, route := range g.exempt {
		if strings.Contains(c.Path(), route) {
			return c.Next()
		}
	}

	matches := bearerPattern.FindStringSubmatch(c.Get(fiber.HeaderAuthorization))
	if matches == nil {
		return apperrors.NewJWTRequired()
	}

	claims, err := g.codec.Decode(matches[1])
	if err != nil {
		// Missing credential was 401 above; an invalid one is 403.
		return apperrors.NewInvalidToken()
	}

	if claims.Class != token.ClassAccess {
		return apperrors.NewInvalidAccessToken()
	}

	if g.revoked != nil {
		revoked, err := g.revoked.IsRevoked(c.Context(), claims.ID)
		if err != nil {
			return apperrors.MapError(err)
		}
		if revoked {
			return apperrors.NewTokenRevoked()
		}
	}

	principal, err := g.store.GetByID(c.Context(), claims.Subject.User.ID)
	if err != nil {
		if errors.Is(err, identity.ErrPrincipalNotFound) {
			return apperrors.NewInvalidUser()
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, principal)
	c.Locals(claimsKey, claims)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated principal bound to the
// request, if any.
func PrincipalFromContext(c *fiber.Ctx) (*domain.Principal, bool) {
	principal, ok := c.Locals(principalKey).(*domain.Principal)
	return principal, ok
}

// ClaimsFromContext retrieves the bearer token claims bound to the request.
func ClaimsFromContext(c *fiber.Ctx) (*token.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*token.Claims)
	return claims, ok
}

// BindPrincipal lets an upstream authentication mechanism mark the request
// as already authenticated before the gate runs.
func BindPrincipal(c *fiber.Ctx, principal *domain.Principal) {
	c.Locals(principalKey, principal)
}

// Deny lets an upstream mechanism record an explicit rejection which the
// gate propagates as-is.
func Deny(c *fiber.Ctx, err error) {
	c.Locals(deniedKey, err)
}
