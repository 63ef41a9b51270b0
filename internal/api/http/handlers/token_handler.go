package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pushpa2611/api-auth-gateway/internal/api/dto"
	"github.com/Pushpa2611/api-auth-gateway/internal/auth"
	"github.com/Pushpa2611/api-auth-gateway/internal/service"
	apperrors "github.com/Pushpa2611/api-auth-gateway/pkg/util"
)

// TokenHandler exposes the token lifecycle endpoints.
type TokenHandler struct {
	auth *service.AuthService
}

// NewTokenHandler constructs handler.
func NewTokenHandler(authService *service.AuthService) *TokenHandler {
	return &TokenHandler{auth: authService}
}

// Token handles POST /api/v1/token.
func (h *TokenHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	principal, pair, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         principal.DisplayName,
	})
}

// Refresh handles POST /api/v1/refresh.
func (h *TokenHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.RefreshToken == "" {
		return apperrors.NewValidationError("refresh_token required", nil)
	}

	access, expiresIn, err := h.auth.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(dto.RefreshResponse{AccessToken: access, ExpiresIn: expiresIn})
}

// Revoke handles POST /api/v1/revoke. The route is gated, so the claims of
// the presented bearer token are already bound to the request.
func (h *TokenHandler) Revoke(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewJWTRequired()
	}
	if err := h.auth.Revoke(c.Context(), claims); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"revoked": true})
}
