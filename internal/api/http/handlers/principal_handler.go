package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pushpa2611/api-auth-gateway/internal/api/dto"
	"github.com/Pushpa2611/api-auth-gateway/internal/auth"
	apperrors "github.com/Pushpa2611/api-auth-gateway/pkg/util"
)

// PrincipalHandler exposes the authenticated caller's identity.
type PrincipalHandler struct{}

// NewPrincipalHandler constructs handler.
func NewPrincipalHandler() *PrincipalHandler {
	return &PrincipalHandler{}
}

// Me handles GET /api/v1/me.
func (h *PrincipalHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewJWTRequired()
	}
	return c.JSON(dto.PrincipalResponse{
		ID:          principal.ID,
		Username:    principal.Username,
		DisplayName: principal.DisplayName,
	})
}
