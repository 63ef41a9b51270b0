package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pushpa2611/api-auth-gateway/internal/api/http/handlers"
	"github.com/Pushpa2611/api-auth-gateway/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Namespace string
	Health    *handlers.HealthHandler
	Tokens    *handlers.TokenHandler
	Principal *handlers.PrincipalHandler

	// Gate authenticates every request under the API namespace.
	Gate *auth.Gate

	// Resources lets the hosting system mount its resource routes behind
	// the gate. May be nil.
	Resources func(fiber.Router)
}

// RegisterRoutes wires HTTP routes. Everything under the API namespace is
// gated; the token and refresh endpoints pass through via the gate's own
// exemption list and validate credentials themselves.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group(cfg.Namespace, cfg.Gate.Handle)
	api.Post("/token", cfg.Tokens.Token)
	api.Post("/refresh", cfg.Tokens.Refresh)
	api.Post("/revoke", cfg.Tokens.Revoke)
	api.Get("/me", cfg.Principal.Me)

	if cfg.Resources != nil {
		cfg.Resources(api)
	}
}
