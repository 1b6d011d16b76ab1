// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"strings"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// Identity is the caller resolved from the external identity provider's
// token: an opaque user id plus the primary email address. The email is
// the join key to Seller records. Name and Picture are optional profile
// claims used only to seed a fresh Seller row.
type Identity struct {
	UserID  string
	Email   string
	Name    string
	Picture string
}

const identityKey = "identity"

// IdentityFrom returns the authenticated identity stored on the request,
// or nil for anonymous callers.
func IdentityFrom(c *fiber.Ctx) *Identity {
	if ident, ok := c.Locals(identityKey).(*Identity); ok {
		return ident
	}
	return nil
}

// AuthRequired is a middleware that enforces authentication for protected routes.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authorization header required",
		})
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid authorization header format",
		})
	}

	ident, err := parseIdentity(parts[1])
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Locals(identityKey, ident)
	return c.Next()
}

// OptionalAuth resolves the identity when a token is present but never
// rejects the request. Read endpoints use it so anonymous callers see
// public data and authenticated callers see their own state.
func OptionalAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Next()
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Next()
	}
	if ident, err := parseIdentity(parts[1]); err == nil {
		c.Locals(identityKey, ident)
	}
	return c.Next()
}

// parseIdentity validates the provider-issued token and extracts the
// subject (provider user id) and email claims.
func parseIdentity(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token structure - missing subject")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token structure - missing email")
	}

	ident := &Identity{
		UserID: sub,
		Email:  strings.ToLower(email),
	}
	// Optional profile claims
	if name, ok := claims["name"].(string); ok {
		ident.Name = strings.TrimSpace(name)
	}
	if picture, ok := claims["picture"].(string); ok {
		ident.Picture = picture
	}
	return ident, nil
}
