package middleware

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/internal/api/presenters"
	"Recipe-Catalog/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		SessionAuth(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		sessions *session.Store
	}
)

func NewMiddleware(sessions *session.Store) Middleware {
	return &middleware{sessions: sessions}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AuthMiddleware authenticates API clients with a Bearer token.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, username, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals("username", username)
		return c.Next()
	}
}

// SessionAuth gates the browser form flows: a logged-in session cookie or a
// Bearer token passes; anything else is bounced to the login page with a
// flash notice.
func (m *middleware) SessionAuth(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := m.sessions.Get(c)
		if err == nil {
			if userID, ok := sess.Get("user_id").(string); ok && userID != "" {
				username, _ := sess.Get("username").(string)
				c.Locals("user_id", userID)
				c.Locals("username", username)
				return c.Next()
			}
		}

		if authHeader := c.Get("Authorization"); authHeader != "" {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if userID, username, err := jwtService.GetUserIDByToken(token); err == nil {
				c.Locals("user_id", userID)
				c.Locals("username", username)
				return c.Next()
			}
		}

		AddFlash(c, m.sessions, domain.MessageLoginRequired, "danger")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
}
