package webserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/jwtclaimsreader"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

// RequireAdmin returns HTTP forbidden if the user requesting access
// is not an admin
func RequireAdmin(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok {
		return fiber.ErrForbidden
	}

	if session.Role != model.RoleAdmin {
		return fiber.ErrForbidden
	}

	return c.Next()
}

// AllowIfNotLoggedIn only allows processing the request if there is no session
func AllowIfNotLoggedIn(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:flipbook",
		SuccessHandler: func(c *fiber.Ctx) error {
			return fiber.ErrForbidden
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}

// AlwaysRequireAuthentication redirects the user to the login page if
// they have not logged in
func AlwaysRequireAuthentication(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:flipbook",
		SuccessHandler: func(c *fiber.Ctx) error {
			c.Locals("Session", jwtclaimsreader.SessionData(c))
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Redirect(fmt.Sprintf("/%s/login", chooseBestLanguage(c)))
		},
	})
}

// ConfigurableAuthentication allows to enable or disable authentication on
// routes which may or may not require it
func ConfigurableAuthentication(jwtSecret []byte, requireAuth bool) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:flipbook",
		SuccessHandler: func(c *fiber.Ctx) error {
			c.Locals("Session", jwtclaimsreader.SessionData(c))
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if requireAuth {
				return c.Redirect(fmt.Sprintf("/%s/login", chooseBestLanguage(c)))
			}
			return c.Next()
		},
	})
}
