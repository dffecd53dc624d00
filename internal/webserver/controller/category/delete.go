package category

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

func (a *Controller) Delete(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok || session.Role != model.RoleAdmin {
		return fiber.ErrForbidden
	}

	if err := a.repository.Delete(c.Params("slug")); err != nil {
		return fiber.ErrInternalServerError
	}

	return nil
}
