package video

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

func (v *Controller) Delete(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok || session.Role != model.RoleAdmin {
		return fiber.ErrForbidden
	}

	id, err := strconv.Atoi(c.FormValue("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := v.repository.Delete(uint(id)); err != nil {
		return fiber.ErrInternalServerError
	}
	return nil
}
