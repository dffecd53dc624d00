package category

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

func (a *Controller) Update(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok || session.Role != model.RoleAdmin {
		return fiber.ErrForbidden
	}

	category, err := a.repository.FindBySlug(c.Params("slug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if category == nil {
		return fiber.ErrNotFound
	}

	category.Name = c.FormValue("name")
	if errs := category.Validate(); len(errs) > 0 {
		return fiber.ErrBadRequest
	}

	if err := a.repository.Update(category); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/%s/categories", c.Params("lang")))
}
