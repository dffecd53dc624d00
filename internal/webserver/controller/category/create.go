package category

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

func (a *Controller) Create(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok || session.Role != model.RoleAdmin {
		return fiber.ErrForbidden
	}

	category := model.Category{
		Name: c.FormValue("name"),
	}
	category.Slug = slug.Make(category.Name)

	if errs := category.Validate(); len(errs) > 0 {
		return fiber.ErrBadRequest
	}

	if existing, err := a.repository.FindBySlug(category.Slug); err != nil {
		return fiber.ErrInternalServerError
	} else if existing != nil {
		return fiber.ErrConflict
	}

	if err := a.repository.Create(&category); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/%s/categories", c.Params("lang")))
}
