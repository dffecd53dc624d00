package video

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

func (v *Controller) Create(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok || session.Role != model.RoleAdmin {
		return fiber.ErrForbidden
	}

	video := model.Video{
		Title:    v.policy.Sanitize(c.FormValue("title")),
		EmbedURL: v.policy.Sanitize(c.FormValue("embedurl")),
	}

	if errs := video.Validate(); len(errs) > 0 {
		return fiber.ErrBadRequest
	}

	if err := v.repository.Create(&video); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/%s/videos", c.Params("lang")))
}
