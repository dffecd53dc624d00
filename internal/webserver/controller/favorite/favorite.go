package favorite

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

// Favorite marks the document with the posted slug as a favorite of the
// current user
func (f *Controller) Favorite(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok {
		return fiber.ErrForbidden
	}

	document, err := f.idx.Document(c.FormValue("slug"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := f.repository.Favorite(int(session.ID), document.ID); err != nil {
		return fiber.ErrInternalServerError
	}
	return nil
}

// Remove takes the document with the posted slug out of the current
// user's favorites
func (f *Controller) Remove(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok {
		return fiber.ErrForbidden
	}

	document, err := f.idx.Document(c.FormValue("slug"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := f.repository.Remove(int(session.ID), document.ID); err != nil {
		return fiber.ErrInternalServerError
	}
	return nil
}
