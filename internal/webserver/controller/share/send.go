package share

import (
	"fmt"
	"net/mail"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

// Send emails a share link to the posted address
func (s *Controller) Send(c *fiber.Ctx) error {
	if _, ok := c.Locals("Session").(model.User); !ok {
		return fiber.ErrForbidden
	}

	address := c.FormValue("email")
	if _, err := mail.ParseAddress(address); err != nil {
		return fiber.ErrBadRequest
	}

	link, err := s.repository.FindByUuid(c.FormValue("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if link == nil || link.Expired() {
		return fiber.ErrBadRequest
	}

	documents, err := s.idx.Documents([]string{link.Path})
	if err != nil || len(documents) == 0 {
		return fiber.ErrInternalServerError
	}

	subject := fmt.Sprintf("A flipbook has been shared with you: %s", documents[0].Title)
	body := fmt.Sprintf("Read %q here: %s", documents[0].Title, s.shareURL(c, link.Uuid))

	if err := s.sender.Send(address, subject, body); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.RedirectBack(fmt.Sprintf("/%s/shares", c.Params("lang", "en")))
}
