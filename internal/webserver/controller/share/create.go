package share

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

// Create generates a share link for the document with the posted slug.
// An optional number of days limits the lifetime of the link.
func (s *Controller) Create(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok {
		return fiber.ErrForbidden
	}

	document, err := s.idx.Document(c.FormValue("slug"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	link := model.ShareLink{
		Uuid:   uuid.NewString(),
		Path:   document.ID,
		UserID: int(session.ID),
	}

	if days, err := strconv.Atoi(c.FormValue("days")); err == nil && days > 0 {
		link.ExpiresAt = time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour)
	}

	if err := s.repository.Create(&link); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"uuid": link.Uuid,
		"url":  s.shareURL(c, link.Uuid),
	})
}
