package share

import (
	"github.com/gofiber/fiber/v2"
)

// View renders the document behind a share link. It is reachable without
// a session: the link itself is the capability. Expired links answer
// with not found.
func (s *Controller) View(c *fiber.Ctx) error {
	link, err := s.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if link == nil || link.Expired() {
		return fiber.ErrNotFound
	}

	documents, err := s.idx.Documents([]string{link.Path})
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if len(documents) == 0 {
		return fiber.ErrNotFound
	}

	return c.Render("share/view", fiber.Map{
		"Title":    documents[0].Title,
		"Document": documents[0],
		"Uuid":     link.Uuid,
	}, "layout")
}
