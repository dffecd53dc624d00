package document

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/jwtclaimsreader"
)

func (d *Controller) Detail(c *fiber.Ctx) error {
	document, err := d.idx.Document(c.Params("slug"))
	if err != nil {
		return fiber.ErrNotFound
	}

	session := jwtclaimsreader.SessionData(c)
	if session.ID > 0 {
		document = d.favRepository.Favorited(int(session.ID), document)
	}

	summaryText := ""
	if summary, err := d.summaryRepository.Get(document.ID); err == nil && summary != nil {
		summaryText = summary.Summary
	}

	return c.Render("document/detail", fiber.Map{
		"Title":    document.Title,
		"Document": document,
		"Summary":  summaryText,
		"Session":  session,
	}, "layout")
}
