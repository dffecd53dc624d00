package document

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Summary generates a summary for the document through the configured
// summaries datasource and caches it, answering with the summary text.
// Cached summaries are answered directly without hitting the datasource.
func (d *Controller) Summary(c *fiber.Ctx) error {
	document, err := d.idx.Document(c.Params("slug"))
	if err != nil {
		return fiber.ErrNotFound
	}

	if cached, err := d.summaryRepository.Get(document.ID); err == nil && cached != nil {
		return c.JSON(fiber.Map{"summary": cached.Summary})
	}

	text, err := d.summarizer.Summary(document.Title, document.Authors)
	if err != nil {
		log.Printf("error summarizing document %s: %s\n", document.ID, err)
		return fiber.ErrBadGateway
	}

	if err := d.summaryRepository.Save(document.ID, text); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"summary": text})
}
