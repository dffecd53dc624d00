package document

import (
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

func (d *Controller) Delete(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok || session.Role != model.RoleAdmin {
		return fiber.ErrForbidden
	}

	document, err := d.idx.Document(c.FormValue("slug"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	fullPath := filepath.Join(d.config.LibraryPath, document.ID)
	if err := d.idx.RemoveFile(fullPath); err != nil {
		log.Printf("error removing document %s from index: %s\n", document.ID, err)
		return fiber.ErrInternalServerError
	}
	if err := d.appFs.Remove(fullPath); err != nil {
		log.Printf("error removing file %s: %s\n", fullPath, err)
		return fiber.ErrInternalServerError
	}

	if err := d.favRepository.RemoveDocument(document.ID); err != nil {
		log.Printf("error removing document %s from favorites: %s\n", document.ID, err)
	}
	if err := d.summaryRepository.RemoveDocument(document.ID); err != nil {
		log.Printf("error removing document %s summary: %s\n", document.ID, err)
	}
	if err := d.shareRepository.RemoveDocument(document.ID); err != nil {
		log.Printf("error removing document %s share links: %s\n", document.ID, err)
	}

	return nil
}
