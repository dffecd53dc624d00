package document

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
)

func (d *Controller) Download(c *fiber.Ctx) error {
	document, err := d.idx.Document(c.Params("slug"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	fullPath := filepath.Join(d.config.LibraryPath, document.ID)

	if _, err := d.appFs.Stat(fullPath); err != nil {
		return fiber.ErrNotFound
	}

	output, err := afero.ReadFile(d.appFs, fullPath)
	if err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	c.Response().Header.Set(fiber.HeaderContentType, "application/pdf")
	c.Response().Header.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=\"%s\"", filepath.Base(document.ID)))
	c.Response().BodyWriter().Write(output)
	return nil
}
