package document

import (
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/slices"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

func (d *Controller) UploadForm(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok || session.Role != model.RoleAdmin {
		return fiber.ErrForbidden
	}

	return c.Render("document/upload", fiber.Map{
		"Title":   "Upload document",
		"Session": session,
	}, "layout")
}

func (d *Controller) Upload(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok || session.Role != model.RoleAdmin {
		return fiber.ErrForbidden
	}

	file, err := c.FormFile("filename")
	if err != nil {
		return fiber.ErrBadRequest
	}

	allowedTypes := []string{"application/pdf"}
	if !slices.Contains(allowedTypes, file.Header.Get("Content-Type")) {
		return c.Status(fiber.StatusBadRequest).Render("document/upload", fiber.Map{
			"Title":   "Upload document",
			"Error":   "Invalid file type",
			"Session": session,
		}, "layout")
	}

	destination := filepath.Join(d.config.LibraryPath, filepath.Base(file.Filename))
	errorMessage := ""
	if err := c.SaveFile(file, destination); err != nil {
		log.Printf("error saving uploaded file %s: %s\n", destination, err)
		errorMessage = "Error uploading document"
	} else if err := d.idx.AddFile(destination); err != nil {
		log.Printf("error indexing uploaded file %s: %s\n", destination, err)
		errorMessage = "Error indexing document"
	}

	if errorMessage != "" {
		return c.Status(fiber.StatusInternalServerError).Render("document/upload", fiber.Map{
			"Title":   "Upload document",
			"Error":   errorMessage,
			"Session": session,
		}, "layout")
	}

	return c.Render("document/upload", fiber.Map{
		"Title":   "Upload document",
		"Message": "Document uploaded",
		"Session": session,
	}, "layout")
}
