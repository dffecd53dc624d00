package viewer

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/document"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/jwtclaimsreader"
)

// Reader renders the viewer page for the document with the passed slug
func (v *Controller) Reader(c *fiber.Ctx) error {
	doc, err := v.idx.Document(c.Params("slug"))
	if err != nil {
		return fiber.ErrNotFound
	}

	return c.Render("document/reader", fiber.Map{
		"Title":    doc.Title,
		"Document": doc,
		"Session":  jwtclaimsreader.SessionData(c),
	}, "layout")
}

// Open starts a reading session over the document with the passed slug
// and answers with its identifier and initial state. A document whose
// bytes cannot be decoded is terminal: no session is created.
func (v *Controller) Open(c *fiber.Ctx) error {
	path, err := v.documentPath(c.Params("slug"))
	if err != nil {
		return fiber.ErrNotFound
	}

	id, session, err := v.sessions.Open(path)
	if err != nil {
		var decodeErr *document.DecodeError
		if errors.As(err, &decodeErr) {
			return fiber.ErrUnprocessableEntity
		}
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"id":    id,
		"state": state(session),
	})
}

// Close tears the session down, cancelling auto-play and releasing the
// document
func (v *Controller) Close(c *fiber.Ctx) error {
	v.sessions.Close(c.Params("id"))
	return nil
}

// State answers with the current flip state of the session
func (v *Controller) State(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}
	return c.JSON(state(session))
}
