package viewer

import (
	"bytes"
	"image/png"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Page answers with the rasterized bitmap of the requested page. Pages
// render on first request and come from the session cache afterwards; a
// page which fails to render answers not found without affecting its
// siblings.
func (v *Controller) Page(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(c.Params("page"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	page, err := session.Page(number)
	if err != nil {
		log.Println(err)
		return fiber.ErrNotFound
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, page.Image); err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	c.Set("Cache-Control", "private, max-age=3600")
	c.Response().Header.Set(fiber.HeaderContentType, "image/png")
	c.Response().BodyWriter().Write(buf.Bytes())
	return nil
}

// Overlay answers with the aligned text overlay of the requested page,
// positioned in bitmap pixel coordinates.
func (v *Controller) Overlay(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(c.Params("page"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	page, err := session.Page(number)
	if err != nil {
		log.Println(err)
		return fiber.ErrNotFound
	}

	return c.JSON(fiber.Map{
		"pageNumber": page.PageNumber,
		"width":      page.Width,
		"height":     page.Height,
		"overlay":    page.Overlay,
	})
}

// Thumbnail reports the requested page's thumbnail visible and answers
// with it, rendering it the first time it scrolls into view.
func (v *Controller) Thumbnail(c *fiber.Ctx) error {
	session, err := v.session(c)
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(c.Params("page"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	thumbnail, err := session.Thumbnail(number)
	if err != nil {
		log.Println(err)
		return fiber.ErrNotFound
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumbnail); err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	c.Set("Cache-Control", "private, max-age=3600")
	c.Response().Header.Set(fiber.HeaderContentType, "image/png")
	c.Response().BodyWriter().Write(buf.Bytes())
	return nil
}
