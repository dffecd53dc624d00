package share

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/view"
)

func (s *Controller) List(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok {
		return fiber.ErrForbidden
	}

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	links, err := s.repository.List(int(session.ID), page, model.ResultsPerPage)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("share/list", fiber.Map{
		"Title":     "Share links",
		"Links":     links.Hits(),
		"Paginator": view.Pagination(model.MaxPagesNavigator, links, nil),
		"Session":   session,
	}, "layout")
}

// Delete revokes one of the current user's share links
func (s *Controller) Delete(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok {
		return fiber.ErrForbidden
	}

	link, err := s.repository.FindByUuid(c.FormValue("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if link == nil {
		return fiber.ErrNotFound
	}
	if link.UserID != int(session.ID) && session.Role != model.RoleAdmin {
		return fiber.ErrForbidden
	}

	if err := s.repository.Delete(link.Uuid); err != nil {
		return fiber.ErrInternalServerError
	}
	return nil
}
