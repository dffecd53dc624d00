package video

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/jwtclaimsreader"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/view"
)

func (v *Controller) List(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	videos, err := v.repository.List(page, model.ResultsPerPage)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("video/list", fiber.Map{
		"Title":     "Videos",
		"Videos":    videos.Hits(),
		"Paginator": view.Pagination(model.MaxPagesNavigator, videos, nil),
		"Session":   jwtclaimsreader.SessionData(c),
	}, "layout")
}
