package category

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/jwtclaimsreader"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/view"
)

func (a *Controller) List(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	categories, err := a.repository.List(page, model.ResultsPerPage)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("category/list", fiber.Map{
		"Title":      "Categories",
		"Categories": categories.Hits(),
		"Paginator":  view.Pagination(model.MaxPagesNavigator, categories, nil),
		"Session":    jwtclaimsreader.SessionData(c),
	}, "layout")
}
