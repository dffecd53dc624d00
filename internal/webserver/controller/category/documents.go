package category

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/jwtclaimsreader"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/view"
)

// Documents lists the library documents filed under the passed category
func (a *Controller) Documents(c *fiber.Ctx) error {
	category, err := a.repository.FindBySlug(c.Params("slug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if category == nil {
		return fiber.ErrNotFound
	}

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	documents, err := a.idx.Search(fmt.Sprintf("Category:%s", category.Slug), page, model.ResultsPerPage)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("category/documents", fiber.Map{
		"Title":     category.Name,
		"Category":  category,
		"Results":   documents.Hits(),
		"Total":     documents.TotalHits(),
		"Paginator": view.Pagination(model.MaxPagesNavigator, documents, nil),
		"Session":   jwtclaimsreader.SessionData(c),
	}, "layout")
}
