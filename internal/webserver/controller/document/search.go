package document

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/jwtclaimsreader"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/view"
)

func (d *Controller) Search(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	session := jwtclaimsreader.SessionData(c)

	if keywords := c.Query("search"); keywords != "" {
		searchResults, err := d.idx.Search(keywords, page, model.ResultsPerPage)
		if err != nil {
			return fiber.ErrInternalServerError
		}

		if session.ID > 0 {
			searchResults = d.favRepository.FavoritePaginatedResult(int(session.ID), searchResults)
		}

		return c.Render("results", fiber.Map{
			"Keywords":  keywords,
			"Results":   searchResults.Hits(),
			"Total":     searchResults.TotalHits(),
			"Paginator": view.Pagination(model.MaxPagesNavigator, searchResults, map[string]string{"search": keywords}),
			"Title":     "Search results",
			"Session":   session,
		}, "layout")
	}

	count, err := d.idx.Count()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	latest, err := d.idx.Latest(model.ResultsPerPage)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("index", fiber.Map{
		"Count":   count,
		"Latest":  latest,
		"Title":   "Flipbook",
		"Session": session,
	}, "layout")
}
