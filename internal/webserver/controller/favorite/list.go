package favorite

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/view"
)

func (f *Controller) List(c *fiber.Ctx) error {
	session, ok := c.Locals("Session").(model.User)
	if !ok {
		return fiber.ErrForbidden
	}

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	favorites, err := f.repository.Favorites(int(session.ID), page, model.ResultsPerPage)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	documents, err := f.idx.Documents(favorites.Hits())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	for i := range documents {
		documents[i].Favorite = true
	}

	paginated := result.NewPaginated(
		model.ResultsPerPage,
		favorites.Page(),
		favorites.TotalHits(),
		documents,
	)

	return c.Render("favorite/list", fiber.Map{
		"Title":     "Favorites",
		"Results":   documents,
		"Total":     paginated.TotalHits(),
		"Paginator": view.Pagination(model.MaxPagesNavigator, paginated, nil),
		"Session":   session,
	}, "layout")
}
