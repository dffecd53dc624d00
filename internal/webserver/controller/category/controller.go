package category

import (
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

type categoriesRepository interface {
	List(page int, resultsPerPage int) (result.Paginated[[]model.Category], error)
	All() ([]model.Category, error)
	FindBySlug(slug string) (*model.Category, error)
	Create(category *model.Category) error
	Update(category *model.Category) error
	Delete(slug string) error
}

type idxReader interface {
	Search(keywords string, page, resultsPerPage int) (result.Paginated[[]index.Document], error)
}

type Controller struct {
	repository categoriesRepository
	idx        idxReader
}

func NewController(repository categoriesRepository, idx idxReader) *Controller {
	return &Controller{
		repository: repository,
		idx:        idx,
	}
}
