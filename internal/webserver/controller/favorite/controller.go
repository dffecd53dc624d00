package favorite

import (
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
)

type favoritesRepository interface {
	Favorites(userID int, page int, resultsPerPage int) (result.Paginated[[]string], error)
	Favorite(userID int, documentPath string) error
	Remove(userID int, documentPath string) error
}

type idxReader interface {
	Document(slug string) (index.Document, error)
	Documents(ids []string) ([]index.Document, error)
}

type Controller struct {
	repository favoritesRepository
	idx        idxReader
}

func NewController(repository favoritesRepository, idx idxReader) *Controller {
	return &Controller{
		repository: repository,
		idx:        idx,
	}
}
