package video

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

type videosRepository interface {
	List(page int, resultsPerPage int) (result.Paginated[[]model.Video], error)
	FindByID(id uint) (*model.Video, error)
	Create(video *model.Video) error
	Delete(id uint) error
}

type Controller struct {
	repository videosRepository
	policy     *bluemonday.Policy
}

func NewController(repository videosRepository) *Controller {
	return &Controller{
		repository: repository,
		policy:     bluemonday.StrictPolicy(),
	}
}
