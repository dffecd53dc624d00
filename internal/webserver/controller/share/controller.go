package share

import (
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

type shareLinksRepository interface {
	List(userID int, page int, resultsPerPage int) (result.Paginated[[]model.ShareLink], error)
	FindByUuid(uuid string) (*model.ShareLink, error)
	Create(link *model.ShareLink) error
	Delete(uuid string) error
}

type idxReader interface {
	Document(slug string) (index.Document, error)
	Documents(ids []string) ([]index.Document, error)
}

type Sender interface {
	Send(address, subject, body string) error
}

type Config struct {
	Hostname string
	Port     int
}

type Controller struct {
	repository shareLinksRepository
	idx        idxReader
	sender     Sender
	config     Config
}

func NewController(repository shareLinksRepository, idx idxReader, sender Sender, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		idx:        idx,
		sender:     sender,
		config:     cfg,
	}
}
