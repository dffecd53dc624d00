package index

import (
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
)

// Reader defines a set of reading operations over an index
type Reader interface {
	Search(keywords string, page, resultsPerPage int) (result.Paginated[[]Document], error)
	Latest(resultsPerPage int) ([]Document, error)
	Document(slug string) (Document, error)
	Documents(ids []string) ([]Document, error)
	Count() (uint64, error)
	Close() error
}
