package document

import (
	"github.com/spf13/afero"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/metadata"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

// IdxReaderWriter defines a set of reading and writing operations over an index
type IdxReaderWriter interface {
	Search(keywords string, page, resultsPerPage int) (result.Paginated[[]index.Document], error)
	Latest(resultsPerPage int) ([]index.Document, error)
	Document(slug string) (index.Document, error)
	AddFile(file string) error
	RemoveFile(file string) error
	Count() (uint64, error)
}

type favoritesRepository interface {
	Favorited(userID int, doc index.Document) index.Document
	FavoritePaginatedResult(userID int, results result.Paginated[[]index.Document]) result.Paginated[[]index.Document]
	RemoveDocument(documentPath string) error
}

type summariesRepository interface {
	Get(documentPath string) (*model.DocumentSummary, error)
	Save(documentPath, text string) error
	RemoveDocument(documentPath string) error
}

// Summarizer produces a summary text for a document out of its metadata
type Summarizer interface {
	Summary(title string, authors []string) (string, error)
}

type shareLinksRepository interface {
	RemoveDocument(documentPath string) error
}

type Config struct {
	LibraryPath           string
	HomeDir               string
	CoverMaxWidth         int
	UploadDocumentMaxSize int
}

type Controller struct {
	favRepository     favoritesRepository
	summaryRepository summariesRepository
	shareRepository   shareLinksRepository
	summarizer        Summarizer
	idx               IdxReaderWriter
	config            Config
	metadataReaders   map[string]metadata.Reader
	appFs             afero.Fs
}

func NewController(favRepository favoritesRepository, summaryRepository summariesRepository, shareRepository shareLinksRepository, summarizer Summarizer, idx IdxReaderWriter, metadataReaders map[string]metadata.Reader, appFs afero.Fs, cfg Config) *Controller {
	return &Controller{
		favRepository:     favRepository,
		summaryRepository: summaryRepository,
		shareRepository:   shareRepository,
		summarizer:        summarizer,
		idx:               idx,
		config:            cfg,
		metadataReaders:   metadataReaders,
		appFs:             appFs,
	}
}
