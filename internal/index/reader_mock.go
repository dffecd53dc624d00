package index

import (
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
)

type ReaderMock struct {
	SearchFake   func(keywords string, page, resultsPerPage int) (result.Paginated[[]Document], error)
	LatestFake   func(resultsPerPage int) ([]Document, error)
	DocumentFake  func(slug string) (Document, error)
	DocumentsFake func(ids []string) ([]Document, error)
	CountFake    func() (uint64, error)
	CloseFake    func() error
}

func NewReaderMock() *ReaderMock {
	return &ReaderMock{
		SearchFake: func(keywords string, page, resultsPerPage int) (result.Paginated[[]Document], error) {
			return result.Paginated[[]Document]{}, nil
		},
		LatestFake: func(resultsPerPage int) ([]Document, error) {
			return []Document{}, nil
		},
		DocumentFake: func(slug string) (Document, error) {
			return Document{}, nil
		},
		DocumentsFake: func(ids []string) ([]Document, error) {
			return []Document{}, nil
		},
		CountFake: func() (uint64, error) {
			return 0, nil
		},
		CloseFake: func() error {
			return nil
		},
	}
}

func (r *ReaderMock) Search(keywords string, page, resultsPerPage int) (result.Paginated[[]Document], error) {
	return r.SearchFake(keywords, page, resultsPerPage)
}

func (r *ReaderMock) Latest(resultsPerPage int) ([]Document, error) {
	return r.LatestFake(resultsPerPage)
}

func (r *ReaderMock) Document(slug string) (Document, error) {
	return r.DocumentFake(slug)
}

func (r *ReaderMock) Documents(ids []string) ([]Document, error) {
	return r.DocumentsFake(ids)
}

func (r *ReaderMock) Count() (uint64, error) {
	return r.CountFake()
}

func (r *ReaderMock) Close() error {
	return r.CloseFake()
}
