package index

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
)

// Search looks for documents which match with the passed keywords.
// Returns a maximum of <resultsPerPage> documents, offset by <page>.
func (b *BleveIndexer) Search(keywords string, page, resultsPerPage int) (result.Paginated[[]Document], error) {
	for _, prefix := range []string{"Authors:", "Title:", "Category:"} {
		if strings.HasPrefix(strings.Trim(keywords, " "), prefix) {
			query := bleve.NewQueryStringQuery(keywords)

			return b.runPaginatedQuery(query, page, resultsPerPage)
		}
	}

	splitted := strings.Split(strings.TrimSpace(keywords), " ")

	var titleQueries, authorQueries, descriptionQueries []query.Query
	for _, keyword := range splitted {
		if keyword == "" {
			continue
		}
		titleQuery := bleve.NewMatchQuery(keyword)
		titleQuery.SetField("Title")
		titleQueries = append(titleQueries, titleQuery)

		authorQuery := bleve.NewMatchQuery(keyword)
		authorQuery.SetField("Authors")
		authorQueries = append(authorQueries, authorQuery)

		descriptionQuery := bleve.NewMatchQuery(keyword)
		descriptionQuery.SetField("Description")
		descriptionQueries = append(descriptionQueries, descriptionQuery)
	}

	titleCompoundQuery := bleve.NewConjunctionQuery(titleQueries...)
	titleCompoundQuery.SetBoost(10)
	authorCompoundQuery := bleve.NewConjunctionQuery(authorQueries...)
	authorCompoundQuery.SetBoost(10)
	descriptionCompoundQuery := bleve.NewConjunctionQuery(descriptionQueries...)

	compound := bleve.NewDisjunctionQuery(titleCompoundQuery, authorCompoundQuery, descriptionCompoundQuery)
	return b.runPaginatedQuery(compound, page, resultsPerPage)
}

// Latest returns the <resultsPerPage> most recently indexed documents.
func (b *BleveIndexer) Latest(resultsPerPage int) ([]Document, error) {
	query := bleve.NewMatchAllQuery()
	res, err := b.runPaginatedQuery(query, 1, resultsPerPage)
	if err != nil {
		return nil, err
	}
	return res.Hits(), nil
}

// Documents returns the indexed documents with the passed IDs,
// in the order the index returns them.
func (b *BleveIndexer) Documents(ids []string) ([]Document, error) {
	if len(ids) == 0 {
		return []Document{}, nil
	}
	query := bleve.NewDocIDQuery(ids)
	searchOptions := bleve.NewSearchRequestOptions(query, len(ids), 0, false)
	searchOptions.Fields = []string{"*"}
	searchResult, err := b.idx.Search(searchOptions)
	if err != nil {
		return nil, err
	}

	documents := make([]Document, len(searchResult.Hits))
	for i, hit := range searchResult.Hits {
		documents[i] = hydrateDocument(hit)
	}
	return documents, nil
}

// Document returns the document identified by the passed slug.
func (b *BleveIndexer) Document(slug string) (Document, error) {
	query := bleve.NewTermQuery(slug)
	query.SetField("Slug")
	searchOptions := bleve.NewSearchRequestOptions(query, 1, 0, false)
	searchOptions.Fields = []string{"*"}
	searchResult, err := b.idx.Search(searchOptions)
	if err != nil {
		return Document{}, err
	}
	if searchResult.Total == 0 {
		return Document{}, fmt.Errorf("no document with slug %s", slug)
	}

	return hydrateDocument(searchResult.Hits[0]), nil
}

func (b *BleveIndexer) runPaginatedQuery(query query.Query, page, resultsPerPage int) (result.Paginated[[]Document], error) {
	var res result.Paginated[[]Document]
	if page < 1 {
		page = 1
	}

	searchOptions := bleve.NewSearchRequestOptions(query, resultsPerPage, (page-1)*resultsPerPage, false)
	searchOptions.SortBy([]string{"-_score", "Title"})
	searchOptions.Fields = []string{"*"}
	searchResult, err := b.idx.Search(searchOptions)
	if err != nil {
		return res, err
	}
	if searchResult.Total == 0 {
		return res, nil
	}

	hits := make([]Document, len(searchResult.Hits))
	for i, hit := range searchResult.Hits {
		hits[i] = hydrateDocument(hit)
	}

	return result.NewPaginated(resultsPerPage, page, int(searchResult.Total), hits), nil
}

func hydrateDocument(hit *search.DocumentMatch) Document {
	doc := Document{
		ID: hit.ID,
	}
	doc.Title = stringField(hit.Fields["Title"])
	doc.Authors = stringSliceField(hit.Fields["Authors"])
	doc.Description = template.HTML(stringField(hit.Fields["Description"]))
	doc.Year = stringField(hit.Fields["Year"])
	doc.Type = stringField(hit.Fields["Type"])
	doc.Slug = stringField(hit.Fields["Slug"])
	doc.Category = stringField(hit.Fields["Category"])
	if pages, ok := hit.Fields["Pages"].(float64); ok {
		doc.Pages = int(pages)
	}
	return doc
}

func stringField(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

// Bleve stores single-element string slices as plain strings,
// so both shapes have to be handled when reading hits back.
func stringSliceField(value interface{}) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []interface{}:
		values := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				values = append(values, s)
			}
		}
		return values
	}
	return nil
}

// Count returns the number of indexed documents
func (b *BleveIndexer) Count() (uint64, error) {
	return b.idx.DocCount()
}
