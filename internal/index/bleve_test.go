package index_test

import (
	"testing"

	"github.com/blevesearch/bleve/v2"
	"github.com/spf13/afero"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/metadata"
)

func TestIndexAndSearch(t *testing.T) {
	for _, tcase := range testCases() {
		t.Run(tcase.name, func(t *testing.T) {
			idx, fs := newTestIndexer(t, tcase.mockedMeta)

			afero.WriteFile(fs, tcase.filename, []byte(""), 0644)

			if err := idx.AddLibrary(fs, 1); err != nil {
				t.Errorf("Error indexing: %s", err.Error())
			}
			res, err := idx.Search(tcase.search, 1, 10)
			if err != nil {
				t.Errorf("Error searching: %s", err.Error())
			}
			if res.TotalHits() != tcase.expectedHits {
				t.Fatalf("Expected %d hits, got %d", tcase.expectedHits, res.TotalHits())
			}
			if tcase.expectedHits == 0 {
				return
			}
			if res.Hits()[0].Title != tcase.mockedMeta.Title {
				t.Errorf("Expected title %s, got %s", tcase.mockedMeta.Title, res.Hits()[0].Title)
			}
		})
	}
}

func TestAddAndRemoveFile(t *testing.T) {
	meta := metadata.Metadata{
		Title:   "The Moonlit Atlas",
		Authors: []string{"Irene Vallejo"},
	}
	idx, fs := newTestIndexer(t, meta)
	afero.WriteFile(fs, "lib/atlas.pdf", []byte(""), 0644)

	if err := idx.AddFile("lib/atlas.pdf"); err != nil {
		t.Fatalf("Error indexing file: %s", err.Error())
	}
	count, err := idx.Count()
	if err != nil {
		t.Fatalf("Error counting: %s", err.Error())
	}
	if count != 1 {
		t.Errorf("Expected 1 indexed document, got %d", count)
	}

	doc, err := idx.Document("irene-vallejo-the-moonlit-atlas")
	if err != nil {
		t.Fatalf("Error retrieving document by slug: %s", err.Error())
	}
	if doc.ID != "atlas.pdf" {
		t.Errorf("Expected document ID atlas.pdf, got %s", doc.ID)
	}
	if len(doc.Authors) != 1 || doc.Authors[0] != "Irene Vallejo" {
		t.Errorf("Expected authors [Irene Vallejo], got %v", doc.Authors)
	}

	if err := idx.RemoveFile("lib/atlas.pdf"); err != nil {
		t.Fatalf("Error removing file: %s", err.Error())
	}
	count, _ = idx.Count()
	if count != 0 {
		t.Errorf("Expected 0 indexed documents after removal, got %d", count)
	}
}

func TestIgnoresUnknownExtensions(t *testing.T) {
	idx, fs := newTestIndexer(t, metadata.Metadata{Title: "Ignored"})
	afero.WriteFile(fs, "lib/notes.txt", []byte(""), 0644)

	if err := idx.AddLibrary(fs, 1); err != nil {
		t.Fatalf("Error indexing: %s", err.Error())
	}
	count, _ := idx.Count()
	if count != 0 {
		t.Errorf("Expected 0 indexed documents, got %d", count)
	}
}

func newTestIndexer(t *testing.T, meta metadata.Metadata) (*index.BleveIndexer, afero.Fs) {
	t.Helper()

	indexMem, err := bleve.NewMemOnly(index.Mapping())
	if err != nil {
		t.Fatalf("Error initialising index")
	}

	mockMetadataReaders := map[string]metadata.Reader{
		".pdf": metadata.ReaderMock{
			MetadataFake: func(file string) (metadata.Metadata, error) {
				return meta, nil
			},
		},
	}

	fs := afero.NewMemMapFs()
	fs.MkdirAll("lib", 0755)

	return index.NewBleve(indexMem, "lib", mockMetadataReaders), fs
}

type testCase struct {
	name         string
	filename     string
	mockedMeta   metadata.Metadata
	search       string
	expectedHits int
}

func testCases() []testCase {
	return []testCase{
		{
			"Look for a term without accent must return accented results",
			"lib/doc1.pdf",
			metadata.Metadata{
				Title:       "Test A",
				Authors:     []string{"Pérez"},
				Description: "Just test metadata",
			},
			"perez",
			1,
		},
		{
			"Look for a term without circumflex accent must return circumflexed results",
			"lib/doc2.pdf",
			metadata.Metadata{
				Title:       "Test B",
				Authors:     []string{"Benoît"},
				Description: "Just test metadata",
			},
			"benoit",
			1,
		},
		{
			"Look for several not exact terms must return a result with all those terms, even if there is something in between",
			"lib/doc3.pdf",
			metadata.Metadata{
				Title:       "Test C",
				Authors:     []string{"Clifford D. Simak"},
				Description: "Just test metadata",
			},
			"clifford simak",
			1,
		},
		{
			"Look for a term not present in any document must return no results",
			"lib/doc4.pdf",
			metadata.Metadata{
				Title:       "Test D",
				Authors:     []string{"James Ellroy"},
				Description: "Just test metadata",
			},
			"dickens",
			0,
		},
		{
			"Look for a term in the description must return the document",
			"lib/doc5.pdf",
			metadata.Metadata{
				Title:       "Test E",
				Authors:     []string{"Ursula K. Le Guin"},
				Description: "An annotated travel journal",
			},
			"journal",
			1,
		},
	}
}
