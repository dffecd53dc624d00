package textsearch

import (
	"log"
	"sync"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/document"
)

// Index holds the extracted plain text of every page of an open document.
// It is built once per document instance, the first time the search panel
// is opened, and stays immutable afterwards: replacing the document means
// discarding the whole index, never patching it.
type Index struct {
	mu    sync.Mutex
	pages map[int]string
	built bool

	memoQuery   string
	memoExact   bool
	memoResults []Result
	memoValid   bool
}

func NewIndex() *Index {
	return &Index{}
}

// Build extracts text from every page in increasing page number order.
// A page whose extraction fails is recorded with empty text, it never
// aborts the build of its siblings. Building an already built index is a
// no-op. The build is atomic from a consumer's perspective: Built reports
// false until every page is in.
func (i *Index) Build(doc document.Document) {
	i.mu.Lock()
	if i.built {
		i.mu.Unlock()
		return
	}
	i.mu.Unlock()

	total := doc.PageCount()
	pages := make(map[int]string, total)
	for number := 1; number <= total; number++ {
		pages[number] = pageText(doc, number)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.built {
		return
	}
	i.pages = pages
	i.built = true
}

func pageText(doc document.Document, number int) string {
	page, err := doc.Page(number)
	if err != nil {
		log.Printf("Error loading page %d for indexing: %s\n", number, err)
		return ""
	}
	text, err := page.Text()
	if err != nil {
		log.Printf("Error extracting text from page %d: %s\n", number, err)
		return ""
	}
	return text
}

// Built reports whether the index holds every page of the document
func (i *Index) Built() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.built
}

// Len returns the number of indexed pages
func (i *Index) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	return len(i.pages)
}

// PageText returns the extracted text of the passed page
func (i *Index) PageText(number int) (string, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	text, ok := i.pages[number]
	return text, ok
}
