package render

import (
	"image"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/document"
)

const (
	// DefaultPageScale is the internal rasterization scale for full pages,
	// higher than display size so pages stay crisp on high density screens
	DefaultPageScale = 2.5
	// DefaultThumbnailScale is the rasterization scale for thumbnails
	DefaultThumbnailScale = 0.5
)

// RenderedPage is the outcome of rasterizing one page: a bitmap plus the
// invisible text overlay aligned to it
type RenderedPage struct {
	PageNumber int          `json:"pageNumber"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Overlay    []OverlayRun `json:"overlay"`
	Image      image.Image  `json:"-"`
}

// PageRenderer rasterizes document pages at a fixed scale and caches the
// result per page number for the lifetime of the document instance.
// Rendering the same page twice performs rasterization work exactly once,
// and concurrent requests for the same page collapse to a single render.
type PageRenderer struct {
	doc   document.Document
	scale float64

	mu    sync.Mutex
	pages map[int]*pageEntry
}

type pageEntry struct {
	once sync.Once
	page *RenderedPage
	err  error
}

// NewPageRenderer creates a renderer for the passed document, rasterizing
// at DefaultPageScale
func NewPageRenderer(doc document.Document) *PageRenderer {
	return NewPageRendererScale(doc, DefaultPageScale)
}

func NewPageRendererScale(doc document.Document, scale float64) *PageRenderer {
	return &PageRenderer{
		doc:   doc,
		scale: scale,
		pages: make(map[int]*pageEntry),
	}
}

// Render returns the rendered page with the passed 1-based number,
// rasterizing it on first request. A page which failed to render stays
// failed for the lifetime of the document instance, the error is logged
// and navigation to other pages is unaffected.
func (r *PageRenderer) Render(number int) (*RenderedPage, error) {
	if number < 1 || number > r.doc.PageCount() {
		return nil, &document.IndexError{Page: number, Total: r.doc.PageCount()}
	}

	r.mu.Lock()
	entry, ok := r.pages[number]
	if !ok {
		entry = &pageEntry{}
		r.pages[number] = entry
	}
	r.mu.Unlock()

	entry.once.Do(func() {
		entry.page, entry.err = r.render(number)
		if entry.err != nil {
			log.Printf("Error rendering page %d: %s\n", number, entry.err)
		}
	})

	return entry.page, entry.err
}

// Warm rasterizes the passed 1-based pages in the background, so turning
// to a neighboring page does not wait for rasterization. Out of range and
// already rendered pages are skipped.
func (r *PageRenderer) Warm(numbers ...int) {
	go func() {
		var group errgroup.Group
		group.SetLimit(2)
		for _, number := range numbers {
			if number < 1 || number > r.doc.PageCount() || r.Rendered(number) {
				continue
			}
			group.Go(func() error {
				_, err := r.Render(number)
				return err
			})
		}
		// render errors are already logged by Render
		_ = group.Wait()
	}()
}

// Rendered tells whether the passed page has already been rasterized
func (r *PageRenderer) Rendered(number int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.pages[number]
	return ok && entry.page != nil
}

func (r *PageRenderer) render(number int) (*RenderedPage, error) {
	page, err := r.doc.Page(number)
	if err != nil {
		return nil, err
	}

	img, err := page.Render(r.scale)
	if err != nil {
		return nil, err
	}

	_, pageHeight := page.Size()
	runs, err := page.TextRuns()
	if err != nil {
		// A page without selectable text is still a readable page
		log.Printf("Error extracting text runs from page %d: %s\n", number, err)
		runs = nil
	}

	bounds := img.Bounds()
	return &RenderedPage{
		PageNumber: number,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Overlay:    buildOverlay(runs, pageHeight, r.scale),
		Image:      img,
	}, nil
}
