package render

import (
	"image"
	"log"
	"sync"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/document"
	"github.com/disintegration/imaging"
)

// ThumbnailRenderer produces low resolution page bitmaps for navigation
// panels. Rendering work for a page is deferred until that thumbnail is
// reported visible, so filling a grid with hundreds of thumbnails does not
// rasterize more pages than the ones actually scrolled into view. Once
// rendered, a thumbnail is kept for the lifetime of the document instance.
type ThumbnailRenderer struct {
	doc      document.Document
	scale    float64
	maxWidth int

	mu     sync.Mutex
	thumbs map[int]*thumbEntry
}

type thumbEntry struct {
	once sync.Once
	img  image.Image
	err  error
}

func NewThumbnailRenderer(doc document.Document, maxWidth int) *ThumbnailRenderer {
	return &ThumbnailRenderer{
		doc:      doc,
		scale:    DefaultThumbnailScale,
		maxWidth: maxWidth,
		thumbs:   make(map[int]*thumbEntry),
	}
}

// MarkVisible reports that the thumbnail of the passed page entered the
// viewport, rendering it if it was not rendered before. Renders run to
// completion even if the thumbnail scrolls out of view meanwhile.
func (t *ThumbnailRenderer) MarkVisible(number int) (image.Image, error) {
	if number < 1 || number > t.doc.PageCount() {
		return nil, &document.IndexError{Page: number, Total: t.doc.PageCount()}
	}

	t.mu.Lock()
	entry, ok := t.thumbs[number]
	if !ok {
		entry = &thumbEntry{}
		t.thumbs[number] = entry
	}
	t.mu.Unlock()

	entry.once.Do(func() {
		entry.img, entry.err = t.render(number)
		if entry.err != nil {
			log.Printf("Error rendering thumbnail for page %d: %s\n", number, entry.err)
		}
	})

	return entry.img, entry.err
}

// Thumbnail returns the thumbnail of the passed page if it has been
// rendered already. It never triggers rendering work by itself.
func (t *ThumbnailRenderer) Thumbnail(number int) (image.Image, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.thumbs[number]
	if !ok || entry.img == nil {
		return nil, false
	}
	return entry.img, true
}

func (t *ThumbnailRenderer) render(number int) (image.Image, error) {
	page, err := t.doc.Page(number)
	if err != nil {
		return nil, err
	}

	img, err := page.Render(t.scale)
	if err != nil {
		return nil, err
	}

	if t.maxWidth > 0 && img.Bounds().Dx() > t.maxWidth {
		img = imaging.Resize(img, t.maxWidth, 0, imaging.Box)
	}
	return img, nil
}
