package viewer

import (
	"image"
	"sync"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/audio"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/document"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/flip"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/render"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/textsearch"
)

// Session is one reading session: it owns the open document exclusively
// and composes the renderers, the flip controller, the audio feedback and
// the in-document search index around it. Page bitmaps and extracted text
// are cached for as long as the document stays open; replacing the
// document discards them wholesale, no stale cross-document reuse.
type Session struct {
	opener document.Opener
	sound  *audio.Engine

	mu         sync.Mutex
	doc        document.Document
	pages      *render.PageRenderer
	thumbs     *render.ThumbnailRenderer
	controller *flip.Controller
	keymap     *flip.Keymap
	index      *textsearch.Index
	fullscreen bool
}

const thumbnailMaxWidth = 200

// NewSession opens the document at path and builds the reading session
// around it. A document which cannot be decoded at all is terminal: the
// error is returned and no session exists.
func NewSession(opener document.Opener, path string, sound *audio.Engine) (*Session, error) {
	s := &Session{
		opener: opener,
		sound:  sound,
	}
	if err := s.open(path); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) open(path string) error {
	doc, err := s.opener.Open(path)
	if err != nil {
		return err
	}

	pages := render.NewPageRenderer(doc)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc
	s.pages = pages
	s.thumbs = render.NewThumbnailRenderer(doc, thumbnailMaxWidth)
	s.controller = flip.NewController(doc.PageCount(), func(from, to int) {
		s.sound.Trigger()
		// Warm takes 1-based page numbers and to is a 0-based index,
		// so to and to+2 are the neighbours of page to+1
		pages.Warm(to, to+2)
	})
	pages.Warm(1, 2)
	s.keymap = flip.NewKeymap(s.controller)
	s.index = textsearch.NewIndex()
	return nil
}

// Replace swaps the open document for the one at path. The previous
// document, its rendered pages and its text index are all discarded. If
// the new document cannot be decoded the current one stays open.
func (s *Session) Replace(path string) error {
	s.mu.Lock()
	previous := s.doc
	previousController := s.controller
	previousKeymap := s.keymap
	s.mu.Unlock()

	if err := s.open(path); err != nil {
		return err
	}

	previousController.Close()
	previousKeymap.Close()
	previous.Close()
	return nil
}

// Close tears the session down: auto-play timers are cancelled, keyboard
// bindings removed and the document released
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.controller.Close()
	s.keymap.Close()
	s.doc.Close()
}

// Flip returns the navigation handle of the session
func (s *Session) Flip() *flip.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.controller
}

// Keymap returns the keyboard dispatcher of the session
func (s *Session) Keymap() *flip.Keymap {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.keymap
}

// PageCount returns the number of pages of the open document
func (s *Session) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc.PageCount()
}

// Page returns the rendered page with the passed 1-based number,
// rasterizing it on first request
func (s *Session) Page(number int) (*render.RenderedPage, error) {
	s.mu.Lock()
	pages := s.pages
	s.mu.Unlock()

	return pages.Render(number)
}

// Thumbnail reports the thumbnail of the passed page visible and returns
// it, rendering it the first time
func (s *Session) Thumbnail(number int) (image.Image, error) {
	s.mu.Lock()
	thumbs := s.thumbs
	s.mu.Unlock()

	return thumbs.MarkVisible(number)
}

// Search looks the query up in the document text, building the text index
// the first time the search panel is used for this document
func (s *Session) Search(query string, exact bool) []textsearch.Result {
	s.mu.Lock()
	doc := s.doc
	index := s.index
	s.mu.Unlock()

	index.Build(doc)
	return index.Search(query, exact)
}

// Indexed reports whether the text index of the open document is ready,
// letting the search panel distinguish "still indexing" from "no results"
func (s *Session) Indexed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.index.Built()
}

// PageTurnWAV synthesizes the page turn feedback sound for this session
func (s *Session) PageTurnWAV() ([]byte, error) {
	return s.sound.PageTurnWAV()
}

// SetFullscreen records whether the viewer is currently full screen
func (s *Session) SetFullscreen(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fullscreen = enabled
}

func (s *Session) Fullscreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fullscreen
}
