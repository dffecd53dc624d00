package viewer

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/flip"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/viewer"
)

type idxReader interface {
	Document(slug string) (index.Document, error)
}

type Config struct {
	LibraryPath string
}

// Controller is the HTTP transport of the reading sessions: it drives
// the page-flip viewer running in the browser, serving page bitmaps,
// text overlays, thumbnails, in-document search and the flip state
// machine over JSON.
type Controller struct {
	idx      idxReader
	sessions *viewer.Manager
	config   Config
}

func NewController(idx idxReader, sessions *viewer.Manager, cfg Config) *Controller {
	return &Controller{
		idx:      idx,
		sessions: sessions,
		config:   cfg,
	}
}

func (v *Controller) session(c *fiber.Ctx) (*viewer.Session, error) {
	session, err := v.sessions.Get(c.Params("id"))
	if err != nil {
		return nil, fiber.ErrNotFound
	}
	return session, nil
}

func (v *Controller) documentPath(slug string) (string, error) {
	document, err := v.idx.Document(slug)
	if err != nil {
		return "", err
	}
	return filepath.Join(v.config.LibraryPath, document.ID), nil
}

type stateResponse struct {
	State            string `json:"state"`
	CurrentPageIndex int    `json:"currentPageIndex"`
	PageCount        int    `json:"pageCount"`
	AutoPlay         bool   `json:"autoPlay"`
	Zoom             int    `json:"zoom"`
	Fullscreen       bool   `json:"fullscreen"`
}

func state(session *viewer.Session) stateResponse {
	handle := session.Flip()
	return stateResponse{
		State:            stateName(handle.State()),
		CurrentPageIndex: handle.CurrentPageIndex(),
		PageCount:        handle.PageCount(),
		AutoPlay:         handle.AutoPlay(),
		Zoom:             handle.Zoom(),
		Fullscreen:       session.Fullscreen(),
	}
}

func stateName(s flip.State) string {
	switch s {
	case flip.Flipping:
		return "flipping"
	case flip.AutoPlaying:
		return "autoPlaying"
	default:
		return "idle"
	}
}
