package document

import (
	"image"
)

// TextRun is a positioned run of text extracted from a page. Transform holds
// the text matrix components [a b c d tx ty], expressed in page layout units
// with the origin at the bottom-left corner of the page.
type TextRun struct {
	Text      string
	Transform [6]float64
	Width     float64
}

// Page gives access to the contents of a single document page
type Page interface {
	// Number returns the 1-based page number
	Number() int
	// Size returns the page dimensions in layout units
	Size() (width, height float64)
	// Render rasterizes the page at the passed scale, where 1 means natural size
	Render(scale float64) (image.Image, error)
	// TextRuns extracts the positioned text runs of the page
	TextRuns() ([]TextRun, error)
	// Text extracts the plain text of the page
	Text() (string, error)
}

// Document is an open, paginated document
type Document interface {
	PageCount() int
	// Page returns the page with the passed 1-based number
	Page(number int) (Page, error)
	Close() error
}

// Opener decodes a document out of a file or a byte slice
type Opener interface {
	Open(path string) (Document, error)
	OpenBytes(data []byte) (Document, error)
}
