package document

import "fmt"

// DecodeError signals that a document could not be opened at all. It is
// terminal for the reading session that tried to open it.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode document: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IndexError signals a request for a page number outside [1, PageCount]
type IndexError struct {
	Page  int
	Total int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("page %d out of range [1, %d]", e.Page, e.Total)
}

// RenderError signals that a single page failed to rasterize. Other pages
// are not affected.
type RenderError struct {
	Page int
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("cannot render page %d: %s", e.Page, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ExtractionError signals that text could not be extracted from a single
// page. Callers treat the page as having no text.
type ExtractionError struct {
	Page int
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot extract text from page %d: %s", e.Page, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
