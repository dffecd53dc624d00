package document

import (
	"image"
	"sync"
)

// FakeOpener is a test double which serves in-memory documents
type FakeOpener struct {
	Docs    map[string]*FakeDocument
	OpenErr error
}

func (o *FakeOpener) Open(path string) (Document, error) {
	if o.OpenErr != nil {
		return nil, &DecodeError{Err: o.OpenErr}
	}
	if doc, ok := o.Docs[path]; ok {
		return doc, nil
	}
	return nil, &DecodeError{Err: errNotFound(path)}
}

func (o *FakeOpener) OpenBytes(data []byte) (Document, error) {
	return o.Open(string(data))
}

type errNotFound string

func (e errNotFound) Error() string {
	return "no fake document registered for " + string(e)
}

// FakeDocument implements Document over a fixed set of fake pages, counting
// how many times each page has been rasterized
type FakeDocument struct {
	Pages []FakePage

	mu          sync.Mutex
	renderCalls map[int]int
	closed      bool
}

// NewFakeDocument builds a fake document whose page texts are the passed
// strings
func NewFakeDocument(pageTexts ...string) *FakeDocument {
	doc := &FakeDocument{}
	for _, text := range pageTexts {
		doc.Pages = append(doc.Pages, FakePage{Text: text, Width: 612, Height: 792})
	}
	return doc
}

type FakePage struct {
	Text       string
	Runs       []TextRun
	Width      float64
	Height     float64
	RenderErr  error
	ExtractErr error
}

func (d *FakeDocument) PageCount() int {
	return len(d.Pages)
}

func (d *FakeDocument) Page(number int) (Page, error) {
	if number < 1 || number > len(d.Pages) {
		return nil, &IndexError{Page: number, Total: len(d.Pages)}
	}
	return &fakePage{parent: d, number: number}, nil
}

func (d *FakeDocument) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	return nil
}

func (d *FakeDocument) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.closed
}

// RenderCalls returns how many times the passed page has been rasterized
func (d *FakeDocument) RenderCalls(number int) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.renderCalls[number]
}

type fakePage struct {
	parent *FakeDocument
	number int
}

func (p *fakePage) Number() int {
	return p.number
}

func (p *fakePage) Size() (float64, float64) {
	page := p.parent.Pages[p.number-1]
	return page.Width, page.Height
}

func (p *fakePage) Render(scale float64) (image.Image, error) {
	p.parent.mu.Lock()
	if p.parent.renderCalls == nil {
		p.parent.renderCalls = map[int]int{}
	}
	p.parent.renderCalls[p.number]++
	p.parent.mu.Unlock()

	page := p.parent.Pages[p.number-1]
	if page.RenderErr != nil {
		return nil, &RenderError{Page: p.number, Err: page.RenderErr}
	}
	return image.NewRGBA(image.Rect(0, 0, int(page.Width*scale), int(page.Height*scale))), nil
}

func (p *fakePage) Text() (string, error) {
	page := p.parent.Pages[p.number-1]
	if page.ExtractErr != nil {
		return "", &ExtractionError{Page: p.number, Err: page.ExtractErr}
	}
	return page.Text, nil
}

func (p *fakePage) TextRuns() ([]TextRun, error) {
	page := p.parent.Pages[p.number-1]
	if page.ExtractErr != nil {
		return nil, &ExtractionError{Page: p.number, Err: page.ExtractErr}
	}
	return page.Runs, nil
}
