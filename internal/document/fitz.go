package document

import (
	"image"
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/gen2brain/go-fitz"
)

// FitzOpener decodes documents through MuPDF
type FitzOpener struct{}

func (FitzOpener) Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &fitzDocument{doc: doc}, nil
}

func (FitzOpener) OpenBytes(data []byte) (Document, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	// MuPDF contexts are not safe for concurrent use
	mu  sync.Mutex
	doc *fitz.Document
}

func (d *fitzDocument) PageCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.doc.NumPage()
}

func (d *fitzDocument) Page(number int) (Page, error) {
	total := d.PageCount()
	if number < 1 || number > total {
		return nil, &IndexError{Page: number, Total: total}
	}

	d.mu.Lock()
	bounds, err := d.doc.Bound(number - 1)
	d.mu.Unlock()
	if err != nil {
		return nil, &RenderError{Page: number, Err: err}
	}

	return &fitzPage{
		parent: d,
		number: number,
		width:  float64(bounds.Dx()),
		height: float64(bounds.Dy()),
	}, nil
}

func (d *fitzDocument) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.doc.Close()
}

type fitzPage struct {
	parent *fitzDocument
	number int
	width  float64
	height float64
}

func (p *fitzPage) Number() int {
	return p.number
}

func (p *fitzPage) Size() (float64, float64) {
	return p.width, p.height
}

// Render rasterizes the page at the passed scale. Page layout units are
// points, so natural size maps to 72 DPI.
func (p *fitzPage) Render(scale float64) (image.Image, error) {
	p.parent.mu.Lock()
	defer p.parent.mu.Unlock()

	img, err := p.parent.doc.ImageDPI(p.number-1, 72*scale)
	if err != nil {
		return nil, &RenderError{Page: p.number, Err: err}
	}
	return img, nil
}

func (p *fitzPage) Text() (string, error) {
	p.parent.mu.Lock()
	defer p.parent.mu.Unlock()

	text, err := p.parent.doc.Text(p.number - 1)
	if err != nil {
		return "", &ExtractionError{Page: p.number, Err: err}
	}
	return text, nil
}

// TextRuns derives positioned runs from the structured text layout MuPDF
// emits for the page. MuPDF positions lines from the top-left corner, so
// coordinates are converted to the bottom-left origin the TextRun contract
// mandates, with ty at the text baseline.
func (p *fitzPage) TextRuns() ([]TextRun, error) {
	p.parent.mu.Lock()
	layout, err := p.parent.doc.HTML(p.number-1, true)
	p.parent.mu.Unlock()
	if err != nil {
		return nil, &ExtractionError{Page: p.number, Err: err}
	}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(layout))
	if err != nil {
		return nil, &ExtractionError{Page: p.number, Err: err}
	}

	var runs []TextRun
	parsed.Find("p").Each(func(_ int, line *goquery.Selection) {
		top, okTop := styleValue(line, "top")
		left, okLeft := styleValue(line, "left")
		if !okTop || !okLeft {
			return
		}

		line.Find("span").Each(func(_ int, span *goquery.Selection) {
			text := span.Text()
			if strings.TrimSpace(text) == "" {
				return
			}
			fontSize, ok := styleValue(span, "font-size")
			if !ok {
				fontSize = 12
			}
			runs = append(runs, TextRun{
				Text:      text,
				Transform: [6]float64{fontSize, 0, 0, fontSize, left, p.height - top - fontSize},
				// MuPDF does not report advance widths in its layout
				// output, approximate from the glyph count
				Width: 0.5 * fontSize * float64(len([]rune(text))),
			})
			left += 0.5 * fontSize * float64(len([]rune(text)))
		})
	})

	return runs, nil
}

// styleValue extracts a dimension, in points, from an inline style attribute
// like "top:71.2pt;left:108.0pt"
func styleValue(sel *goquery.Selection, property string) (float64, bool) {
	style, ok := sel.Attr("style")
	if !ok {
		return 0, false
	}
	for _, declaration := range strings.Split(style, ";") {
		name, value, found := strings.Cut(declaration, ":")
		if !found || strings.TrimSpace(name) != property {
			continue
		}
		value = strings.TrimSpace(value)
		value = strings.TrimSuffix(value, "pt")
		value = strings.TrimSuffix(value, "px")
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}
