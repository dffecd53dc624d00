package metadata

import "html/template"

type Metadata struct {
	Title       string
	Authors     []string
	Description template.HTML
	Year        string
	Pages       int
	Type        string
}

// Reader extracts metadata and cover images from documents in the library
type Reader interface {
	Metadata(file string) (Metadata, error)
	Cover(documentFullPath string, coverMaxWidth int) ([]byte, error)
}
