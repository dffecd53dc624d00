package index

import (
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/metadata"
)

type Document struct {
	metadata.Metadata
	ID       string
	Slug     string
	Category string
	Favorite bool `json:"-"`
}
