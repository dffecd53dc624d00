package index

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/afero"
)

// AddFile adds a file to the index
func (b *BleveIndexer) AddFile(file string) error {
	ext := strings.ToLower(filepath.Ext(file))
	if _, ok := b.reader[ext]; !ok {
		return nil
	}
	meta, err := b.reader[ext].Metadata(file)
	if err != nil {
		return fmt.Errorf("error extracting metadata from file %s: %w", file, err)
	}

	document := Document{
		Metadata: meta,
		ID:       b.relativePath(file),
	}
	document.Slug = b.slug(document)
	document.Category = categoryFromPath(document.ID)

	if err = b.idx.Index(document.ID, document); err != nil {
		return fmt.Errorf("error indexing file %s: %w", file, err)
	}
	return nil
}

// RemoveFile removes a file from the index
func (b *BleveIndexer) RemoveFile(file string) error {
	return b.idx.Delete(b.relativePath(file))
}

// AddLibrary scans <libraryPath> for documents and adds them to the index in batches of <batchSize>
func (b *BleveIndexer) AddLibrary(fs afero.Fs, batchSize int) error {
	batch := b.idx.NewBatch()
	e := afero.Walk(fs, b.libraryPath, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := b.reader[ext]; !ok {
			return nil
		}
		meta, err := b.reader[ext].Metadata(path)
		if err != nil {
			log.Printf("Error extracting metadata from file %s: %s\n", path, err)
			return nil
		}

		document := Document{
			Metadata: meta,
			ID:       b.relativePath(path),
		}
		document.Slug = b.slug(document)
		document.Category = categoryFromPath(document.ID)

		if err = batch.Index(document.ID, document); err != nil {
			log.Printf("Error indexing file %s: %s\n", path, err)
			return nil
		}

		if batch.Size() == batchSize {
			b.idx.Batch(batch)
			batch.Reset()
		}
		return nil
	})
	b.idx.Batch(batch)
	return e
}

// categoryFromPath derives the category of a document from the first
// folder of its path relative to the library root. Documents sitting
// directly in the library root have no category.
func categoryFromPath(relative string) string {
	dir := filepath.Dir(relative)
	if dir == "." || dir == "/" {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(dir), "/")
	return slug.Make(parts[0])
}

func (b *BleveIndexer) relativePath(file string) string {
	file = strings.Replace(file, b.libraryPath, "", 1)
	return strings.TrimPrefix(file, "/")
}

// slug calculates a unique URL-safe identifier for the document,
// appending an increasing suffix while the candidate collides with
// a different, already indexed document.
func (b *BleveIndexer) slug(document Document) string {
	title := document.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(document.ID), filepath.Ext(document.ID))
	}
	candidate := slug.Make(strings.Join(append(document.Authors, title), " "))
	base := candidate

	for i := 2; ; i++ {
		existing, err := b.Document(candidate)
		if err != nil || existing.ID == document.ID {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
