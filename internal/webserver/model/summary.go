package model

import (
	"time"
)

// DocumentSummary caches a generated summary for a library document,
// keyed by its path relative to the library folder.
type DocumentSummary struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Path      string `gorm:"primaryKey;not null"`
	Summary   string `gorm:"type:text"`
}
