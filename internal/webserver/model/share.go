package model

import (
	"time"
)

type ShareLink struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex"`
	Path      string `gorm:"index;not null"`
	UserID    int    `gorm:"index"`
	ExpiresAt time.Time
}

// Expired reports whether the link is past its expiration time.
// Links without an expiration time never expire.
func (s ShareLink) Expired() bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().UTC().After(s.ExpiresAt)
}
