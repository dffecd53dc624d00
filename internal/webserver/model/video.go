package model

import (
	"net/url"
	"time"
)

type Video struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string `gorm:"not null"`
	EmbedURL  string `gorm:"not null"`
}

// Validate checks the video's fields to ensure they are in the required format
func (v Video) Validate() map[string]string {
	errs := map[string]string{}

	if v.Title == "" {
		errs["title"] = "Title cannot be empty"
	}

	if len(v.Title) > 100 {
		errs["title"] = "Title cannot be longer than 100 characters"
	}

	parsed, err := url.Parse(v.EmbedURL)
	if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
		errs["embedurl"] = "Embed URL must be a valid https URL"
	}

	return errs
}
