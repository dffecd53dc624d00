package model

import (
	"time"
)

type Category struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"type:text collate nocase; not null; unique"`
	Slug      string `gorm:"uniqueIndex"`
}

// Validate checks the category's fields to ensure they are in the required format
func (c Category) Validate() map[string]string {
	errs := map[string]string{}

	if c.Name == "" {
		errs["name"] = "Name cannot be empty"
	}

	if len(c.Name) > 50 {
		errs["name"] = "Name cannot be longer than 50 characters"
	}

	return errs
}
