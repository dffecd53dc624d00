package model

import (
	"time"
)

type Favorite struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int    `gorm:"primaryKey;index;not null"`
	Path      string `gorm:"primaryKey;index;not null"`
}
