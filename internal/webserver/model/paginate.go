package model

import "gorm.io/gorm"

const (
	ResultsPerPage    = 10
	MaxPagesNavigator = 5
)

// Paginate is a gorm scope limiting a query to one page of results
func Paginate(currentPage int, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if currentPage < 1 {
			currentPage = 1
		}
		if pageSize < 1 {
			pageSize = ResultsPerPage
		}
		if pageSize > 100 {
			pageSize = 100
		}

		return db.Offset((currentPage - 1) * pageSize).Limit(pageSize)
	}
}
