package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SummaryRepository struct {
	DB *gorm.DB
}

func (s *SummaryRepository) Get(documentPath string) (*DocumentSummary, error) {
	var summary DocumentSummary

	res := s.DB.Where("path = ?", documentPath).First(&summary)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &summary, res.Error
}

func (s *SummaryRepository) Save(documentPath, text string) error {
	summary := DocumentSummary{
		Path:    documentPath,
		Summary: text,
	}
	res := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"summary", "updated_at"}),
	}).Create(&summary)
	if res.Error != nil {
		log.Printf("error saving summary: %s\n", res.Error)
	}
	return res.Error
}

func (s *SummaryRepository) RemoveDocument(documentPath string) error {
	return s.DB.Where("path = ?", documentPath).Delete(&DocumentSummary{}).Error
}
