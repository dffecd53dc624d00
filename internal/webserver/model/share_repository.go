package model

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
)

type ShareLinkRepository struct {
	DB *gorm.DB
}

func (s *ShareLinkRepository) List(userID int, page int, resultsPerPage int) (result.Paginated[[]ShareLink], error) {
	var links []ShareLink

	res := s.DB.Scopes(Paginate(page, resultsPerPage)).Where("user_id = ?", userID).Order("created_at DESC").Find(&links)
	if res.Error != nil {
		log.Printf("error listing share links: %s\n", res.Error)
		return result.Paginated[[]ShareLink]{}, res.Error
	}

	var total int64
	s.DB.Model(&ShareLink{}).Where("user_id = ?", userID).Count(&total)

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(total),
		links,
	), nil
}

func (s *ShareLinkRepository) FindByUuid(uuid string) (*ShareLink, error) {
	var link ShareLink

	res := s.DB.Where("uuid = ?", uuid).First(&link)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &link, res.Error
}

func (s *ShareLinkRepository) Create(link *ShareLink) error {
	if res := s.DB.Create(link); res.Error != nil {
		log.Printf("error creating share link: %s\n", res.Error)
		return res.Error
	}
	return nil
}

func (s *ShareLinkRepository) Delete(uuid string) error {
	res := s.DB.Where("uuid = ?", uuid).Delete(&ShareLink{})
	if res.Error != nil && !errors.Is(res.Error, gorm.ErrRecordNotFound) {
		log.Printf("error deleting share link: %s\n", res.Error)
		return res.Error
	}
	return nil
}

func (s *ShareLinkRepository) RemoveDocument(documentPath string) error {
	return s.DB.Where("path = ?", documentPath).Delete(&ShareLink{}).Error
}
