package model

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
)

type VideoRepository struct {
	DB *gorm.DB
}

func (v *VideoRepository) List(page int, resultsPerPage int) (result.Paginated[[]Video], error) {
	var videos []Video

	res := v.DB.Scopes(Paginate(page, resultsPerPage)).Order("created_at DESC").Find(&videos)
	if res.Error != nil {
		log.Printf("error listing videos: %s\n", res.Error)
		return result.Paginated[[]Video]{}, res.Error
	}

	var total int64
	v.DB.Model(&Video{}).Count(&total)

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(total),
		videos,
	), nil
}

func (v *VideoRepository) FindByID(id uint) (*Video, error) {
	var video Video

	res := v.DB.First(&video, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &video, res.Error
}

func (v *VideoRepository) Create(video *Video) error {
	if res := v.DB.Create(video); res.Error != nil {
		log.Printf("error creating video: %s\n", res.Error)
		return res.Error
	}
	return nil
}

func (v *VideoRepository) Delete(id uint) error {
	res := v.DB.Delete(&Video{}, id)
	if res.Error != nil && !errors.Is(res.Error, gorm.ErrRecordNotFound) {
		log.Printf("error deleting video: %s\n", res.Error)
		return res.Error
	}
	return nil
}
