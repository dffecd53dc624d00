package model

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func (c *CategoryRepository) List(page int, resultsPerPage int) (result.Paginated[[]Category], error) {
	var categories []Category

	res := c.DB.Scopes(Paginate(page, resultsPerPage)).Order("name ASC").Find(&categories)
	if res.Error != nil {
		log.Printf("error listing categories: %s\n", res.Error)
		return result.Paginated[[]Category]{}, res.Error
	}

	var total int64
	c.DB.Model(&Category{}).Count(&total)

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(total),
		categories,
	), nil
}

func (c *CategoryRepository) All() ([]Category, error) {
	var categories []Category

	res := c.DB.Order("name ASC").Find(&categories)
	if res.Error != nil {
		return nil, res.Error
	}
	return categories, nil
}

func (c *CategoryRepository) FindBySlug(slug string) (*Category, error) {
	var category Category

	res := c.DB.Where("slug = ?", slug).First(&category)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, res.Error
}

func (c *CategoryRepository) Create(category *Category) error {
	if res := c.DB.Create(category); res.Error != nil {
		log.Printf("error creating category: %s\n", res.Error)
		return res.Error
	}
	return nil
}

func (c *CategoryRepository) Update(category *Category) error {
	if res := c.DB.Save(category); res.Error != nil {
		log.Printf("error updating category: %s\n", res.Error)
		return res.Error
	}
	return nil
}

func (c *CategoryRepository) Delete(slug string) error {
	res := c.DB.Where("slug = ?", slug).Delete(&Category{})
	if res.Error != nil && !errors.Is(res.Error, gorm.ErrRecordNotFound) {
		log.Printf("error deleting category: %s\n", res.Error)
		return res.Error
	}
	return nil
}
