package model

import (
	"log"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/result"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func (f *FavoriteRepository) Favorites(userID int, page int, resultsPerPage int) (result.Paginated[[]string], error) {
	favorites := []string{}
	var total int64

	res := f.DB.Scopes(Paginate(page, resultsPerPage)).Table("favorites").Select("path").Where("user_id = ?", userID).Order("created_at DESC").Pluck("path", &favorites)
	if res.Error != nil {
		log.Printf("error listing favorites: %s\n", res.Error)
		return result.Paginated[[]string]{}, res.Error
	}
	f.DB.Table("favorites").Where("user_id = ?", userID).Count(&total)

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(total),
		favorites,
	), nil
}

// FavoritePaginatedResult flags every hit in results which the passed user
// has marked as favorite.
func (f *FavoriteRepository) FavoritePaginatedResult(userID int, results result.Paginated[[]index.Document]) result.Paginated[[]index.Document] {
	favorites := make([]string, 0, len(results.Hits()))
	paths := make([]string, 0, len(results.Hits()))
	documents := make([]index.Document, len(results.Hits()))

	for _, hit := range results.Hits() {
		paths = append(paths, hit.ID)
	}
	f.DB.Table("favorites").Where(
		"user_id = ? AND path IN (?)",
		userID,
		paths,
	).Pluck("path", &favorites)

	for i, doc := range results.Hits() {
		documents[i] = doc
		documents[i].Favorite = slices.Contains(favorites, doc.ID)
	}

	return result.NewPaginated(
		results.MaxResultsPerPage(),
		results.Page(),
		results.TotalHits(),
		documents,
	)
}

func (f *FavoriteRepository) Favorited(userID int, doc index.Document) index.Document {
	var count int64

	f.DB.Table("favorites").Where(
		"user_id = ? AND path = ?",
		userID,
		doc.ID,
	).Count(&count)

	if count == 1 {
		doc.Favorite = true
	}
	return doc
}

func (f *FavoriteRepository) Favorite(userID int, documentPath string) error {
	favorite := Favorite{
		UserID: userID,
		Path:   documentPath,
	}
	return f.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite).Error
}

func (f *FavoriteRepository) Remove(userID int, documentPath string) error {
	favorite := Favorite{
		UserID: userID,
		Path:   documentPath,
	}
	return f.DB.Delete(&favorite).Error
}

func (f *FavoriteRepository) RemoveDocument(documentPath string) error {
	return f.DB.Where("path = ?", documentPath).Delete(&Favorite{}).Error
}
