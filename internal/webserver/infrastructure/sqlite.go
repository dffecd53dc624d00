package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

func Connect(path string) *gorm.DB {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.Contains(path, "memory") {
		if _, err = os.Create(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Created database at %s\n", path)
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s%s_pragma=foreign_keys(1)", path, separator)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Favorite{},
		&model.ShareLink{},
		&model.Video{},
		&model.DocumentSummary{},
	); err != nil {
		log.Fatal(err)
	}
	addDefaultAdmin(db)
	return db
}

func addDefaultAdmin(db *gorm.DB) {
	var result int64
	db.Table("users").Count(&result)

	if result == 0 {
		user := &model.User{
			Uuid:     uuid.NewString(),
			Name:     "Admin",
			Username: "admin",
			Email:    "admin@example.com",
			Password: model.Hash("admin"),
			Role:     model.RoleAdmin,
		}
		result := db.Create(&user)
		if result.Error != nil {
			log.Fatal("Couldn't create default admin")
		}
	}
}
