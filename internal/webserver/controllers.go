package webserver

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"golang.org/x/text/message"
	"gorm.io/gorm"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/metadata"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/viewer"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/controller/auth"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/controller/category"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/controller/document"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/controller/favorite"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/controller/share"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/controller/video"
	viewerctrl "github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/controller/viewer"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/jwtclaimsreader"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

// Sender sends emails with the configured transport
type Sender interface {
	Send(address, subject, body string) error
}

type Controllers struct {
	Auth       *auth.Controller
	Documents  *document.Controller
	Categories *category.Controller
	Favorites  *favorite.Controller
	Shares     *share.Controller
	Videos     *video.Controller
	Viewer     *viewerctrl.Controller

	AllowIfNotLoggedInMiddleware          func(c *fiber.Ctx) error
	AlwaysRequireAuthenticationMiddleware func(c *fiber.Ctx) error
	ConfigurableAuthenticationMiddleware  func(c *fiber.Ctx) error
	ErrorHandler                          func(c *fiber.Ctx, err error) error
}

func SetupControllers(cfg Config, db *gorm.DB, metadataReaders map[string]metadata.Reader, idx *index.BleveIndexer, sessions *viewer.Manager, summarizer document.Summarizer, sender Sender, appFs afero.Fs, printers map[string]*message.Printer) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	categoriesRepository := &model.CategoryRepository{DB: db}
	favoritesRepository := &model.FavoriteRepository{DB: db}
	shareLinksRepository := &model.ShareLinkRepository{DB: db}
	videosRepository := &model.VideoRepository{DB: db}
	summariesRepository := &model.SummaryRepository{DB: db}

	authController := auth.NewController(usersRepository, auth.Config{
		Secret:            cfg.JwtSecret,
		MinPasswordLength: cfg.MinPasswordLength,
		Hostname:          cfg.Hostname,
		Port:              cfg.Port,
		SessionTimeout:    cfg.SessionTimeout,
	}, printers)

	documentsController := document.NewController(
		favoritesRepository,
		summariesRepository,
		shareLinksRepository,
		summarizer,
		idx,
		metadataReaders,
		appFs,
		document.Config{
			LibraryPath:           cfg.LibraryPath,
			HomeDir:               cfg.HomeDir,
			CoverMaxWidth:         cfg.CoverMaxWidth,
			UploadDocumentMaxSize: cfg.UploadDocumentMaxSize,
		},
	)

	categoriesController := category.NewController(categoriesRepository, idx)
	favoritesController := favorite.NewController(favoritesRepository, idx)
	sharesController := share.NewController(shareLinksRepository, idx, sender, share.Config{
		Hostname: cfg.Hostname,
		Port:     cfg.Port,
	})
	videosController := video.NewController(videosRepository)
	viewerController := viewerctrl.NewController(idx, sessions, viewerctrl.Config{
		LibraryPath: cfg.LibraryPath,
	})

	return Controllers{
		Auth:       authController,
		Documents:  documentsController,
		Categories: categoriesController,
		Favorites:  favoritesController,
		Shares:     sharesController,
		Videos:     videosController,
		Viewer:     viewerController,

		AllowIfNotLoggedInMiddleware:          AllowIfNotLoggedIn(cfg.JwtSecret),
		AlwaysRequireAuthenticationMiddleware: AlwaysRequireAuthentication(cfg.JwtSecret),
		ConfigurableAuthenticationMiddleware:  ConfigurableAuthentication(cfg.JwtSecret, cfg.RequireAuth),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			err = c.Status(code).Render(
				fmt.Sprintf("errors/%d", code),
				fiber.Map{
					"Lang":    chooseBestLanguage(c),
					"Title":   "Flipbook",
					"Session": jwtclaimsreader.SessionData(c),
					"Version": c.App().Config().AppName,
				},
				"layout")

			if err != nil {
				log.Println(err)
				return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
			}
			return nil
		},
	}
}
