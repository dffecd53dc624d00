package webserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/controller"
)

func routes(app *fiber.App, controllers Controllers, supportedLanguages []string) {
	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(mustSubFS("embedded/css")),
	}))

	app.Use("/js", filesystem.New(filesystem.Config{
		Root: http.FS(mustSubFS("embedded/js")),
	}))

	langGroup := app.Group(fmt.Sprintf("/:lang<regex(%s)>", strings.Join(supportedLanguages, "|")), func(c *fiber.Ctx) error {
		c.Locals("Lang", c.Params("lang"))
		c.Locals("SupportedLanguages", supportedLanguages)
		c.Locals("Version", c.App().Config().AppName)
		return c.Next()
	})

	langGroup.Get("/login", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.Login)
	langGroup.Post("/login", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.SignIn)

	// Share links are reachable without a session, the link itself is the capability
	langGroup.Get("/shared/:uuid<guid>", controllers.Shares.View)

	langGroup.Get("/upload", controllers.AlwaysRequireAuthenticationMiddleware, RequireAdmin, controllers.Documents.UploadForm)
	langGroup.Post("/upload", controllers.AlwaysRequireAuthenticationMiddleware, RequireAdmin, controllers.Documents.Upload)
	langGroup.Post("/delete", controllers.AlwaysRequireAuthenticationMiddleware, RequireAdmin, controllers.Documents.Delete)

	langGroup.Get("/favorites", controllers.AlwaysRequireAuthenticationMiddleware, controllers.Favorites.List)
	langGroup.Post("/favorites", controllers.AlwaysRequireAuthenticationMiddleware, controllers.Favorites.Favorite)
	langGroup.Delete("/favorites", controllers.AlwaysRequireAuthenticationMiddleware, controllers.Favorites.Remove)

	langGroup.Get("/shares", controllers.AlwaysRequireAuthenticationMiddleware, controllers.Shares.List)
	langGroup.Post("/share", controllers.AlwaysRequireAuthenticationMiddleware, controllers.Shares.Create)
	langGroup.Post("/share/send", controllers.AlwaysRequireAuthenticationMiddleware, controllers.Shares.Send)
	langGroup.Delete("/share", controllers.AlwaysRequireAuthenticationMiddleware, controllers.Shares.Delete)

	langGroup.Post("/categories", controllers.AlwaysRequireAuthenticationMiddleware, RequireAdmin, controllers.Categories.Create)
	langGroup.Post("/categories/:slug", controllers.AlwaysRequireAuthenticationMiddleware, RequireAdmin, controllers.Categories.Update)
	langGroup.Delete("/categories/:slug", controllers.AlwaysRequireAuthenticationMiddleware, RequireAdmin, controllers.Categories.Delete)

	langGroup.Post("/videos", controllers.AlwaysRequireAuthenticationMiddleware, RequireAdmin, controllers.Videos.Create)
	langGroup.Delete("/videos", controllers.AlwaysRequireAuthenticationMiddleware, RequireAdmin, controllers.Videos.Delete)

	// Authentication requirement is configurable for all routes below this middleware
	app.Use(controllers.ConfigurableAuthenticationMiddleware)

	langGroup.Get("/logout", controllers.Auth.SignOut)

	langGroup.Get("/categories", controllers.Categories.List)
	langGroup.Get("/categories/:slug", controllers.Categories.Documents)
	langGroup.Get("/videos", controllers.Videos.List)

	langGroup.Get("/cover/:slug", controllers.Documents.Cover)
	langGroup.Get("/download/:slug", controllers.Documents.Download)
	langGroup.Get("/document/:slug", controllers.Documents.Detail)
	langGroup.Post("/documents/:slug/summary", controllers.Documents.Summary)

	langGroup.Get("/read/:slug", controllers.Viewer.Reader)

	viewerGroup := app.Group("/viewer")
	viewerGroup.Post("/documents/:slug", controllers.Viewer.Open)
	viewerGroup.Delete("/sessions/:id<guid>", controllers.Viewer.Close)
	viewerGroup.Get("/sessions/:id<guid>", controllers.Viewer.State)
	viewerGroup.Get("/sessions/:id<guid>/pages/:page<int>", controllers.Viewer.Page)
	viewerGroup.Get("/sessions/:id<guid>/pages/:page<int>/overlay", controllers.Viewer.Overlay)
	viewerGroup.Get("/sessions/:id<guid>/thumbnails/:page<int>", controllers.Viewer.Thumbnail)
	viewerGroup.Post("/sessions/:id<guid>/flip/next", controllers.Viewer.FlipNext)
	viewerGroup.Post("/sessions/:id<guid>/flip/prev", controllers.Viewer.FlipPrev)
	viewerGroup.Post("/sessions/:id<guid>/flip/complete", controllers.Viewer.CompleteFlip)
	viewerGroup.Post("/sessions/:id<guid>/turn-to/:page<int>", controllers.Viewer.TurnTo)
	viewerGroup.Put("/sessions/:id<guid>/autoplay", controllers.Viewer.AutoPlay)
	viewerGroup.Put("/sessions/:id<guid>/zoom", controllers.Viewer.Zoom)
	viewerGroup.Put("/sessions/:id<guid>/fullscreen", controllers.Viewer.Fullscreen)
	viewerGroup.Post("/sessions/:id<guid>/keys/:key", controllers.Viewer.Press)
	viewerGroup.Get("/sessions/:id<guid>/search", controllers.Viewer.Search)
	viewerGroup.Get("/sessions/:id<guid>/page-turn.wav", controllers.Viewer.PageTurnSound)

	langGroup.Get("/", controllers.Documents.Search)

	app.Get("/", func(c *fiber.Ctx) error {
		return controller.Root(c, supportedLanguages)
	})
}
