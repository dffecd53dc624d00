package webserver

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/message"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/infrastructure"
)

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers, printers map[string]*message.Printer) *fiber.App {
	engine, err := infrastructure.TemplateEngine(mustSubFS("embedded/views"), printers)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		PassLocalsToViews:     true,
		AppName:               cfg.Version,
		DisableStartupMessage: true,
		ErrorHandler:          controllers.ErrorHandler,
		BodyLimit:             cfg.UploadDocumentMaxSize * 1024 * 1024,
	})

	routes(app, controllers, getSupportedLanguages())

	return app
}
