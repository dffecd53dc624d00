package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/datasource/summary"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/document"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/i18n"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/metadata"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/viewer"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/infrastructure"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/model"
)

var version string = "unknown"

func main() {
	var cfg Config
	var appFs = afero.NewOsFs()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal("Error retrieving user home dir")
	}
	if err = cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Error parsing configuration from environment variables: %s", err)
	}
	if _, err := os.Stat(cfg.LibPath); os.IsNotExist(err) {
		log.Fatalf("Directory '%s' does not exist, exiting", cfg.LibPath)
	}
	if err = os.MkdirAll(homeDir+"/flipbook", os.ModePerm); err != nil {
		log.Fatalf("Couldn't create %s, exiting", homeDir+"/flipbook")
	}
	if len(cfg.JwtSecret) == 0 {
		cfg.JwtSecret = []byte(uuid.NewString())
	}

	metadataReaders := map[string]metadata.Reader{
		".pdf": metadata.PdfReader{},
	}

	run(cfg, homeDir, metadataReaders, appFs)
}

func run(cfg Config, homeDir string, metadataReaders map[string]metadata.Reader, appFs afero.Fs) {
	idx := openIndex(homeDir, cfg.LibPath, metadataReaders)
	defer idx.Close()

	db := infrastructure.Connect(homeDir + "/flipbook/database.db")

	favoritesRepository := &model.FavoriteRepository{DB: db}
	shareLinksRepository := &model.ShareLinkRepository{DB: db}
	summariesRepository := &model.SummaryRepository{DB: db}

	if !cfg.SkipIndexing {
		go func() {
			reindex(idx, appFs, cfg.BatchSize, cfg.LibPath)
			fileWatcher(idx, cfg.LibPath, favoritesRepository, shareLinksRepository, summariesRepository)
		}()
	}

	var sender webserver.Sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	}

	printers, err := i18n.Printers(webserver.TranslationsFS(), "en")
	if err != nil {
		log.Fatal(err)
	}

	webserverConfig := webserver.Config{
		Version:               version,
		SessionTimeout:        cfg.sessionTimeout(),
		MinPasswordLength:     cfg.MinPasswordLength,
		LibraryPath:           cfg.LibPath,
		HomeDir:               homeDir,
		CoverMaxWidth:         cfg.CoverMaxWidth,
		JwtSecret:             cfg.JwtSecret,
		Hostname:              cfg.Hostname,
		Port:                  cfg.Port,
		RequireAuth:           cfg.RequireAuth,
		UploadDocumentMaxSize: cfg.UploadDocumentMaxSize,
		SummariesEndpoint:     cfg.SummariesEndpoint,
	}

	sessions := viewer.NewManager(document.FitzOpener{})
	summarizer := summary.NewService(cfg.SummariesEndpoint, nil)

	controllers := webserver.SetupControllers(webserverConfig, db, metadataReaders, idx, sessions, summarizer, sender, appFs, printers)
	app := webserver.New(webserverConfig, controllers, printers)

	fmt.Printf("Flipbook version %s started listening on port %d\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}

func openIndex(homeDir, libPath string, metadataReaders map[string]metadata.Reader) *index.BleveIndexer {
	indexFile, err := bleve.Open(homeDir + "/flipbook/index")
	if err == bleve.ErrorIndexPathDoesNotExist {
		log.Println("No index found, creating a new one")
		indexFile, err = bleve.New(homeDir+"/flipbook/index", index.Mapping())
	}
	if err != nil {
		log.Fatal(err)
	}
	return index.NewBleve(indexFile, libPath, metadataReaders)
}

func reindex(idx *index.BleveIndexer, appFs afero.Fs, batchSize int, libPath string) {
	start := time.Now()
	log.Printf("Indexing documents at %s, this can take a while depending on the size of your library.\n", libPath)
	if err := idx.AddLibrary(appFs, batchSize); err != nil {
		log.Fatal(err)
	}
	log.Printf("Indexing finished, took %d seconds\n", int(time.Since(start).Seconds()))
}
