package webserver_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gorm.io/gorm"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/datasource/summary"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/document"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/i18n"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/index"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/metadata"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/viewer"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/webserver/infrastructure"
)

type testApp struct {
	app  *fiber.App
	db   *gorm.DB
	idx  *index.BleveIndexer
	fs   afero.Fs
	smtp *infrastructure.SMTPMock
}

// bootstrapApp builds a webserver over an in-memory database, an in-memory
// search index and a two document fixture library, one of them filed under
// the "history" folder. adjust may be nil.
func bootstrapApp(t *testing.T, adjust func(cfg *webserver.Config)) *testApp {
	t.Helper()

	cfg := webserver.Config{
		Version:               "test",
		SessionTimeout:        time.Hour,
		MinPasswordLength:     5,
		LibraryPath:           "lib",
		HomeDir:               t.TempDir(),
		CoverMaxWidth:         300,
		JwtSecret:             []byte("secret"),
		Hostname:              "example.com",
		Port:                  80,
		UploadDocumentMaxSize: 10,
	}
	if adjust != nil {
		adjust(&cfg)
	}

	appFs := afero.NewMemMapFs()
	afero.WriteFile(appFs, filepath.Join(cfg.LibraryPath, "the-moonlit-atlas.pdf"), []byte(""), 0644)
	afero.WriteFile(appFs, filepath.Join(cfg.LibraryPath, "history", "the-infinite-library.pdf"), []byte(""), 0644)

	readers := map[string]metadata.Reader{".pdf": fixtureReader()}

	bleveIdx, err := bleve.NewMemOnly(index.Mapping())
	if err != nil {
		t.Fatalf("Error creating index: %s", err)
	}
	idx := index.NewBleve(bleveIdx, cfg.LibraryPath, readers)
	if err := idx.AddLibrary(appFs, 10); err != nil {
		t.Fatalf("Error indexing fixture library: %s", err)
	}

	sessions := viewer.NewManager(&document.FakeOpener{
		Docs: map[string]*document.FakeDocument{
			filepath.Join(cfg.LibraryPath, "the-moonlit-atlas.pdf"): document.NewFakeDocument(
				"a moonlit night over the mountains",
				"the cartographer traced every river",
				"an atlas of forgotten places",
			),
			filepath.Join(cfg.LibraryPath, "history", "the-infinite-library.pdf"): document.NewFakeDocument(
				"shelves without end",
				"every book ever written",
			),
		},
	})

	printers, err := i18n.Printers(webserver.TranslationsFS(), "en")
	if err != nil {
		t.Fatalf("Error loading translations: %s", err)
	}

	db := infrastructure.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	smtp := &infrastructure.SMTPMock{}
	summarizer := summary.NewService(cfg.SummariesEndpoint, nil)

	controllers := webserver.SetupControllers(cfg, db, readers, idx, sessions, summarizer, smtp, appFs, printers)

	return &testApp{
		app:  webserver.New(cfg, controllers, printers),
		db:   db,
		idx:  idx,
		fs:   appFs,
		smtp: smtp,
	}
}

func fixtureReader() metadata.ReaderMock {
	mock := metadata.NewReaderMock()
	mock.MetadataFake = func(file string) (metadata.Metadata, error) {
		switch filepath.Base(file) {
		case "the-moonlit-atlas.pdf":
			return metadata.Metadata{
				Title:   "The Moonlit Atlas",
				Authors: []string{"Irene Vallejo"},
				Pages:   3,
			}, nil
		case "the-infinite-library.pdf":
			return metadata.Metadata{
				Title:   "The Infinite Library",
				Authors: []string{"Jorge Santos"},
				Pages:   2,
			}, nil
		}
		return metadata.Metadata{}, nil
	}
	return mock
}

// login signs the passed user in and returns their session cookie
func login(t *testing.T, app *fiber.App, email, password string) *http.Cookie {
	t.Helper()

	data := url.Values{
		"email":    {email},
		"password": {password},
	}
	req := httptest.NewRequest(http.MethodPost, "/en/login", strings.NewReader(data.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	response, err := app.Test(req)
	if err != nil {
		t.Fatalf("Error signing in: %s", err)
	}
	if response.StatusCode != http.StatusFound {
		t.Fatalf("Expected status %d signing in, got %d", http.StatusFound, response.StatusCode)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == "flipbook" {
			return cookie
		}
	}
	t.Fatal("No session cookie in sign in response")
	return nil
}

func loginAdmin(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	return login(t, app, "admin@example.com", "admin")
}

func formRequest(method, target string, data url.Values, cookie *http.Cookie) *http.Request {
	var body *strings.Reader
	if data != nil {
		body = strings.NewReader(data.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}
