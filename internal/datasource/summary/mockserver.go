package summary

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gosimple/slug"
)

func NewMockServer(t *testing.T, fixturePath string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/v1/summaries") {
			title := slug.Make(r.URL.Query().Get("title"))
			returnResponse(fmt.Sprintf("summary-%s", title), w, fixturePath)
			return
		}
		t.Errorf("Expected to request '/v1/summaries', got: %s", r.URL.Path)
	}))
}

func returnResponse(fixture string, w http.ResponseWriter, fixturePath string) {
	filePath := fmt.Sprintf("%s/%s.json", fixturePath, fixture)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
	contents, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("Couldn't read contents of %s", filePath)
	}
	if _, err = w.Write(contents); err != nil {
		log.Fatalf("Couldn't write contents of %s", filePath)
	}
}
