package webserver_test

import (
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type flipState struct {
	State            string `json:"state"`
	CurrentPageIndex int    `json:"currentPageIndex"`
	PageCount        int    `json:"pageCount"`
	AutoPlay         bool   `json:"autoPlay"`
	Zoom             int    `json:"zoom"`
	Fullscreen       bool   `json:"fullscreen"`
}

// openSession starts a reading session over the passed document and returns
// its identifier together with the initial flip state
func openSession(t *testing.T, app *fiber.App, slug string) (string, flipState) {
	t.Helper()

	response, err := app.Test(httptest.NewRequest(http.MethodPost, "/viewer/documents/"+slug, nil))
	if err != nil {
		t.Fatalf("Error opening session: %s", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d opening a session, got %d", http.StatusOK, response.StatusCode)
	}

	var parsed struct {
		ID    string    `json:"id"`
		State flipState `json:"state"`
	}
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		t.Fatalf("Error parsing session response: %s", err)
	}
	return parsed.ID, parsed.State
}

// act performs a session request and returns the flip state it answers with
func act(t *testing.T, app *fiber.App, method, target string) flipState {
	t.Helper()

	response, err := app.Test(httptest.NewRequest(method, target, nil))
	if err != nil {
		t.Fatalf("Error requesting %s %s: %s", method, target, err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d for %s %s, got %d", http.StatusOK, method, target, response.StatusCode)
	}
	var state flipState
	if err := json.NewDecoder(response.Body).Decode(&state); err != nil {
		t.Fatalf("Error parsing state response: %s", err)
	}
	return state
}

func TestOpenSession(t *testing.T) {
	tapp := bootstrapApp(t, nil)

	id, state := openSession(t, tapp.app, "irene-vallejo-the-moonlit-atlas")
	if id == "" {
		t.Fatal("Expected a session identifier, got an empty string")
	}
	if state.State != "idle" {
		t.Errorf("Expected state %q, got %q", "idle", state.State)
	}
	if state.PageCount != 3 {
		t.Errorf("Expected a page count of 3, got %d", state.PageCount)
	}
	if state.CurrentPageIndex != 0 {
		t.Errorf("Expected to start at the first page, got index %d", state.CurrentPageIndex)
	}
	if state.Zoom != 100 {
		t.Errorf("Expected a default zoom of 100, got %d", state.Zoom)
	}
}

func TestOpenSessionForUnknownDocument(t *testing.T) {
	tapp := bootstrapApp(t, nil)

	response, err := tapp.app.Test(httptest.NewRequest(http.MethodPost, "/viewer/documents/no-such-document", nil))
	if err != nil {
		t.Fatalf("Error opening session: %s", err)
	}
	if response.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, response.StatusCode)
	}
}

func TestOpenSessionForUndecodableDocument(t *testing.T) {
	tapp := bootstrapApp(t, nil)

	// Indexed, but not registered with the fake opener, so decoding fails
	if err := tapp.idx.AddFile(filepath.Join("lib", "corrupt.pdf")); err != nil {
		t.Fatalf("Error indexing fixture: %s", err)
	}

	response, err := tapp.app.Test(httptest.NewRequest(http.MethodPost, "/viewer/documents/corrupt", nil))
	if err != nil {
		t.Fatalf("Error opening session: %s", err)
	}
	if response.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected status %d, got %d", http.StatusUnprocessableEntity, response.StatusCode)
	}
}

func TestSessionPages(t *testing.T) {
	tapp := bootstrapApp(t, nil)
	id, _ := openSession(t, tapp.app, "irene-vallejo-the-moonlit-atlas")

	response, err := tapp.app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/viewer/sessions/%s/pages/1", id), nil))
	if err != nil {
		t.Fatalf("Error requesting page: %s", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
	}
	if contentType := response.Header.Get(fiber.HeaderContentType); contentType != "image/png" {
		t.Errorf("Expected content type %q, got %q", "image/png", contentType)
	}
	img, err := png.Decode(response.Body)
	if err != nil {
		t.Fatalf("Error decoding page bitmap: %s", err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Error("Expected a non-empty page bitmap")
	}

	response, err = tapp.app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/viewer/sessions/%s/pages/1/overlay", id), nil))
	if err != nil {
		t.Fatalf("Error requesting overlay: %s", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
	}
	var overlay struct {
		PageNumber int `json:"pageNumber"`
		Width      int `json:"width"`
		Height     int `json:"height"`
	}
	if err := json.NewDecoder(response.Body).Decode(&overlay); err != nil {
		t.Fatalf("Error parsing overlay response: %s", err)
	}
	if overlay.PageNumber != 1 {
		t.Errorf("Expected overlay for page 1, got %d", overlay.PageNumber)
	}
	if overlay.Width == 0 || overlay.Height == 0 {
		t.Error("Expected overlay dimensions in bitmap pixels")
	}

	response, err = tapp.app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/viewer/sessions/%s/pages/9", id), nil))
	if err != nil {
		t.Fatalf("Error requesting page: %s", err)
	}
	if response.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d for a page out of range, got %d", http.StatusNotFound, response.StatusCode)
	}
}

func TestSessionThumbnails(t *testing.T) {
	tapp := bootstrapApp(t, nil)
	id, _ := openSession(t, tapp.app, "irene-vallejo-the-moonlit-atlas")

	response, err := tapp.app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/viewer/sessions/%s/thumbnails/2", id), nil))
	if err != nil {
		t.Fatalf("Error requesting thumbnail: %s", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
	}
	if _, err := png.Decode(response.Body); err != nil {
		t.Errorf("Error decoding thumbnail: %s", err)
	}
}

func TestFlipLifecycle(t *testing.T) {
	tapp := bootstrapApp(t, nil)
	id, _ := openSession(t, tapp.app, "irene-vallejo-the-moonlit-atlas")
	base := "/viewer/sessions/" + id

	state := act(t, tapp.app, http.MethodPost, base+"/flip/next")
	if state.State != "flipping" {
		t.Errorf("Expected state %q, got %q", "flipping", state.State)
	}
	if state.CurrentPageIndex != 1 {
		t.Errorf("Expected page index 1, got %d", state.CurrentPageIndex)
	}

	// Flipping again before the animation completes is a no-op
	state = act(t, tapp.app, http.MethodPost, base+"/flip/next")
	if state.CurrentPageIndex != 1 {
		t.Errorf("Expected a flip in progress to hold at index 1, got %d", state.CurrentPageIndex)
	}

	state = act(t, tapp.app, http.MethodPost, base+"/flip/complete")
	if state.State != "idle" {
		t.Errorf("Expected state %q after completing the flip, got %q", "idle", state.State)
	}

	state = act(t, tapp.app, http.MethodPost, base+"/flip/prev")
	if state.CurrentPageIndex != 0 {
		t.Errorf("Expected page index 0, got %d", state.CurrentPageIndex)
	}
	act(t, tapp.app, http.MethodPost, base+"/flip/complete")

	state = act(t, tapp.app, http.MethodPost, base+"/turn-to/3")
	if state.CurrentPageIndex != 2 {
		t.Errorf("Expected page index 2, got %d", state.CurrentPageIndex)
	}
	act(t, tapp.app, http.MethodPost, base+"/flip/complete")

	// Out of range page numbers clamp to the last page
	state = act(t, tapp.app, http.MethodPost, base+"/turn-to/99")
	if state.CurrentPageIndex != 2 {
		t.Errorf("Expected page index 2, got %d", state.CurrentPageIndex)
	}
}

func TestAutoPlay(t *testing.T) {
	tapp := bootstrapApp(t, nil)
	id, _ := openSession(t, tapp.app, "irene-vallejo-the-moonlit-atlas")
	base := "/viewer/sessions/" + id

	state := act(t, tapp.app, http.MethodPut, base+"/autoplay?enabled=true")
	if !state.AutoPlay {
		t.Error("Expected auto-play to be enabled")
	}
	if state.State != "autoPlaying" {
		t.Errorf("Expected state %q, got %q", "autoPlaying", state.State)
	}

	state = act(t, tapp.app, http.MethodPut, base+"/autoplay?enabled=false")
	if state.AutoPlay {
		t.Error("Expected auto-play to be disabled")
	}
	if state.State != "idle" {
		t.Errorf("Expected state %q, got %q", "idle", state.State)
	}
}

func TestZoomIsClamped(t *testing.T) {
	tapp := bootstrapApp(t, nil)
	id, _ := openSession(t, tapp.app, "irene-vallejo-the-moonlit-atlas")
	base := "/viewer/sessions/" + id

	for _, tcase := range []struct {
		name       string
		percentage string
		expected   int
	}{
		{"Zoom above the maximum clamps to 300", "500", 300},
		{"Zoom below the minimum clamps to 50", "10", 50},
		{"Zoom inside the range is kept", "150", 150},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			state := act(t, tapp.app, http.MethodPut, base+"/zoom?percentage="+tcase.percentage)
			if state.Zoom != tcase.expected {
				t.Errorf("Expected zoom %d, got %d", tcase.expected, state.Zoom)
			}
		})
	}

	response, err := tapp.app.Test(httptest.NewRequest(http.MethodPut, base+"/zoom?percentage=several", nil))
	if err != nil {
		t.Fatalf("Error setting zoom: %s", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, response.StatusCode)
	}
}

func TestFullscreen(t *testing.T) {
	tapp := bootstrapApp(t, nil)
	id, _ := openSession(t, tapp.app, "irene-vallejo-the-moonlit-atlas")

	state := act(t, tapp.app, http.MethodPut, "/viewer/sessions/"+id+"/fullscreen?enabled=true")
	if !state.Fullscreen {
		t.Error("Expected the session to record full screen mode")
	}
}

func TestKeyboardNavigation(t *testing.T) {
	tapp := bootstrapApp(t, nil)
	id, _ := openSession(t, tapp.app, "irene-vallejo-the-moonlit-atlas")
	base := "/viewer/sessions/" + id

	response, err := tapp.app.Test(httptest.NewRequest(http.MethodPost, base+"/keys/ArrowRight", nil))
	if err != nil {
		t.Fatalf("Error pressing key: %s", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
	}
	var parsed struct {
		Bound bool      `json:"bound"`
		State flipState `json:"state"`
	}
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		t.Fatalf("Error parsing response: %s", err)
	}
	if !parsed.Bound {
		t.Error("Expected ArrowRight to be bound")
	}
	if parsed.State.CurrentPageIndex != 1 {
		t.Errorf("Expected page index 1, got %d", parsed.State.CurrentPageIndex)
	}

	response, err = tapp.app.Test(httptest.NewRequest(http.MethodPost, base+"/keys/Delete", nil))
	if err != nil {
		t.Fatalf("Error pressing key: %s", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, response.StatusCode)
	}
}

func TestSearchInsideDocument(t *testing.T) {
	tapp := bootstrapApp(t, nil)
	id, _ := openSession(t, tapp.app, "irene-vallejo-the-moonlit-atlas")
	base := "/viewer/sessions/" + id

	type searchMatch struct {
		PageNumber int      `json:"pageNumber"`
		Snippets   []string `json:"snippets"`
		MatchCount int      `json:"matchCount"`
		Highlights [][]struct {
			Text  string `json:"text"`
			Match bool   `json:"match"`
		} `json:"highlights"`
	}
	search := func(target string) (bool, []searchMatch) {
		t.Helper()

		response, err := tapp.app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		if err != nil {
			t.Fatalf("Error searching: %s", err)
		}
		if response.StatusCode != http.StatusOK {
			t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
		}
		var parsed struct {
			Indexed bool          `json:"indexed"`
			Results []searchMatch `json:"results"`
		}
		if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
			t.Fatalf("Error parsing search response: %s", err)
		}
		return parsed.Indexed, parsed.Results
	}

	indexed, results := search(base + "/search?query=cartographer")
	if !indexed {
		t.Error("Expected the document text to be indexed after searching")
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].PageNumber != 2 {
		t.Errorf("Expected a match on page 2, got %d", results[0].PageNumber)
	}
	if len(results[0].Snippets) == 0 {
		t.Error("Expected at least one snippet")
	}
	if len(results[0].Highlights) != len(results[0].Snippets) {
		t.Fatalf("Expected one highlight per snippet, got %d for %d snippets",
			len(results[0].Highlights), len(results[0].Snippets))
	}
	marked := false
	for _, segment := range results[0].Highlights[0] {
		if segment.Match && strings.EqualFold(segment.Text, "cartographer") {
			marked = true
		}
	}
	if !marked {
		t.Errorf("Expected the match marked in the highlight segments, got %+v", results[0].Highlights[0])
	}

	_, results = search(base + "/search?query=forgotten+places&exact=true")
	if len(results) != 1 || results[0].PageNumber != 3 {
		t.Errorf("Expected an exact match on page 3, got %+v", results)
	}

	_, results = search(base + "/search?query=dickens")
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestPageTurnSound(t *testing.T) {
	tapp := bootstrapApp(t, nil)
	id, _ := openSession(t, tapp.app, "irene-vallejo-the-moonlit-atlas")

	response, err := tapp.app.Test(httptest.NewRequest(http.MethodGet, "/viewer/sessions/"+id+"/page-turn.wav", nil))
	if err != nil {
		t.Fatalf("Error requesting sound: %s", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
	}
	if contentType := response.Header.Get(fiber.HeaderContentType); contentType != "audio/wav" {
		t.Errorf("Expected content type %q, got %q", "audio/wav", contentType)
	}
	header := make([]byte, 4)
	if _, err := io.ReadFull(response.Body, header); err != nil {
		t.Fatalf("Error reading sound body: %s", err)
	}
	if !strings.HasPrefix(string(header), "RIFF") {
		t.Errorf("Expected a RIFF WAV header, got %q", header)
	}
}

func TestCloseSession(t *testing.T) {
	tapp := bootstrapApp(t, nil)
	id, _ := openSession(t, tapp.app, "irene-vallejo-the-moonlit-atlas")

	response, err := tapp.app.Test(httptest.NewRequest(http.MethodDelete, "/viewer/sessions/"+id, nil))
	if err != nil {
		t.Fatalf("Error closing session: %s", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
	}

	response, err = tapp.app.Test(httptest.NewRequest(http.MethodGet, "/viewer/sessions/"+id, nil))
	if err != nil {
		t.Fatalf("Error requesting state: %s", err)
	}
	if response.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d after closing, got %d", http.StatusNotFound, response.StatusCode)
	}
}
