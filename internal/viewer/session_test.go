package viewer_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/document"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/viewer"
)

func fakeLibrary() (*document.FakeOpener, *document.FakeDocument, *document.FakeDocument) {
	report := document.NewFakeDocument(
		"Annual report cover",
		"The first invoice was sent in March",
		"Quarterly results",
		"Another invoice, and another invoice after it",
		"Closing remarks",
		"Appendix A",
		"Appendix B with an invoice copy",
		"Notes",
		"More notes",
		"Back cover",
	)
	manual := document.NewFakeDocument("User manual", "Troubleshooting")
	opener := &document.FakeOpener{
		Docs: map[string]*document.FakeDocument{
			"report.pdf": report,
			"manual.pdf": manual,
		},
	}
	return opener, report, manual
}

func TestSessionOpenFailureIsTerminal(t *testing.T) {
	opener, _, _ := fakeLibrary()
	manager := viewer.NewManager(opener)

	_, _, err := manager.Open("missing.pdf")
	var decodeErr *document.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected a decode error, got %v", err)
	}
}

func TestSessionCachesRenderedPages(t *testing.T) {
	opener, report, _ := fakeLibrary()
	manager := viewer.NewManager(opener)

	_, session, err := manager.Open("report.pdf")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := session.Page(2); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if report.RenderCalls(2) != 1 {
		t.Errorf("Expected a single rasterization for page 2, got %d", report.RenderCalls(2))
	}
}

func TestReplaceInvalidatesSessionCaches(t *testing.T) {
	opener, report, manual := fakeLibrary()
	manager := viewer.NewManager(opener)

	_, session, err := manager.Open("report.pdf")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	session.Search("invoice", false)
	if !session.Indexed() {
		t.Fatalf("Expected the index to be built after the first search")
	}

	if err := session.Replace("manual.pdf"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !report.Closed() {
		t.Errorf("Expected the replaced document to be closed")
	}
	if session.Indexed() {
		t.Errorf("Expected the text index to be discarded with the document")
	}
	if session.PageCount() != manual.PageCount() {
		t.Errorf("Expected the session to expose the new document")
	}

	results := session.Search("troubleshooting", false)
	if len(results) != 1 || results[0].PageNumber != 2 {
		t.Errorf("Expected the new document to be searchable, got %v", results)
	}
}

func TestReplaceKeepsSessionOnDecodeFailure(t *testing.T) {
	opener, _, _ := fakeLibrary()
	manager := viewer.NewManager(opener)

	_, session, err := manager.Open("report.pdf")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := session.Replace("missing.pdf"); err == nil {
		t.Fatalf("Expected a decode error")
	}
	if session.PageCount() != 10 {
		t.Errorf("Expected the current document to stay open")
	}
}

func TestEndToEndSearchScenario(t *testing.T) {
	opener, _, _ := fakeLibrary()
	manager := viewer.NewManager(opener)

	_, session, err := manager.Open("report.pdf")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	results := session.Search("invoice", false)

	expectedPages := []int{2, 4, 7}
	if len(results) != len(expectedPages) {
		t.Fatalf("Expected %d result pages, got %d", len(expectedPages), len(results))
	}
	for i, result := range results {
		if result.PageNumber != expectedPages[i] {
			t.Errorf("Expected page %d at position %d, got %d", expectedPages[i], i, result.PageNumber)
		}
		if len(result.Snippets) > 2 {
			t.Errorf("Expected at most 2 snippets, got %d", len(result.Snippets))
		}
	}
	if results[1].MatchCount != 2 {
		t.Errorf("Expected 2 matches on page 4, got %d", results[1].MatchCount)
	}
}

func TestManagerTracksSessions(t *testing.T) {
	opener, report, _ := fakeLibrary()
	manager := viewer.NewManager(opener)

	id, _, err := manager.Open("report.pdf")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := manager.Get(id); err != nil {
		t.Fatalf("Expected the session to be retrievable: %v", err)
	}

	manager.Close(id)
	if _, err := manager.Get(id); !errors.Is(err, viewer.ErrSessionNotFound) {
		t.Errorf("Expected the session to be gone, got %v", err)
	}
	if !report.Closed() {
		t.Errorf("Expected the document to be closed with its session")
	}
}

func TestAbandonedSessionsExpire(t *testing.T) {
	opener, report, _ := fakeLibrary()
	manager := viewer.NewManager(opener)
	manager.SetIdleTimeout(20 * time.Millisecond)

	id, session, err := manager.Open("report.pdf")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// a client gone without closing leaves auto-play running server-side
	session.Flip().SetAutoPlay(true)

	time.Sleep(250 * time.Millisecond)

	if _, err := manager.Get(id); !errors.Is(err, viewer.ErrSessionNotFound) {
		t.Fatalf("Expected the abandoned session to be expired, got %v", err)
	}
	if !report.Closed() {
		t.Errorf("Expected the document to be closed on expiry")
	}
}

func TestKeyboardNavigation(t *testing.T) {
	opener, _, _ := fakeLibrary()
	manager := viewer.NewManager(opener)

	_, session, err := manager.Open("report.pdf")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	session.Keymap().Press("ArrowRight")
	session.Flip().CompleteFlip()
	if session.Flip().CurrentPageIndex() != 1 {
		t.Errorf("Expected the keyboard to drive navigation")
	}
}
