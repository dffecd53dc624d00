package flip_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/flip"
)

func TestFlipBounds(t *testing.T) {
	ctrl := flip.NewController(3, nil)

	if ctrl.FlipPrev() {
		t.Errorf("Expected flipping back from the first page to be a no-op")
	}
	if ctrl.CurrentPageIndex() != 0 {
		t.Errorf("Expected index to stay at 0, got %d", ctrl.CurrentPageIndex())
	}

	for i := 0; i < 2; i++ {
		if !ctrl.FlipNext() {
			t.Fatalf("Expected flip %d to begin", i+1)
		}
		ctrl.CompleteFlip()
	}
	if ctrl.CurrentPageIndex() != 2 {
		t.Fatalf("Expected to be on the last page, got index %d", ctrl.CurrentPageIndex())
	}

	if ctrl.FlipNext() {
		t.Errorf("Expected flipping forward from the last page to be a no-op")
	}
	if ctrl.CurrentPageIndex() != 2 {
		t.Errorf("Expected index to stay at 2, got %d", ctrl.CurrentPageIndex())
	}
}

func TestFlipRequestsIgnoredWhileFlipping(t *testing.T) {
	ctrl := flip.NewController(5, nil)

	if !ctrl.FlipNext() {
		t.Fatalf("Expected the first flip to begin")
	}
	if ctrl.State() != flip.Flipping {
		t.Fatalf("Expected the controller to be flipping")
	}
	if ctrl.FlipNext() {
		t.Errorf("Expected a flip request during a transition to be ignored")
	}
	ctrl.CompleteFlip()
	if ctrl.State() != flip.Idle {
		t.Errorf("Expected the controller to return to idle")
	}
}

func TestTurnToPageClamps(t *testing.T) {
	for _, tcase := range []struct {
		name          string
		target        int
		expectedIndex int
	}{
		{"Within range", 4, 3},
		{"Above range", 100, 9},
		{"Below range", -2, 0},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			ctrl := flip.NewController(10, nil)
			ctrl.TurnToPage(5)
			ctrl.CompleteFlip()

			ctrl.TurnToPage(tcase.target)
			ctrl.CompleteFlip()
			if ctrl.CurrentPageIndex() != tcase.expectedIndex {
				t.Errorf("Expected index %d, got %d", tcase.expectedIndex, ctrl.CurrentPageIndex())
			}
		})
	}
}

func TestFlipNotifiesOncePerFlip(t *testing.T) {
	var flips atomic.Int32
	ctrl := flip.NewController(4, func(from, to int) {
		flips.Add(1)
	})

	ctrl.FlipNext()
	ctrl.CompleteFlip()
	ctrl.FlipNext()
	ctrl.CompleteFlip()
	ctrl.FlipPrev()
	ctrl.CompleteFlip()
	// Jumping to the page already being shown must not notify
	ctrl.TurnToPage(2)

	if flips.Load() != 3 {
		t.Errorf("Expected 3 flip notifications, got %d", flips.Load())
	}
}

func TestAutoPlayWrapsAround(t *testing.T) {
	ctrl := flip.NewController(3, nil)
	ctrl.SetInterval(10 * time.Millisecond)

	ctrl.TurnToPage(3)
	ctrl.CompleteFlip()
	if ctrl.CurrentPageIndex() != 2 {
		t.Fatalf("Expected to start from the last page")
	}

	ctrl.SetAutoPlay(true)
	defer ctrl.Close()

	deadline := time.After(time.Second)
	for ctrl.CurrentPageIndex() != 0 {
		select {
		case <-deadline:
			t.Fatalf("Expected auto-play to wrap to the first page")
		case <-time.After(time.Millisecond):
			ctrl.CompleteFlip()
		}
	}
}

func TestAutoPlayCancellation(t *testing.T) {
	ctrl := flip.NewController(10, nil)
	ctrl.SetInterval(20 * time.Millisecond)

	ctrl.SetAutoPlay(true)
	if ctrl.State() != flip.AutoPlaying {
		t.Fatalf("Expected the controller to be auto-playing")
	}
	ctrl.SetAutoPlay(false)

	index := ctrl.CurrentPageIndex()
	time.Sleep(100 * time.Millisecond)
	if ctrl.CurrentPageIndex() != index {
		t.Errorf("Expected no advance after disabling auto-play")
	}
	if ctrl.State() != flip.Idle {
		t.Errorf("Expected the controller to be idle after disabling auto-play")
	}
}

func TestKeymap(t *testing.T) {
	ctrl := flip.NewController(3, nil)
	keymap := flip.NewKeymap(ctrl)

	if !keymap.Press(flip.KeyArrowRight) {
		t.Errorf("Expected the right arrow to be bound")
	}
	ctrl.CompleteFlip()
	if ctrl.CurrentPageIndex() != 1 {
		t.Errorf("Expected the right arrow to advance, got index %d", ctrl.CurrentPageIndex())
	}

	if !keymap.Press(flip.KeyArrowLeft) {
		t.Errorf("Expected the left arrow to be bound")
	}
	ctrl.CompleteFlip()
	if ctrl.CurrentPageIndex() != 0 {
		t.Errorf("Expected the left arrow to go back, got index %d", ctrl.CurrentPageIndex())
	}

	if keymap.Press("Enter") {
		t.Errorf("Expected unbound keys to be ignored")
	}

	keymap.Close()
	if keymap.Press(flip.KeyArrowRight) {
		t.Errorf("Expected no bindings after teardown")
	}
	if ctrl.CurrentPageIndex() != 0 {
		t.Errorf("Expected no navigation after teardown, got index %d", ctrl.CurrentPageIndex())
	}
}
