package flip

import "sync"

const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Keymap dispatches key presses to navigation operations while a viewer is
// the active view. Bindings are registered on creation and must be removed
// with Close when the viewer goes away, so no key presses leak into other
// views.
type Keymap struct {
	mu       sync.Mutex
	bindings map[string]func()
}

// NewKeymap binds the left and right arrows of the passed handle
func NewKeymap(handle Handle) *Keymap {
	return &Keymap{
		bindings: map[string]func(){
			KeyArrowLeft:  func() { handle.FlipPrev() },
			KeyArrowRight: func() { handle.FlipNext() },
		},
	}
}

// Press dispatches a key press, reporting whether it was bound
func (k *Keymap) Press(key string) bool {
	k.mu.Lock()
	binding, ok := k.bindings[key]
	k.mu.Unlock()

	if !ok {
		return false
	}
	binding()
	return true
}

// Close removes all bindings
func (k *Keymap) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.bindings = nil
}
