package flip

import (
	"sync"
	"time"
)

// State of the flip interaction controller
type State int

const (
	Idle State = iota
	Flipping
	AutoPlaying
)

// DefaultAutoPlayInterval is the pause between automatic page advances
const DefaultAutoPlayInterval = 3500 * time.Millisecond

const (
	minZoom = 50
	maxZoom = 300
)

// Handle exposes the navigation operations of a controller. It is a
// capability object: whoever holds it can drive page turning, be it the
// keyboard dispatcher or the dock buttons.
type Handle interface {
	FlipNext() bool
	FlipPrev() bool
	TurnToPage(number int)
	CurrentPageIndex() int
	PageCount() int
}

// Controller keeps the current page state of an open document and drives
// page transitions, including timed automatic advance. A transition into
// the flipping state notifies the onFlip callback exactly once per flip.
type Controller struct {
	mu       sync.Mutex
	state    State
	autoPlay bool
	current  int
	total    int
	zoom     int
	interval time.Duration
	timer    *time.Timer
	onFlip   func(from, to int)
}

// NewController creates a controller over a document with the passed number
// of pages. onFlip may be nil.
func NewController(pageCount int, onFlip func(from, to int)) *Controller {
	return &Controller{
		total:    pageCount,
		zoom:     100,
		interval: DefaultAutoPlayInterval,
		onFlip:   onFlip,
	}
}

// SetInterval changes the auto-play advance interval
func (c *Controller) SetInterval(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.interval = interval
}

// FlipNext begins a flip to the next page. It is a no-op when already on
// the last page or while another flip is in progress.
func (c *Controller) FlipNext() bool {
	c.mu.Lock()
	if c.state == Flipping || c.current >= c.total-1 {
		c.mu.Unlock()
		return false
	}
	notify := c.beginFlip(c.current + 1)
	c.mu.Unlock()

	notify()
	return true
}

// FlipPrev begins a flip to the previous page. It is a no-op when already
// on the first page or while another flip is in progress.
func (c *Controller) FlipPrev() bool {
	c.mu.Lock()
	if c.state == Flipping || c.current <= 0 {
		c.mu.Unlock()
		return false
	}
	notify := c.beginFlip(c.current - 1)
	c.mu.Unlock()

	notify()
	return true
}

// TurnToPage jumps to the passed 1-based page number, clamping it into the
// valid range
func (c *Controller) TurnToPage(number int) {
	c.mu.Lock()
	if number < 1 {
		number = 1
	}
	if number > c.total {
		number = c.total
	}
	target := number - 1
	if c.state == Flipping || target == c.current {
		c.mu.Unlock()
		return
	}
	notify := c.beginFlip(target)
	c.mu.Unlock()

	notify()
}

// CompleteFlip reports that the flip animation finished, returning the
// controller to the idle or auto-playing state
func (c *Controller) CompleteFlip() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Flipping {
		return
	}
	if c.autoPlay {
		c.state = AutoPlaying
		c.schedule()
		return
	}
	c.state = Idle
}

// CurrentPageIndex returns the 0-based index of the current page
func (c *Controller) CurrentPageIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}

func (c *Controller) PageCount() int {
	return c.total
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// SetAutoPlay toggles timed automatic page advance. Upon reaching the last
// page auto-play wraps to the first one. Disabling cancels any pending
// advance: none may fire afterwards.
func (c *Controller) SetAutoPlay(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.autoPlay == enabled {
		return
	}
	c.autoPlay = enabled

	if enabled {
		if c.state == Idle {
			c.state = AutoPlaying
		}
		c.schedule()
		return
	}

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.state == AutoPlaying {
		c.state = Idle
	}
}

func (c *Controller) AutoPlay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.autoPlay
}

// SetZoom updates the zoom percentage, clamped into [50, 300]
func (c *Controller) SetZoom(percentage int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if percentage < minZoom {
		percentage = minZoom
	}
	if percentage > maxZoom {
		percentage = maxZoom
	}
	c.zoom = percentage
}

func (c *Controller) Zoom() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.zoom
}

// Close cancels auto-play. No scheduled advance may fire after teardown.
func (c *Controller) Close() {
	c.SetAutoPlay(false)
}

// beginFlip must be called with the mutex held. It returns the callback
// notification to run once the mutex has been released.
func (c *Controller) beginFlip(to int) func() {
	from := c.current
	c.current = to
	c.state = Flipping

	onFlip := c.onFlip
	return func() {
		if onFlip != nil {
			onFlip(from, to)
		}
	}
}

// schedule must be called with the mutex held
func (c *Controller) schedule() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.interval, c.advance)
}

func (c *Controller) advance() {
	c.mu.Lock()
	if !c.autoPlay {
		c.mu.Unlock()
		return
	}
	if c.state == Flipping {
		c.schedule()
		c.mu.Unlock()
		return
	}

	to := c.current + 1
	if c.current >= c.total-1 {
		to = 0
	}
	notify := c.beginFlip(to)
	c.schedule()
	c.mu.Unlock()

	notify()
}
