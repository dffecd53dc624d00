package viewer

import (
	"errors"
	"sync"
	"time"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/audio"
	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/document"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("reading session not found")

// DefaultIdleTimeout is how long a reading session may go without any
// request before the manager expires it. Browsers close their session on
// page hide, so expiry only kicks in when a client disappears without
// saying goodbye.
const DefaultIdleTimeout = 30 * time.Minute

// Manager tracks the reading sessions currently open, one per reader.
// Sessions left untouched past the idle timeout are expired and torn
// down. All sessions share the same audio engine, which is process-wide
// state owned here and passed explicitly to each of them.
type Manager struct {
	opener document.Opener
	sound  *audio.Engine

	mu       sync.Mutex
	idle     time.Duration
	sessions map[string]*entry
	sweeper  *time.Timer
}

type entry struct {
	session  *Session
	lastUsed time.Time
}

func NewManager(opener document.Opener) *Manager {
	return &Manager{
		opener:   opener,
		sound:    audio.NewEngine(),
		idle:     DefaultIdleTimeout,
		sessions: make(map[string]*entry),
	}
}

// SetIdleTimeout changes how long a session may sit unused before it is
// expired
func (m *Manager) SetIdleTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.idle = timeout
	if m.sweeper != nil {
		m.sweeper.Reset(timeout)
	}
}

// Open starts a reading session over the document at path, returning its
// identifier
func (m *Manager) Open(path string) (string, *Session, error) {
	session, err := NewSession(m.opener, path, m.sound)
	if err != nil {
		return "", nil, err
	}

	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = &entry{session: session, lastUsed: time.Now()}
	// the sweeper only runs while there are sessions to watch
	if m.sweeper == nil {
		m.sweeper = time.AfterFunc(m.idle, m.sweep)
	}
	m.mu.Unlock()

	return id, session, nil
}

// Get returns the session with the passed identifier, marking it as
// still in use
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.lastUsed = time.Now()
	return e.session, nil
}

// Close tears down the session with the passed identifier
func (m *Manager) Close(id string) {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	if len(m.sessions) == 0 && m.sweeper != nil {
		m.sweeper.Stop()
		m.sweeper = nil
	}
	m.mu.Unlock()

	if ok {
		e.session.Close()
	}
}

// sweep expires every session idle for longer than the timeout and
// reschedules itself while sessions remain
func (m *Manager) sweep() {
	m.mu.Lock()
	var expired []*Session
	now := time.Now()
	for id, e := range m.sessions {
		if now.Sub(e.lastUsed) >= m.idle {
			expired = append(expired, e.session)
			delete(m.sessions, id)
		}
	}
	if len(m.sessions) > 0 {
		m.sweeper.Reset(m.idle)
	} else {
		m.sweeper = nil
	}
	m.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}
}
