package infrastructure

import "sync"

// SMTPMock records outgoing messages instead of sending them. Callers must
// add to Wg before triggering a send and wait on it afterwards.
type SMTPMock struct {
	calledSend bool
	mu         sync.Mutex
	Wg         sync.WaitGroup
}

func (s *SMTPMock) Send(address, subject, body string) error {
	defer s.Wg.Done()

	s.mu.Lock()
	s.calledSend = true
	s.mu.Unlock()
	return nil
}

func (s *SMTPMock) CalledSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calledSend
}
