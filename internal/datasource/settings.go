package datasource

import "sync"

type Mode string

const (
	ModeDemo     Mode = "demo"
	ModeDatabase Mode = "database"
)

func (m Mode) Valid() bool {
	return m == ModeDemo || m == ModeDatabase
}

// Settings holds the current data-source mode and fans changes out to
// subscribers. Each subscriber channel is buffered; a slow consumer drops
// updates instead of blocking the writer.
type Settings struct {
	mu   sync.RWMutex
	mode Mode
	subs map[int64]chan Mode
	next int64
}

func NewSettings(mode Mode) *Settings {
	if !mode.Valid() {
		mode = ModeDatabase
	}
	return &Settings{
		mode: mode,
		subs: make(map[int64]chan Mode),
	}
}

func (s *Settings) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches the data source and notifies subscribers. Returns false
// when the mode is unknown or unchanged.
func (s *Settings) SetMode(mode Mode) bool {
	if !mode.Valid() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == mode {
		return false
	}
	s.mode = mode

	// Non-blocking sends under the lock keep Subscribe/cancel races out.
	for _, ch := range s.subs {
		select {
		case ch <- mode:
		default:
		}
	}
	return true
}

// Subscribe returns a channel receiving mode changes and a cancel func.
func (s *Settings) Subscribe() (<-chan Mode, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan Mode, 4)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancel
}
