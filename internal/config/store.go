package config

import "sync"

// Store holds the live configuration and fans reloads out to subscribers
type Store struct {
	mu     sync.RWMutex
	cfg    *Config
	nextID int
	subs   map[int]chan *Config
}

// NewStore creates a Store seeded with cfg
func NewStore(cfg *Config) *Store {
	return &Store{
		cfg:  cfg,
		subs: make(map[int]chan *Config),
	}
}

// Current returns the active configuration
func (s *Store) Current() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Set replaces the configuration and notifies subscribers. A subscriber that
// has not drained its previous notification only sees the newest one.
func (s *Store) Set(cfg *Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- cfg
	}
}

// Subscribe returns a channel receiving every future configuration and a
// function that cancels the subscription.
func (s *Store) Subscribe() (<-chan *Config, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	ch := make(chan *Config, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers reports the number of live subscriptions
func (s *Store) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
