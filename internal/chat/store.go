package chat

import (
	"sync"
	"time"
)

// Store keeps one conversation per browser session in memory.
type Store struct {
	mu            sync.RWMutex
	conversations map[string]*Conversation
	newFn         func() *Conversation
}

func NewStore(newFn func() *Conversation) *Store {
	return &Store{
		conversations: make(map[string]*Conversation),
		newFn:         newFn,
	}
}

func (s *Store) Get(id string) (*Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversations[id]
	return c, ok
}

// GetOrCreate returns the conversation for id, starting a new one when id is
// unknown. The second result reports whether a conversation was created.
func (s *Store) GetOrCreate(id string) (*Conversation, bool) {
	if c, ok := s.Get(id); ok {
		return c, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.conversations[id]; ok {
		return c, false
	}
	c := s.newFn()
	s.conversations[c.ID()] = c
	return c, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}

// Sweep closes and forgets conversations idle for longer than idle. It
// returns how many were removed.
func (s *Store) Sweep(idle time.Duration, now time.Time) int {
	s.mu.Lock()
	var stale []*Conversation
	for id, c := range s.conversations {
		if now.Sub(c.LastActive()) > idle {
			stale = append(stale, c)
			delete(s.conversations, id)
		}
	}
	s.mu.Unlock()

	for _, c := range stale {
		c.Close()
	}
	return len(stale)
}
