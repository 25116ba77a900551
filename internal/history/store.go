package history

import "sync"

// Entry is a single remembered result. Translation runs fill Original,
// Translation and TargetLanguage; extraction runs fill Text, Method and
// Confidence.
type Entry struct {
	ID             string `json:"id"`
	Original       string `json:"original,omitempty"`
	Translation    string `json:"translation,omitempty"`
	Text           string `json:"text,omitempty"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
	Service        string `json:"service,omitempty"`
	Method         string `json:"method,omitempty"`
	Confidence     int    `json:"confidence,omitempty"`
	Timestamp      string `json:"timestamp"`
}

// Store is a bounded, newest-first history list. Once capacity is
// reached the oldest entries are dropped.
type Store struct {
	mu       sync.RWMutex
	capacity int
	entries  []Entry
}

func NewStore(capacity int) *Store {
	return &Store{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
	}
}

// Add inserts an entry at the head, evicting past capacity.
func (s *Store) Add(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]Entry{entry}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
}

// List returns a copy of the entries, newest first.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Entry, len(s.entries))
	copy(result, s.entries)
	return result
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = s.entries[:0]
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
