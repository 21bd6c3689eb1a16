package chat

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/schema"
)

// MemoryStore is the default transcript store: plain process memory, reset by
// a restart, never persisted.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]*schema.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]*schema.Message)}
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, message *schema.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], message)
	return nil
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]*schema.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.sessions[sessionID]
	out := make([]*schema.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) Len(_ context.Context, sessionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions[sessionID]), nil
}

var _ TranscriptStore = (*MemoryStore)(nil)
