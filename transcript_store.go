package botsdk

import (
	"sync"

	"github.com/bytedance/sonic"
)

// ──────────────────────────────────────────────
// Transcript Store — pluggable turn persistence
// ──────────────────────────────────────────────

// TranscriptStore is the storage backend interface for conversation
// transcripts. Turns are organized by namespace (the conversation ID)
// and key, as ordered append-only lists.
type TranscriptStore interface {
	Append(namespace, key, value string) error
	GetList(namespace, key string, limit, offset int) ([]string, error)
	ClearList(namespace, key string) error
	ListLength(namespace, key string) (int, error)
}

// turnsKey is the list key conversations write their turns under.
const turnsKey = "turns"

// InMemoryTranscriptStore is a thread-safe in-memory TranscriptStore.
// Data is lost on restart; use the Redis-backed store for anything
// that outlives the process.
type InMemoryTranscriptStore struct {
	mu    sync.RWMutex
	lists map[string]map[string][]string
}

// NewInMemoryTranscriptStore creates a new in-memory store.
func NewInMemoryTranscriptStore() *InMemoryTranscriptStore {
	return &InMemoryTranscriptStore{lists: make(map[string]map[string][]string)}
}

func (s *InMemoryTranscriptStore) Append(namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lists[namespace] == nil {
		s.lists[namespace] = make(map[string][]string)
	}
	s.lists[namespace][key] = append(s.lists[namespace][key], value)
	return nil
}

func (s *InMemoryTranscriptStore) GetList(namespace, key string, limit, offset int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []string
	if ns, ok := s.lists[namespace]; ok {
		items = ns[key]
	}
	if offset >= len(items) {
		return []string{}, nil
	}
	if offset > 0 {
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	result := make([]string, len(items))
	copy(result, items)
	return result, nil
}

func (s *InMemoryTranscriptStore) ClearList(namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ns, ok := s.lists[namespace]; ok {
		ns[key] = nil
	}
	return nil
}

func (s *InMemoryTranscriptStore) ListLength(namespace, key string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ns, ok := s.lists[namespace]; ok {
		return len(ns[key]), nil
	}
	return 0, nil
}

// ─── Turn serialization ───

func marshalTurn(t Turn) (string, error) {
	data, err := sonic.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalTurn(raw string) (Turn, error) {
	var t Turn
	err := sonic.Unmarshal([]byte(raw), &t)
	return t, err
}

// LoadTranscript reads a conversation's persisted turns back from a
// store, in send order.
func LoadTranscript(store TranscriptStore, conversationID string) ([]Turn, error) {
	raws, err := store.GetList(conversationID, turnsKey, 0, 0)
	if err != nil {
		return nil, err
	}
	turns := make([]Turn, 0, len(raws))
	for _, raw := range raws {
		t, err := unmarshalTurn(raw)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, nil
}
