package state

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var ErrStateNotFound = errors.New("thread state not found")

// Store is the persistence contract used by the supervisor.
type Store interface {
	Load(ctx context.Context, threadID string) (*ThreadState, error)
	Save(ctx context.Context, st *ThreadState) error
	Delete(ctx context.Context, threadID string) error
}

// MemoryStore keeps thread state in-process. It clones on the way in and out
// so callers never share a record with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	threads map[string]*ThreadState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{threads: make(map[string]*ThreadState)}
}

func (s *MemoryStore) Load(ctx context.Context, threadID string) (*ThreadState, error) {
	if strings.TrimSpace(threadID) == "" {
		return nil, ErrInvalidThread
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.threads[threadID]
	if !ok {
		return nil, ErrStateNotFound
	}
	return st.clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, st *ThreadState) error {
	if st == nil {
		return ErrNilThreadState
	}
	if err := st.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[st.ThreadID] = st.clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, threadID string) error {
	if strings.TrimSpace(threadID) == "" {
		return ErrInvalidThread
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.threads, threadID)
	return nil
}
