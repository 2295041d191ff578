package brush

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	errgo "gopkg.in/errgo.v1"
)

// MemoryStore keeps brushes in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	brushes map[string]*Brush
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{brushes: make(map[string]*Brush)}
}

func (s *MemoryStore) Save(_ context.Context, b *Brush) (string, error) {
	if b == nil {
		return "", errgo.WithCausef(nil, ErrEmptyPattern, "cannot save nil brush")
	}
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brushes[id] = b
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Brush, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.brushes[id]
	return b, ok, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.brushes))
	for id, b := range s.brushes {
		out = append(out, recordOf(id, b))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brushes[id]; !ok {
		return errgo.WithCausef(nil, ErrNotFound, "brush %q not found", id)
	}
	delete(s.brushes, id)
	return nil
}
