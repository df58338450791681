package submissions

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrInvalidInput is returned for submissions missing required fields.
	ErrInvalidInput = errors.New("invalid submission")
	// ErrNotFound is returned when no submission carries the given id.
	ErrNotFound = errors.New("submission not found")
)

// Store holds applicant submissions for the life of the process.
type Store interface {
	Add(ctx context.Context, sub Submission) error
	List(ctx context.Context) ([]Submission, error)
	// SetResult fills the scoring result for a stored submission. It exists
	// for the background scoring worker only and is not exposed over HTTP.
	SetResult(ctx context.Context, id string, result map[string]any) error
}

// MemoryStore is the process-local Store implementation: a single append-only
// list with no eviction.
type MemoryStore struct {
	mu   sync.RWMutex
	data []Submission
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add appends a submission. The id is required.
func (s *MemoryStore) Add(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sub.ID == "" {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, sub)
	return nil
}

// List returns all submissions, most recent first.
func (s *MemoryStore) List(ctx context.Context) ([]Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Submission, 0, len(s.data))
	for i := len(s.data) - 1; i >= 0; i-- {
		out = append(out, s.data[i])
	}
	return out, nil
}

// SetResult stores the scoring payload on the submission with the given id.
func (s *MemoryStore) SetResult(ctx context.Context, id string, result map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id == "" {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data {
		if s.data[i].ID == id {
			s.data[i].Result = result
			return nil
		}
	}
	return ErrNotFound
}

var _ Store = (*MemoryStore)(nil)
