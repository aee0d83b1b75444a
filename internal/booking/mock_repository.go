package booking

import (
	"sync"
	"time"
)

type mockRepository struct {
	requests []Request
	nextID   uint
	mu       sync.RWMutex
}

func newMockRepository() *mockRepository {
	return &mockRepository{nextID: 1}
}

func (r *mockRepository) Create(request *Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *request
	copied.ID = r.nextID
	copied.CreatedAt = time.Now()
	r.nextID++
	r.requests = append(r.requests, copied)
	request.ID = copied.ID
	return nil
}

func (r *mockRepository) List() ([]Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Request, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *mockRepository) Close(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Closed = true
			return nil
		}
	}
	return ErrRequestNotFound
}
