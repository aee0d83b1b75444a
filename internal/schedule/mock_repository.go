package schedule

import (
	"sort"
	"sync"
)

type mockRepository struct {
	events map[uint]*Event
	nextID uint
	mu     sync.RWMutex
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		events: make(map[uint]*Event),
		nextID: 1,
	}
}

func (r *mockRepository) Create(event *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *event
	copied.ID = r.nextID
	r.nextID++
	r.events[copied.ID] = &copied
	event.ID = copied.ID
	return nil
}

func (r *mockRepository) Update(event *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[event.ID]; !exists {
		return ErrEventNotFound
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *mockRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[id]; !exists {
		return ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *mockRepository) GetByID(id uint) (*Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, exists := r.events[id]
	if !exists {
		return nil, ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (r *mockRepository) ListAll() ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]Event, 0, len(r.events))
	for _, event := range r.events {
		events = append(events, *event)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}
