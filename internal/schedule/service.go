package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

var ErrInvalidEvent = errors.New("event title and date are required")

type Service struct {
	log        *zap.Logger
	repository Repository
}

func NewService(log *zap.Logger, repo Repository) *Service {
	return &Service{
		log:        log,
		repository: repo,
	}
}

func validateEvent(event *Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return ErrInvalidEvent
	}
	if _, err := time.Parse("2006-01-02", event.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidEvent, event.Date)
	}
	return nil
}

func (s *Service) Create(event *Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	event.StartTime = NormalizeTime(event.StartTime)
	event.EndTime = NormalizeTime(event.EndTime)

	return s.repository.Create(event)
}

func (s *Service) Update(id uint, updated *Event) (*Event, error) {
	event, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := validateEvent(updated); err != nil {
		return nil, err
	}

	event.Title = updated.Title
	event.Town = updated.Town
	event.Address = updated.Address
	event.Date = updated.Date
	event.StartTime = NormalizeTime(updated.StartTime)
	event.EndTime = NormalizeTime(updated.EndTime)
	event.Notes = updated.Notes
	event.Published = updated.Published

	if err := s.repository.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) Delete(id uint) error {
	return s.repository.Delete(id)
}

func (s *Service) Get(id uint) (*Event, error) {
	return s.repository.GetByID(id)
}

func (s *Service) List() ([]Event, error) {
	return s.repository.ListAll()
}

// Upcoming returns published events on or after the given ISO day. The
// collection is small; it is loaded whole and filtered in memory.
func (s *Service) Upcoming(from string) ([]Event, error) {
	events, err := s.repository.ListAll()
	if err != nil {
		return nil, err
	}

	upcoming := make([]Event, 0, len(events))
	for _, event := range events {
		if event.Published && event.Date >= from {
			upcoming = append(upcoming, event)
		}
	}
	return upcoming, nil
}

// MonthCounts builds the calendar day-count map for one month: ISO day to
// number of published events that day.
func (s *Service) MonthCounts(year, month int) (map[string]int, error) {
	events, err := s.repository.ListAll()
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	counts := make(map[string]int)
	for _, event := range events {
		if event.Published && strings.HasPrefix(event.Date, prefix) {
			counts[event.Date]++
		}
	}
	return counts, nil
}
