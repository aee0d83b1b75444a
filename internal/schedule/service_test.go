package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *mockRepository) {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	repo := newMockRepository()
	return NewService(logger, repo), repo
}

func TestService_Create_NormalizesTimes(t *testing.T) {
	svc, repo := newTestService(t)

	event := &Event{
		Title:     "Food Truck Friday",
		Town:      "Peoria",
		Date:      "2025-05-02",
		StartTime: "1130",
		EndTime:   "1pm",
		Published: true,
	}
	require.NoError(t, svc.Create(event))

	stored, err := repo.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, "11:30 AM", stored.StartTime)
	assert.Equal(t, "1:00 PM", stored.EndTime)
}

func TestService_Create_KeepsUnparseableTimes(t *testing.T) {
	svc, repo := newTestService(t)

	event := &Event{
		Title:     "Evening Pop-Up",
		Date:      "2025-06-10",
		StartTime: "dusk",
		Published: true,
	}
	require.NoError(t, svc.Create(event))

	stored, err := repo.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, "dusk", stored.StartTime)
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name  string
		event Event
	}{
		{name: "missing title", event: Event{Date: "2025-05-02"}},
		{name: "missing date", event: Event{Title: "Pop-Up"}},
		{name: "malformed date", event: Event{Title: "Pop-Up", Date: "05/02/2025"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(&tt.event)
			assert.ErrorIs(t, err, ErrInvalidEvent)
		})
	}
}

func TestService_MonthCounts(t *testing.T) {
	svc, _ := newTestService(t)

	seed := []Event{
		{Title: "A", Date: "2025-05-01", Published: true},
		{Title: "B", Date: "2025-05-01", Published: true},
		{Title: "C", Date: "2025-05-17", Published: true},
		{Title: "Draft", Date: "2025-05-17", Published: false},
		{Title: "Other month", Date: "2025-06-01", Published: true},
	}
	for i := range seed {
		require.NoError(t, svc.Create(&seed[i]))
	}

	counts, err := svc.MonthCounts(2025, 5)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"2025-05-01": 2,
		"2025-05-17": 1,
	}, counts)
}

func TestService_Upcoming(t *testing.T) {
	svc, _ := newTestService(t)

	seed := []Event{
		{Title: "Past", Date: "2025-04-30", Published: true},
		{Title: "Today", Date: "2025-05-01", Published: true},
		{Title: "Future", Date: "2025-05-20", Published: true},
		{Title: "Unpublished", Date: "2025-05-20", Published: false},
	}
	for i := range seed {
		require.NoError(t, svc.Create(&seed[i]))
	}

	events, err := svc.Upcoming("2025-05-01")
	require.NoError(t, err)

	titles := make([]string, 0, len(events))
	for _, event := range events {
		titles = append(titles, event.Title)
	}
	assert.Equal(t, []string{"Today", "Future"}, titles)
}

func TestService_Update(t *testing.T) {
	svc, _ := newTestService(t)

	event := &Event{Title: "Original", Date: "2025-05-01", Published: true}
	require.NoError(t, svc.Create(event))

	updated, err := svc.Update(event.ID, &Event{
		Title:     "Moved",
		Date:      "2025-05-02",
		StartTime: "1730",
		Published: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Moved", updated.Title)
	assert.Equal(t, "5:30 PM", updated.StartTime)

	_, err = svc.Update(9999, &Event{Title: "X", Date: "2025-05-02"})
	assert.ErrorIs(t, err, ErrEventNotFound)
}
