package googlecalendar

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/saulo-duarte/sambat-api/internal/metrics"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCalendarService struct {
	inserted []*CalendarEntry
	updated  []*CalendarEntry
	deleted  []string
	err      error
}

func (f *fakeCalendarService) AddEventToCalendar(_ context.Context, _ uuid.UUID, entry *CalendarEntry) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.inserted = append(f.inserted, entry)
	return "gcal-1", nil
}

func (f *fakeCalendarService) UpdateEventInCalendar(_ context.Context, _ uuid.UUID, entry *CalendarEntry) error {
	f.updated = append(f.updated, entry)
	return f.err
}

func (f *fakeCalendarService) DeleteEventFromCalendar(_ context.Context, _ uuid.UUID, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func TestSyncEventInsertsThenUpdates(t *testing.T) {
	ctx := context.Background()
	fake := &fakeCalendarService{}
	m := NewCalendarManager(fake)
	entry := &CalendarEntry{ID: uuid.New(), Title: "Standup", DateAD: nepcal.Date{Year: 2024, Month: 4, Day: 13}}

	id, err := m.SyncEvent(ctx, uuid.New(), entry)
	require.NoError(t, err)
	assert.Equal(t, "gcal-1", id)
	assert.Len(t, fake.inserted, 1)

	entry.GoogleCalendarEventID = &id
	id, err = m.SyncEvent(ctx, uuid.New(), entry)
	require.NoError(t, err)
	assert.Equal(t, "gcal-1", id)
	assert.Len(t, fake.updated, 1)
}

func TestSyncEventReportsFailure(t *testing.T) {
	fake := &fakeCalendarService{err: errors.New("quota")}
	m := NewCalendarManager(fake)

	id, err := m.SyncEvent(context.Background(), uuid.New(), &CalendarEntry{ID: uuid.New()})
	assert.Error(t, err)
	assert.Empty(t, id)
}

func TestRemoveEvent(t *testing.T) {
	fake := &fakeCalendarService{}
	m := NewCalendarManager(fake)

	require.NoError(t, m.RemoveEvent(context.Background(), uuid.New(), ""))
	assert.Empty(t, fake.deleted)

	require.NoError(t, m.RemoveEvent(context.Background(), uuid.New(), "gcal-9"))
	assert.Equal(t, []string{"gcal-9"}, fake.deleted)
}

func TestRemoveEventCountsFailure(t *testing.T) {
	m := NewCalendarManager(&fakeCalendarService{err: errors.New("gone")})
	failures := metrics.CalendarSyncFailures.WithLabelValues("delete")
	before := testutil.ToFloat64(failures)

	assert.Error(t, m.RemoveEvent(context.Background(), uuid.New(), "gcal-9"))
	assert.Equal(t, before+1, testutil.ToFloat64(failures))
}

func TestNoopManager(t *testing.T) {
	m := NewNoopManager()
	existing := "kept"

	id, err := m.SyncEvent(context.Background(), uuid.New(), &CalendarEntry{GoogleCalendarEventID: &existing})
	require.NoError(t, err)
	assert.Equal(t, "kept", id)
	assert.NoError(t, m.RemoveEvent(context.Background(), uuid.New(), "x"))
}

func TestBuildCalendarEventIsAllDay(t *testing.T) {
	ev := buildCalendarEvent(&CalendarEntry{
		Title:       "New Year",
		Description: "Navavarsha",
		DateBS:      nepcal.Date{Year: 2081, Month: 12, Day: 31},
		DateAD:      nepcal.Date{Year: 2025, Month: 4, Day: 13},
	})
	require.NotNil(t, ev)
	assert.Equal(t, "2025-04-13", ev.Start.Date)
	assert.Equal(t, "2025-04-14", ev.End.Date)
	assert.Empty(t, ev.Start.DateTime)
	assert.Equal(t, "Navavarsha\n\nBS 2081-12-31", ev.Description)

	assert.Nil(t, buildCalendarEvent(&CalendarEntry{Title: "no date"}))
}
