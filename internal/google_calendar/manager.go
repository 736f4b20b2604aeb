package googlecalendar

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/metrics"
)

// CalendarManager keeps an owner's Google Calendar in step with their events.
// Failures are logged and counted but never fail the calling write.
type CalendarManager interface {
	SyncEvent(ctx context.Context, ownerID uuid.UUID, entry *CalendarEntry) (eventID string, err error)
	RemoveEvent(ctx context.Context, ownerID uuid.UUID, eventID string) error
}

type calendarManager struct {
	calendarService CalendarService
}

func NewCalendarManager(calendarService CalendarService) CalendarManager {
	return &calendarManager{
		calendarService: calendarService,
	}
}

func (m *calendarManager) SyncEvent(ctx context.Context, ownerID uuid.UUID, entry *CalendarEntry) (string, error) {
	log := config.WithContext(ctx)

	hasEventID := entry.GoogleCalendarEventID != nil && *entry.GoogleCalendarEventID != ""

	if hasEventID {
		if err := m.calendarService.UpdateEventInCalendar(ctx, ownerID, entry); err != nil {
			metrics.CalendarSyncFailures.WithLabelValues("update").Inc()
			log.WithError(err).Warnf("Failed to update calendar event for event %s", entry.ID)
			return *entry.GoogleCalendarEventID, err
		}
		return *entry.GoogleCalendarEventID, nil
	}

	eventID, err := m.calendarService.AddEventToCalendar(ctx, ownerID, entry)
	if err != nil {
		metrics.CalendarSyncFailures.WithLabelValues("insert").Inc()
		log.WithError(err).Warnf("Failed to create calendar event for event %s", entry.ID)
		return "", err
	}

	if eventID == "" {
		log.Warnf("Calendar service returned empty event ID for event %s", entry.ID)
		return "", nil
	}

	log.Infof("Created calendar event %s for event %s", eventID, entry.ID)
	return eventID, nil
}

func (m *calendarManager) RemoveEvent(ctx context.Context, ownerID uuid.UUID, eventID string) error {
	if eventID == "" {
		return nil
	}

	if err := m.calendarService.DeleteEventFromCalendar(ctx, ownerID, eventID); err != nil {
		metrics.CalendarSyncFailures.WithLabelValues("delete").Inc()
		config.WithContext(ctx).WithError(err).Warnf("Failed to delete calendar event %s", eventID)
		return err
	}

	return nil
}

// noopManager is used when Google sync is disabled.
type noopManager struct{}

func NewNoopManager() CalendarManager { return noopManager{} }

func (noopManager) SyncEvent(_ context.Context, _ uuid.UUID, entry *CalendarEntry) (string, error) {
	if entry.GoogleCalendarEventID != nil {
		return *entry.GoogleCalendarEventID, nil
	}
	return "", nil
}

func (noopManager) RemoveEvent(context.Context, uuid.UUID, string) error { return nil }
