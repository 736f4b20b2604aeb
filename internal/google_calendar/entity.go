package googlecalendar

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
)

// CalendarEntry is the all-day Google Calendar mirror of an event.
type CalendarEntry struct {
	ID                    uuid.UUID
	Title                 string
	Description           string
	DateBS                nepcal.Date
	DateAD                nepcal.Date
	GoogleCalendarEventID *string
}
