package event

import (
	googlecalendar "github.com/saulo-duarte/sambat-api/internal/google_calendar"
	"gorm.io/gorm"
)

type EventContainer struct {
	Handler    *Handler
	Service    EventService
	Repository EventRepository
}

func NewEventContainer(db *gorm.DB, calendarManager googlecalendar.CalendarManager) *EventContainer {
	repo := NewRepository(db)
	service := NewService(repo, calendarManager)

	return &EventContainer{
		Handler:    NewHandler(service),
		Service:    service,
		Repository: repo,
	}
}
