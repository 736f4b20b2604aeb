package event

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/access"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/datemodel"
	googlecalendar "github.com/saulo-duarte/sambat-api/internal/google_calendar"
	"github.com/sirupsen/logrus"
)

type EventService interface {
	List(ctx context.Context, actor access.Actor, filter ListFilter) ([]EventResponse, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*EventResponse, error)
	Create(ctx context.Context, actor access.Actor, dto CreateEventDTO) (*EventResponse, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, dto UpdateEventDTO) (*EventResponse, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
	// Visible reports whether id names an event inside the actor's visibility.
	Visible(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type eventService struct {
	repo     EventRepository
	calendar googlecalendar.CalendarManager
}

func NewService(repo EventRepository, calendar googlecalendar.CalendarManager) EventService {
	return &eventService{repo: repo, calendar: calendar}
}

func (s *eventService) List(ctx context.Context, actor access.Actor, filter ListFilter) ([]EventResponse, error) {
	if err := access.Authorize(ctx, access.Event, access.List, actor, nil); err != nil {
		return nil, err
	}

	events, err := s.repo.List(ctx, access.Visibility(access.Event, actor), filter)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list events")
		return nil, err
	}

	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, toResponse(&events[i]))
	}
	return responses, nil
}

func (s *eventService) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*EventResponse, error) {
	e, err := s.findVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(ctx, access.Event, access.Get, actor, &access.Resource{Owner: e.CreatedBy}); err != nil {
		return nil, err
	}
	resp := toResponse(e)
	return &resp, nil
}

func (s *eventService) Visible(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	_, err := s.findVisible(ctx, actor, id)
	return err
}

func (s *eventService) Create(ctx context.Context, actor access.Actor, dto CreateEventDTO) (*EventResponse, error) {
	log := config.WithContext(ctx)
	if err := access.Authorize(ctx, access.Event, access.Create, actor, nil); err != nil {
		return nil, err
	}

	e := &Event{
		Title:       dto.Title,
		Description: dto.Description,
		DateBS:      dto.DateBS,
		CreatedBy:   actor.ID,
	}

	if err := datemodel.Save(ctx, e, s.repo.Create); err != nil {
		return nil, saveFailed(log, err, "create")
	}

	s.mirror(ctx, e)

	log.WithFields(logrus.Fields{
		"event_id": e.ID,
		"date_bs":  e.DateBS.String(),
		"date_ad":  e.DateAD.String(),
	}).Info("Event created")
	resp := toResponse(e)
	return &resp, nil
}

func (s *eventService) Update(ctx context.Context, actor access.Actor, id uuid.UUID, dto UpdateEventDTO) (*EventResponse, error) {
	log := config.WithContext(ctx)

	e, err := s.findVisible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(ctx, access.Event, access.Update, actor, &access.Resource{Owner: e.CreatedBy}); err != nil {
		return nil, err
	}

	if dto.Title != nil {
		e.Title = *dto.Title
	}
	if dto.Description != nil {
		e.Description = *dto.Description
	}
	if dto.DateBS != nil {
		e.DateBS = *dto.DateBS
	}

	if err := datemodel.Save(ctx, e, s.repo.Update); err != nil {
		return nil, saveFailed(log, err, "update")
	}

	s.mirror(ctx, e)

	log.WithField("event_id", e.ID).Info("Event updated")
	resp := toResponse(e)
	return &resp, nil
}

func (s *eventService) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	log := config.WithContext(ctx)

	e, err := s.findVisible(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := access.Authorize(ctx, access.Event, access.Delete, actor, &access.Resource{Owner: e.CreatedBy}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			log.WithError(err).Error("Failed to delete event")
		}
		return err
	}

	if e.GoogleCalendarEventID != "" {
		// failures are logged and counted by the manager
		_ = s.calendar.RemoveEvent(ctx, e.CreatedBy, e.GoogleCalendarEventID)
	}

	log.WithField("event_id", id).Info("Event deleted")
	return nil
}

func (s *eventService) findVisible(ctx context.Context, actor access.Actor, id uuid.UUID) (*Event, error) {
	e, err := s.repo.FindByID(ctx, id, access.Visibility(access.Event, actor))
	if err != nil {
		log := config.WithContext(ctx).WithField("event_id", id)
		if errors.Is(err, apperr.ErrNotFound) {
			log.Warn("Event not found or not visible to user")
		} else {
			log.WithError(err).Error("Error finding event by ID")
		}
		return nil, err
	}
	return e, nil
}

// mirror pushes the event to the owner's Google Calendar. A failed mirror
// never fails the write.
func (s *eventService) mirror(ctx context.Context, e *Event) {
	var existing *string
	if e.GoogleCalendarEventID != "" {
		existing = &e.GoogleCalendarEventID
	}

	gid, err := s.calendar.SyncEvent(ctx, e.CreatedBy, &googlecalendar.CalendarEntry{
		ID:                    e.ID,
		Title:                 e.Title,
		Description:           e.Description,
		DateBS:                e.DateBS,
		DateAD:                e.DateAD,
		GoogleCalendarEventID: existing,
	})
	if err != nil || gid == "" || gid == e.GoogleCalendarEventID {
		return
	}

	if err := s.repo.SetGoogleEventID(ctx, e.ID, gid); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to update event with Google Calendar Event ID")
		return
	}
	e.GoogleCalendarEventID = gid
}

func saveFailed(log logrus.FieldLogger, err error, action string) error {
	if apperr.Status(err) < 500 {
		log.WithError(err).Warnf("Rejected event %s", action)
	} else {
		log.WithError(err).Errorf("Failed to %s event", action)
	}
	return err
}
