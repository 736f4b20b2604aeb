package event

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/access"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"gorm.io/gorm"
)

var ErrEventNotFound = apperr.NotFound("event")

// taskTable holds the weak task -> event references cleared on delete.
const taskTable = "tasks"

type ListFilter struct {
	BSPrefix string
}

type EventRepository interface {
	List(ctx context.Context, scope access.Scope, filter ListFilter) ([]Event, error)
	FindByID(ctx context.Context, id uuid.UUID, scope access.Scope) (*Event, error)
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event) error
	SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func scoped(db *gorm.DB, scope access.Scope) *gorm.DB {
	if scope.Owner != nil {
		return db.Where("created_by = ?", *scope.Owner)
	}
	return db
}

func (r *eventRepository) List(ctx context.Context, scope access.Scope, filter ListFilter) ([]Event, error) {
	q := scoped(r.db.WithContext(ctx).Model(&Event{}), scope)
	if filter.BSPrefix != "" {
		q = q.Where("date_bs LIKE ?", filter.BSPrefix+"%")
	}

	var events []Event
	if err := q.Order("date_bs ASC").Order("created_at ASC").Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID, scope access.Scope) (*Event, error) {
	var e Event
	if err := scoped(r.db.WithContext(ctx), scope).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepository) Update(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Omit("created_by", "created_at").Save(e).Error
}

func (r *eventRepository) SetGoogleEventID(ctx context.Context, id uuid.UUID, googleEventID string) error {
	return r.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).
		UpdateColumn("google_calendar_event_id", googleEventID).Error
}

// Delete removes the event and clears task references to it in one transaction.
func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(taskTable).Where("event_id = ?", id).Update("event_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&Event{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEventNotFound
		}
		return nil
	})
}
