package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/access"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"gorm.io/gorm"
)

var ErrTaskNotFound = apperr.NotFound("task")

type TaskRepository interface {
	List(ctx context.Context, scope access.Scope, filter TaskFilter) ([]Task, error)
	FindByID(ctx context.Context, id uuid.UUID, scope access.Scope) (*Task, error)
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status TaskStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func scoped(db *gorm.DB, scope access.Scope) *gorm.DB {
	if scope.Owner != nil {
		return db.Where("assigned_to = ?", *scope.Owner)
	}
	return db
}

func (r *taskRepository) List(ctx context.Context, scope access.Scope, filter TaskFilter) ([]Task, error) {
	q := scoped(r.db.WithContext(ctx).Model(&Task{}), scope)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.EventID != nil {
		q = q.Where("event_id = ?", *filter.EventID)
	}

	var tasks []Task
	if err := q.Order("due_date ASC").Order("created_at ASC").Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID, scope access.Scope) (*Task, error) {
	var t Task
	if err := scoped(r.db.WithContext(ctx), scope).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) Create(ctx context.Context, t *Task) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Omit("created_at").Save(t).Error
}

// UpdateStatus writes the status column and nothing else.
func (r *taskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status TaskStatus) error {
	res := r.db.WithContext(ctx).Model(&Task{}).Where("id = ?", id).UpdateColumn("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
