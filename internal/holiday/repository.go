package holiday

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"gorm.io/gorm"
)

var ErrHolidayNotFound = apperr.NotFound("holiday")

type ListFilter struct {
	// BSPrefix narrows to a BS year or month, e.g. "2081-" or "2081-01-".
	BSPrefix string
}

type HolidayRepository interface {
	List(ctx context.Context, filter ListFilter) ([]Holiday, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Holiday, error)
	Create(ctx context.Context, h *Holiday) error
	Update(ctx context.Context, h *Holiday) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type holidayRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) List(ctx context.Context, filter ListFilter) ([]Holiday, error) {
	q := r.db.WithContext(ctx).Model(&Holiday{})
	if filter.BSPrefix != "" {
		q = q.Where("date_bs LIKE ?", filter.BSPrefix+"%")
	}

	var holidays []Holiday
	if err := q.Order("date_bs ASC").Order("created_at ASC").Order("id ASC").Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *holidayRepository) FindByID(ctx context.Context, id uuid.UUID) (*Holiday, error) {
	var h Holiday
	if err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHolidayNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *holidayRepository) Create(ctx context.Context, h *Holiday) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *holidayRepository) Update(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *holidayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Holiday{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrHolidayNotFound
	}
	return nil
}
