package holiday

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/access"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/datemodel"
	"github.com/sirupsen/logrus"
)

type HolidayService interface {
	List(ctx context.Context, actor access.Actor, filter ListFilter) ([]HolidayResponse, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*HolidayResponse, error)
	Create(ctx context.Context, actor access.Actor, dto CreateHolidayDTO) (*HolidayResponse, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, dto UpdateHolidayDTO) (*HolidayResponse, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type holidayService struct {
	repo HolidayRepository
}

func NewService(repo HolidayRepository) HolidayService {
	return &holidayService{repo: repo}
}

func (s *holidayService) List(ctx context.Context, actor access.Actor, filter ListFilter) ([]HolidayResponse, error) {
	log := config.WithContext(ctx)
	if err := access.Authorize(ctx, access.Holiday, access.List, actor, nil); err != nil {
		return nil, err
	}

	holidays, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list holidays")
		return nil, err
	}

	responses := make([]HolidayResponse, 0, len(holidays))
	for i := range holidays {
		responses = append(responses, toResponse(&holidays[i]))
	}
	return responses, nil
}

func (s *holidayService) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*HolidayResponse, error) {
	h, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(ctx, access.Holiday, access.Get, actor, nil); err != nil {
		return nil, err
	}
	resp := toResponse(h)
	return &resp, nil
}

func (s *holidayService) Create(ctx context.Context, actor access.Actor, dto CreateHolidayDTO) (*HolidayResponse, error) {
	log := config.WithContext(ctx)
	if err := access.Authorize(ctx, access.Holiday, access.Create, actor, nil); err != nil {
		return nil, err
	}

	h := &Holiday{
		Name:     dto.Name,
		DateBS:   dto.DateBS,
		IsPublic: true,
	}
	if dto.IsPublic != nil {
		h.IsPublic = *dto.IsPublic
	}

	if err := datemodel.Save(ctx, h, s.repo.Create); err != nil {
		return nil, s.saveFailed(log, err, "create")
	}

	log.WithFields(logrus.Fields{
		"holiday_id": h.ID,
		"date_bs":    h.DateBS.String(),
		"date_ad":    h.DateAD.String(),
	}).Info("Holiday created")
	resp := toResponse(h)
	return &resp, nil
}

func (s *holidayService) Update(ctx context.Context, actor access.Actor, id uuid.UUID, dto UpdateHolidayDTO) (*HolidayResponse, error) {
	log := config.WithContext(ctx)

	h, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(ctx, access.Holiday, access.Update, actor, nil); err != nil {
		return nil, err
	}

	if dto.Name != nil {
		h.Name = *dto.Name
	}
	if dto.DateBS != nil {
		h.DateBS = *dto.DateBS
	}
	if dto.IsPublic != nil {
		h.IsPublic = *dto.IsPublic
	}

	if err := datemodel.Save(ctx, h, s.repo.Update); err != nil {
		return nil, s.saveFailed(log, err, "update")
	}

	log.WithField("holiday_id", h.ID).Info("Holiday updated")
	resp := toResponse(h)
	return &resp, nil
}

func (s *holidayService) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := access.Authorize(ctx, access.Holiday, access.Delete, actor, nil); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			log.WithError(err).Error("Failed to delete holiday")
		}
		return err
	}

	log.WithField("holiday_id", id).Info("Holiday deleted")
	return nil
}

func (s *holidayService) find(ctx context.Context, id uuid.UUID) (*Holiday, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log := config.WithContext(ctx).WithField("holiday_id", id)
		if errors.Is(err, apperr.ErrNotFound) {
			log.Warn("Holiday not found")
		} else {
			log.WithError(err).Error("Error finding holiday by ID")
		}
		return nil, err
	}
	return h, nil
}

func (s *holidayService) saveFailed(log logrus.FieldLogger, err error, action string) error {
	if apperr.Status(err) < 500 {
		log.WithError(err).Warnf("Rejected holiday %s", action)
	} else {
		log.WithError(err).Errorf("Failed to %s holiday", action)
	}
	return err
}
