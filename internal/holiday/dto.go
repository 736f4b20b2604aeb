package holiday

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
)

// date_ad is absent from request bodies on purpose: it is always derived.

type CreateHolidayDTO struct {
	Name     string      `json:"name" validate:"required,max=200"`
	DateBS   nepcal.Date `json:"date_bs" validate:"required"`
	IsPublic *bool       `json:"is_public"`
}

type UpdateHolidayDTO struct {
	Name     *string      `json:"name" validate:"omitempty,min=1,max=200"`
	DateBS   *nepcal.Date `json:"date_bs"`
	IsPublic *bool        `json:"is_public"`
}

type HolidayResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	DateBS    nepcal.Date `json:"date_bs"`
	DateAD    nepcal.Date `json:"date_ad"`
	IsPublic  bool        `json:"is_public"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func toResponse(h *Holiday) HolidayResponse {
	return HolidayResponse{
		ID:        h.ID,
		Name:      h.Name,
		DateBS:    h.DateBS,
		DateAD:    h.DateAD,
		IsPublic:  h.IsPublic,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
