package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
)

// Request bodies carry neither date_ad nor created_by; both are set by the server.

type CreateEventDTO struct {
	Title       string      `json:"title" validate:"required,max=200"`
	Description string      `json:"description"`
	DateBS      nepcal.Date `json:"date_bs" validate:"required"`
}

type UpdateEventDTO struct {
	Title       *string      `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string      `json:"description"`
	DateBS      *nepcal.Date `json:"date_bs"`
}

type EventResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	DateBS      nepcal.Date `json:"date_bs"`
	DateAD      nepcal.Date `json:"date_ad"`
	CreatedBy   uuid.UUID   `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func toResponse(e *Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		DateBS:      e.DateBS,
		DateAD:      e.DateAD,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
