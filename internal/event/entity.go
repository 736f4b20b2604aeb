package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
)

type Event struct {
	ID                    uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Title                 string      `gorm:"size:200;not null" json:"title"`
	Description           string      `gorm:"type:text" json:"description"`
	DateBS                nepcal.Date `gorm:"column:date_bs;type:varchar(10);not null;index" json:"date_bs"`
	DateAD                nepcal.Date `gorm:"column:date_ad;type:date;not null" json:"date_ad"`
	CreatedBy             uuid.UUID   `gorm:"type:uuid;not null;index" json:"created_by"`
	GoogleCalendarEventID string      `gorm:"size:1024" json:"-"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

func (e *Event) BSDate() nepcal.Date      { return e.DateBS }
func (e *Event) SetADDate(ad nepcal.Date) { e.DateAD = ad }
