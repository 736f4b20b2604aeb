package holiday

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
)

type Holiday struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string      `gorm:"size:200;not null" json:"name"`
	DateBS    nepcal.Date `gorm:"column:date_bs;type:varchar(10);not null;index" json:"date_bs"`
	DateAD    nepcal.Date `gorm:"column:date_ad;type:date;not null" json:"date_ad"`
	IsPublic  bool        `gorm:"not null" json:"is_public"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (h *Holiday) BSDate() nepcal.Date      { return h.DateBS }
func (h *Holiday) SetADDate(ad nepcal.Date) { h.DateAD = ad }
