package task

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/sambat-api/internal/utils"
)

type Task struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	AssignedTo  uuid.UUID      `gorm:"type:uuid;not null;index" json:"assigned_to"`
	EventID     *uuid.UUID     `gorm:"column:event_id;type:uuid;index" json:"event"`
	StartDate   util.LocalDate `gorm:"type:date;not null" json:"start_date"`
	DueDate     util.LocalDate `gorm:"type:date;not null;index" json:"due_date"`
	Status      TaskStatus     `gorm:"size:20;not null" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
