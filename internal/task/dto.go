package task

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/sambat-api/internal/utils"
)

// EventRef distinguishes an absent "event" key from an explicit null.
type EventRef struct {
	Set bool
	ID  *uuid.UUID
}

func (r *EventRef) UnmarshalJSON(b []byte) error {
	r.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		r.ID = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	r.ID = &id
	return nil
}

type CreateTaskDTO struct {
	Title       string         `json:"title" validate:"required,max=200"`
	Description string         `json:"description"`
	AssignedTo  *uuid.UUID     `json:"assigned_to"`
	Event       *uuid.UUID     `json:"event"`
	StartDate   util.LocalDate `json:"start_date" validate:"required"`
	DueDate     util.LocalDate `json:"due_date" validate:"required"`
	Status      TaskStatus     `json:"status"`
}

type UpdateTaskDTO struct {
	Title       *string         `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string         `json:"description"`
	AssignedTo  *uuid.UUID      `json:"assigned_to"`
	Event       EventRef        `json:"event"`
	StartDate   *util.LocalDate `json:"start_date"`
	DueDate     *util.LocalDate `json:"due_date"`
	Status      *TaskStatus     `json:"status"`
}

type UpdateStatusDTO struct {
	Status TaskStatus `json:"status" validate:"required"`
}

type TaskFilter struct {
	Status  *TaskStatus
	EventID *uuid.UUID
}

type TaskResponse struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	AssignedTo     uuid.UUID      `json:"assigned_to"`
	AssignedToName string         `json:"assigned_to_name"`
	Event          *uuid.UUID     `json:"event"`
	StartDate      util.LocalDate `json:"start_date"`
	DueDate        util.LocalDate `json:"due_date"`
	Status         TaskStatus     `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type TaskStatusResponse struct {
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
}

type TaskStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

func toResponse(t *Task, assignedToName string) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		AssignedTo:     t.AssignedTo,
		AssignedToName: assignedToName,
		Event:          t.EventID,
		StartDate:      t.StartDate,
		DueDate:        t.DueDate,
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
