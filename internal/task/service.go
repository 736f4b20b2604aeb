package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/access"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/user"
	util "github.com/saulo-duarte/sambat-api/internal/utils"
	"github.com/sirupsen/logrus"
)

const invalidStatusMessage = "must be one of pending, in_progress, completed"

// UserDirectory resolves assignees and their display names.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// EventLookup checks that an event reference is visible to the actor.
type EventLookup interface {
	Visible(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type TaskService interface {
	List(ctx context.Context, actor access.Actor, filter TaskFilter) ([]TaskResponse, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*TaskResponse, error)
	Create(ctx context.Context, actor access.Actor, dto CreateTaskDTO) (*TaskResponse, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, dto UpdateTaskDTO) (*TaskResponse, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
	GetStatus(ctx context.Context, actor access.Actor, id uuid.UUID) (*TaskStatusResponse, error)
	SetStatus(ctx context.Context, actor access.Actor, id uuid.UUID, status TaskStatus) (*TaskResponse, error)
	Stats(ctx context.Context, actor access.Actor) (*TaskStats, error)
}

type taskService struct {
	repo   TaskRepository
	users  UserDirectory
	events EventLookup
	now    func() time.Time
}

func NewService(repo TaskRepository, users UserDirectory, events EventLookup) TaskService {
	return &taskService{
		repo:   repo,
		users:  users,
		events: events,
		now:    time.Now,
	}
}

func (s *taskService) List(ctx context.Context, actor access.Actor, filter TaskFilter) ([]TaskResponse, error) {
	log := config.WithContext(ctx)
	if err := access.Authorize(ctx, access.Task, access.List, actor, nil); err != nil {
		return nil, err
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, apperr.Validation("status", invalidStatusMessage)
	}

	tasks, err := s.repo.List(ctx, access.Visibility(access.Task, actor), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list tasks")
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(tasks))
	for i := range tasks {
		ids = append(ids, tasks[i].AssignedTo)
	}
	names, err := s.users.NamesByIDs(ctx, ids)
	if err != nil {
		log.WithError(err).Error("Failed to resolve assignee names")
		return nil, err
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, toResponse(&tasks[i], names[tasks[i].AssignedTo]))
	}
	return responses, nil
}

func (s *taskService) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*TaskResponse, error) {
	t, err := s.authorized(ctx, actor, id, access.Get)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, t)
}

func (s *taskService) Create(ctx context.Context, actor access.Actor, dto CreateTaskDTO) (*TaskResponse, error) {
	log := config.WithContext(ctx)
	if err := access.Authorize(ctx, access.Task, access.Create, actor, nil); err != nil {
		return nil, err
	}

	t := &Task{
		Title:       dto.Title,
		Description: dto.Description,
		AssignedTo:  actor.ID,
		EventID:     dto.Event,
		StartDate:   dto.StartDate,
		DueDate:     dto.DueDate,
		Status:      StatusPending,
	}
	if dto.AssignedTo != nil {
		t.AssignedTo = *dto.AssignedTo
	}
	if dto.Status != "" {
		t.Status = dto.Status
	}

	if err := s.checkAssignee(ctx, actor, t.AssignedTo); err != nil {
		return nil, err
	}
	if err := s.checkFields(ctx, actor, t, true); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		log.WithError(err).Error("Failed to create task")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"task_id":     t.ID,
		"assigned_to": t.AssignedTo,
	}).Info("Task created successfully")
	return s.respond(ctx, t)
}

func (s *taskService) Update(ctx context.Context, actor access.Actor, id uuid.UUID, dto UpdateTaskDTO) (*TaskResponse, error) {
	log := config.WithContext(ctx)

	t, err := s.authorized(ctx, actor, id, access.Update)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		t.Title = *dto.Title
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.StartDate != nil {
		t.StartDate = *dto.StartDate
	}
	if dto.DueDate != nil {
		t.DueDate = *dto.DueDate
	}
	if dto.Status != nil {
		t.Status = *dto.Status
	}
	if dto.Event.Set {
		t.EventID = dto.Event.ID
	}
	if dto.AssignedTo != nil && *dto.AssignedTo != t.AssignedTo {
		if err := s.checkAssignee(ctx, actor, *dto.AssignedTo); err != nil {
			return nil, err
		}
		t.AssignedTo = *dto.AssignedTo
	}

	if err := s.checkFields(ctx, actor, t, dto.Event.Set); err != nil {
		return nil, err
	}
	if t.StartDate.IsZero() || t.DueDate.IsZero() {
		return nil, apperr.Validation("start_date", "start_date and due_date cannot be cleared")
	}

	if err := s.repo.Update(ctx, t); err != nil {
		log.WithError(err).Error("Failed to update task")
		return nil, err
	}

	log.WithField("task_id", t.ID).Info("Task updated successfully")
	return s.respond(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.authorized(ctx, actor, id, access.Delete); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			log.WithError(err).Error("Failed to delete task")
		}
		return err
	}

	log.WithField("task_id", id).Info("Task deleted successfully")
	return nil
}

func (s *taskService) GetStatus(ctx context.Context, actor access.Actor, id uuid.UUID) (*TaskStatusResponse, error) {
	t, err := s.authorized(ctx, actor, id, access.GetStatus)
	if err != nil {
		return nil, err
	}
	return &TaskStatusResponse{Title: t.Title, Status: t.Status}, nil
}

// SetStatus changes only the status column and returns the full task.
func (s *taskService) SetStatus(ctx context.Context, actor access.Actor, id uuid.UUID, status TaskStatus) (*TaskResponse, error) {
	log := config.WithContext(ctx)

	t, err := s.authorized(ctx, actor, id, access.SetStatus)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		log.WithField("status", status).Warn("Rejected invalid task status")
		return nil, apperr.Validation("status", invalidStatusMessage)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		log.WithError(err).Error("Failed to update task status")
		return nil, err
	}
	t.Status = status

	log.WithFields(logrus.Fields{
		"task_id": id,
		"status":  status,
	}).Info("Task status updated")
	return s.respond(ctx, t)
}

func (s *taskService) Stats(ctx context.Context, actor access.Actor) (*TaskStats, error) {
	if err := access.Authorize(ctx, access.Task, access.List, actor, nil); err != nil {
		return nil, err
	}

	tasks, err := s.repo.List(ctx, access.Visibility(access.Task, actor), TaskFilter{})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list tasks for stats")
		return nil, err
	}

	now := s.now()
	today := util.NewLocalDate(now.Year(), now.Month(), now.Day())

	stats := &TaskStats{Total: len(tasks)}
	for i := range tasks {
		switch tasks[i].Status {
		case StatusPending:
			stats.Pending++
		case StatusInProgress:
			stats.InProgress++
		case StatusCompleted:
			stats.Completed++
		}
		if tasks[i].Status != StatusCompleted && tasks[i].DueDate.Before(today.Time) {
			stats.Overdue++
		}
	}
	return stats, nil
}

// authorized loads a task inside the actor's visibility and checks op
// against its assignee. Invisible tasks are not found, never forbidden.
func (s *taskService) authorized(ctx context.Context, actor access.Actor, id uuid.UUID, op access.Operation) (*Task, error) {
	log := config.WithContext(ctx)

	t, err := s.repo.FindByID(ctx, id, access.Visibility(access.Task, actor))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			log.WithField("task_id", id).Warn("Task not found or not visible to user")
		} else {
			log.WithError(err).Error("Error finding task by ID")
		}
		return nil, err
	}

	if err := access.Authorize(ctx, access.Task, op, actor, &access.Resource{Owner: t.AssignedTo}); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) checkAssignee(ctx context.Context, actor access.Actor, assignee uuid.UUID) error {
	if err := access.Authorize(ctx, access.Task, access.Assign, actor, &access.Resource{Owner: assignee}); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, assignee); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.Validation("assigned_to", "unknown user")
		}
		return err
	}
	return nil
}

// checkFields validates the status and, when it changed, the event reference.
func (s *taskService) checkFields(ctx context.Context, actor access.Actor, t *Task, eventChanged bool) error {
	if !t.Status.IsValid() {
		return apperr.Validation("status", invalidStatusMessage)
	}
	if eventChanged && t.EventID != nil {
		if err := s.events.Visible(ctx, actor, *t.EventID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.Validation("event", "unknown event")
			}
			return err
		}
	}
	return nil
}

func (s *taskService) respond(ctx context.Context, t *Task) (*TaskResponse, error) {
	names, err := s.users.NamesByIDs(ctx, []uuid.UUID{t.AssignedTo})
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to resolve assignee name")
		return nil, err
	}
	resp := toResponse(t, names[t.AssignedTo])
	return &resp, nil
}
