package task

import (
	"net/http"

	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/auth"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/request"
)

type Handler struct {
	service TaskService
}

func NewHandler(service TaskService) *Handler {
	return &Handler{service: service}
}

// ListTasks godoc
// @Summary  List visible tasks ordered by due date
// @Tags     tasks
// @Produce  json
// @Param    status query string false "pending, in_progress or completed"
// @Param    event  query string false "Event ID"
// @Success  200 {array} TaskResponse
// @Router   /tasks [get]
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}

	var filter TaskFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := TaskStatus(raw)
		filter.Status = &status
	}
	if filter.EventID, err = request.OptionalUUID(r, "event"); err != nil {
		apperr.Write(w, err)
		return
	}

	tasks, err := h.service.List(r.Context(), actor, filter)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, tasks)
}

// GetTask godoc
// @Summary  Get a task assigned to the caller
// @Tags     tasks
// @Produce  json
// @Param    id path string true "Task ID"
// @Success  200 {object} TaskResponse
// @Router   /tasks/{id} [get]
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}
	id, err := request.PathID(r, "id")
	if err != nil {
		apperr.Write(w, err)
		return
	}

	t, err := h.service.Get(r.Context(), actor, id)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, t)
}

// CreateTask godoc
// @Summary  Create a task
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    body body CreateTaskDTO true "Task"
// @Success  201 {object} TaskResponse
// @Router   /tasks [post]
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}

	var dto CreateTaskDTO
	if err := request.Decode(r, &dto); err != nil {
		apperr.Write(w, err)
		return
	}

	t, err := h.service.Create(r.Context(), actor, dto)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, t)
}

// UpdateTask godoc
// @Summary  Update a task assigned to the caller
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    id   path string        true "Task ID"
// @Param    body body UpdateTaskDTO true "Fields to change"
// @Success  200 {object} TaskResponse
// @Router   /tasks/{id} [patch]
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}
	id, err := request.PathID(r, "id")
	if err != nil {
		apperr.Write(w, err)
		return
	}

	var dto UpdateTaskDTO
	if err := request.Decode(r, &dto); err != nil {
		apperr.Write(w, err)
		return
	}

	t, err := h.service.Update(r.Context(), actor, id, dto)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, t)
}

// DeleteTask godoc
// @Summary  Delete a task assigned to the caller
// @Tags     tasks
// @Param    id path string true "Task ID"
// @Success  204
// @Router   /tasks/{id} [delete]
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}
	id, err := request.PathID(r, "id")
	if err != nil {
		apperr.Write(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		apperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetStatus godoc
// @Summary  Read a task's status
// @Tags     tasks
// @Produce  json
// @Param    id path string true "Task ID"
// @Success  200 {object} TaskStatusResponse
// @Router   /tasks/{id}/status [get]
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}
	id, err := request.PathID(r, "id")
	if err != nil {
		apperr.Write(w, err)
		return
	}

	status, err := h.service.GetStatus(r.Context(), actor, id)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, status)
}

// SetStatus godoc
// @Summary  Change only a task's status
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    id   path string          true "Task ID"
// @Param    body body UpdateStatusDTO true "New status"
// @Success  200 {object} TaskResponse
// @Router   /tasks/{id}/status [patch]
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}
	id, err := request.PathID(r, "id")
	if err != nil {
		apperr.Write(w, err)
		return
	}

	var dto UpdateStatusDTO
	if err := request.Decode(r, &dto); err != nil {
		apperr.Write(w, err)
		return
	}

	t, err := h.service.SetStatus(r.Context(), actor, id, dto.Status)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, t)
}

// Stats godoc
// @Summary  Status counts over visible tasks
// @Tags     tasks
// @Produce  json
// @Success  200 {object} TaskStats
// @Router   /tasks/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}

	stats, err := h.service.Stats(r.Context(), actor)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, stats)
}
