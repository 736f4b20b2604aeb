package event

import (
	"net/http"

	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/auth"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/request"
)

type Handler struct {
	service EventService
}

func NewHandler(service EventService) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary  List visible events ordered by BS date
// @Tags     events
// @Produce  json
// @Param    year  query int false "BS year"
// @Param    month query int false "BS month (requires year)"
// @Success  200 {array} EventResponse
// @Router   /events [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}
	prefix, err := request.BSMonthPrefix(r)
	if err != nil {
		apperr.Write(w, err)
		return
	}

	resp, err := h.service.List(r.Context(), actor, ListFilter{BSPrefix: prefix})
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

// Get godoc
// @Summary  Get an event
// @Tags     events
// @Produce  json
// @Param    id path string true "Event ID"
// @Success  200 {object} EventResponse
// @Router   /events/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.service.Get(r.Context(), actor, id)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

// Create godoc
// @Summary  Create an event
// @Tags     events
// @Accept   json
// @Produce  json
// @Param    body body CreateEventDTO true "Event"
// @Success  201 {object} EventResponse
// @Router   /events [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}

	var dto CreateEventDTO
	if err := request.Decode(r, &dto); err != nil {
		apperr.Write(w, err)
		return
	}

	resp, err := h.service.Create(r.Context(), actor, dto)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, resp)
}

// Update godoc
// @Summary  Update an event
// @Tags     events
// @Accept   json
// @Produce  json
// @Param    id   path string           true "Event ID"
// @Param    body body UpdateEventDTO true "Fields to change"
// @Success  200 {object} EventResponse
// @Router   /events/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
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

	var dto UpdateEventDTO
	if err := request.Decode(r, &dto); err != nil {
		apperr.Write(w, err)
		return
	}

	resp, err := h.service.Update(r.Context(), actor, id, dto)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

// Delete godoc
// @Summary  Delete an event
// @Tags     events
// @Param    id path string true "Event ID"
// @Success  204
// @Router   /events/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
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
