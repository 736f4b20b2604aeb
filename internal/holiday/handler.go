package holiday

import (
	"net/http"

	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/auth"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/request"
)

type Handler struct {
	service HolidayService
}

func NewHandler(service HolidayService) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary  List holidays ordered by BS date
// @Tags     holidays
// @Produce  json
// @Param    year  query int false "BS year"
// @Param    month query int false "BS month (requires year)"
// @Success  200 {array} HolidayResponse
// @Router   /holidays [get]
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
// @Summary  Get a holiday
// @Tags     holidays
// @Produce  json
// @Param    id path string true "Holiday ID"
// @Success  200 {object} HolidayResponse
// @Router   /holidays/{id} [get]
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
// @Summary  Create a holiday (admin)
// @Tags     holidays
// @Accept   json
// @Produce  json
// @Param    body body CreateHolidayDTO true "Holiday"
// @Success  201 {object} HolidayResponse
// @Router   /holidays [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}

	var dto CreateHolidayDTO
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
// @Summary  Update a holiday (admin)
// @Tags     holidays
// @Accept   json
// @Produce  json
// @Param    id   path string           true "Holiday ID"
// @Param    body body UpdateHolidayDTO true "Fields to change"
// @Success  200 {object} HolidayResponse
// @Router   /holidays/{id} [patch]
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

	var dto UpdateHolidayDTO
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
// @Summary  Delete a holiday (admin)
// @Tags     holidays
// @Param    id path string true "Holiday ID"
// @Success  204
// @Router   /holidays/{id} [delete]
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
