package feed

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/auth"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/request"
)

type Handler struct {
	builder *Builder
}

func NewHandler(builder *Builder) *Handler {
	return &Handler{builder: builder}
}

// Calendar godoc
// @Summary  iCalendar feed of holidays, visible events and tasks
// @Tags     calendar
// @Produce  text/calendar
// @Param    year  query int false "BS year"
// @Param    month query int false "BS month (requires year)"
// @Success  200 {string} string
// @Router   /calendar.ics [get]
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

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

	cal, err := h.builder.Build(r.Context(), actor, prefix)
	if err != nil {
		apperr.Write(w, err)
		return
	}

	var buf bytes.Buffer
	if err := Encode(&buf, cal); err != nil {
		log.WithError(err).Error("Failed to encode calendar feed")
		apperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="sambat.ics"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.WithError(err).Warn("Failed to write calendar feed")
	}
}
