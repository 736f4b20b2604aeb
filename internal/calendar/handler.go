package calendar

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Convert godoc
// @Summary  Convert a date between BS and AD
// @Tags     calendar
// @Produce  json
// @Param    bs query string false "BS date YYYY-MM-DD"
// @Param    ad query string false "AD date YYYY-MM-DD"
// @Success  200 {object} Conversion
// @Router   /calendar/convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	bsRaw, adRaw := r.URL.Query().Get("bs"), r.URL.Query().Get("ad")
	if err := requireOne(bsRaw, adRaw); err != nil {
		apperr.Write(w, err)
		return
	}

	var (
		conv *Conversion
		err  error
	)
	if bsRaw != "" {
		var bs nepcal.Date
		if bs, err = nepcal.ParseDate(bsRaw); err == nil {
			conv, err = h.service.FromBS(bs)
		}
	} else {
		var ad nepcal.Date
		if ad, err = nepcal.ParseDate(adRaw); err == nil {
			conv, err = h.service.FromAD(ad)
		}
	}
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, conv)
}

// Today godoc
// @Summary  Today's date in Nepal, in both calendars
// @Tags     calendar
// @Produce  json
// @Success  200 {object} Conversion
// @Router   /calendar/today [get]
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	conv, err := h.service.Today()
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, conv)
}

// Month godoc
// @Summary  Layout of a BS month
// @Tags     calendar
// @Produce  json
// @Param    year  path int true "BS year"
// @Param    month path int true "BS month"
// @Success  200 {object} Month
// @Router   /calendar/months/{year}/{month} [get]
func (h *Handler) Month(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		apperr.Write(w, apperr.Validation("year", "must be an integer"))
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		apperr.Write(w, apperr.Validation("month", "must be an integer"))
		return
	}

	m, err := h.service.Month(year, month)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	config.JSON(w, http.StatusOK, m)
}
