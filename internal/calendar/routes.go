package calendar

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/convert", h.Convert)
	r.Get("/today", h.Today)
	r.Get("/months/{year}/{month}", h.Month)

	return r
}
