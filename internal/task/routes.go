package task

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListTasks)
	r.Post("/", h.CreateTask)
	r.Get("/stats", h.Stats)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetTask)
		r.Put("/", h.UpdateTask)
		r.Patch("/", h.UpdateTask)
		r.Delete("/", h.DeleteTask)

		r.Get("/status", h.GetStatus)
		r.Patch("/status", h.SetStatus)
		r.Patch("/update_status", h.SetStatus)
	})

	return r
}
