package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/sambat-api/internal/auth"
	"github.com/saulo-duarte/sambat-api/internal/calendar"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/event"
	"github.com/saulo-duarte/sambat-api/internal/feed"
	googlecalendar "github.com/saulo-duarte/sambat-api/internal/google_calendar"
	"github.com/saulo-duarte/sambat-api/internal/holiday"
	"github.com/saulo-duarte/sambat-api/internal/metrics"
	"github.com/saulo-duarte/sambat-api/internal/middlewares"
	"github.com/saulo-duarte/sambat-api/internal/task"
	"github.com/saulo-duarte/sambat-api/internal/user"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	HolidayHandler  *holiday.Handler
	EventHandler    *event.Handler
	TaskHandler     *task.Handler
	CalendarHandler *calendar.Handler
	FeedHandler     *feed.Handler
	GoogleHandler   *googlecalendar.Handler

	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middlewares.SecureHeaders)
	r.Use(middlewares.Cors(cfg.CORS.Origins()))
	if cfg.RateLimit.RPS > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute).Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/holidays", holiday.Routes(cfg.HolidayHandler))
		r.Mount("/events", event.Routes(cfg.EventHandler))
		r.Mount("/tasks", task.Routes(cfg.TaskHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/google", googlecalendar.Routes(cfg.GoogleHandler))
		r.Get("/calendar.ics", cfg.FeedHandler.Calendar)
		r.Mount("/calendar", calendar.Routes(cfg.CalendarHandler))
	})
	return r
}
