package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/sambat-api/internal/auth"
	"github.com/saulo-duarte/sambat-api/internal/calendar"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/event"
	"github.com/saulo-duarte/sambat-api/internal/feed"
	googlecalendar "github.com/saulo-duarte/sambat-api/internal/google_calendar"
	"github.com/saulo-duarte/sambat-api/internal/holiday"
	"github.com/saulo-duarte/sambat-api/internal/router"
	"github.com/saulo-duarte/sambat-api/internal/task"
	"github.com/saulo-duarte/sambat-api/internal/user"
	"gorm.io/gorm"
)

type Container struct {
	Config *config.Config
	DB     *gorm.DB

	UserContainer           *user.UserContainer
	GoogleCalendarContainer *googlecalendar.GoogleCalendarContainer
	HolidayContainer        *holiday.HolidayContainer
	EventContainer          *event.EventContainer
	TaskContainer           *task.TaskContainer
	FeedHandler             *feed.Handler
	CalendarHandler         *calendar.Handler
}

// New initialises logging, token signing and the database, then wires every module.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	config.Init(cfg.Log)

	if err := auth.Init(cfg.JWT.Secret); err != nil {
		return nil, fmt.Errorf("failed to init auth: %w", err)
	}
	if cfg.Crypto.Key != "" {
		if err := config.InitCrypto(cfg.Crypto.Key); err != nil {
			return nil, fmt.Errorf("failed to init crypto: %w", err)
		}
	}
	if err := config.Connect(ctx, cfg.Database); err != nil {
		return nil, err
	}

	return Wire(cfg, config.DB), nil
}

func Wire(cfg *config.Config, db *gorm.DB) *Container {
	userContainer := user.NewUserContainer(db)
	calendarContainer := googlecalendar.NewGoogleCalendarContainer(cfg.Google, userContainer.Repository)
	holidayContainer := holiday.NewHolidayContainer(db)
	eventContainer := event.NewEventContainer(db, calendarContainer.Manager)
	taskContainer := task.NewTaskContainer(db, userContainer.Repository, eventContainer.Service)

	builder := feed.NewBuilder(holidayContainer.Service, eventContainer.Service, taskContainer.Service)

	return &Container{
		Config:                  cfg,
		DB:                      db,
		UserContainer:           userContainer,
		GoogleCalendarContainer: calendarContainer,
		HolidayContainer:        holidayContainer,
		EventContainer:          eventContainer,
		TaskContainer:           taskContainer,
		FeedHandler:             feed.NewHandler(builder),
		CalendarHandler:         calendar.NewHandler(calendar.NewService()),
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		HolidayHandler:  c.HolidayContainer.Handler,
		EventHandler:    c.EventContainer.Handler,
		TaskHandler:     c.TaskContainer.Handler,
		CalendarHandler: c.CalendarHandler,
		FeedHandler:     c.FeedHandler,
		GoogleHandler:   c.GoogleCalendarContainer.Handler,
		CORS:            c.Config.CORS,
		RateLimit:       c.Config.RateLimit,
	})
}

// Migrate creates or updates the tables for every persisted entity.
func (c *Container) Migrate() error {
	if err := c.DB.AutoMigrate(&user.User{}, &holiday.Holiday{}, &event.Event{}, &task.Task{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	config.Log.Info("Database schema up to date")
	return nil
}
