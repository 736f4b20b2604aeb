package googlecalendar

import (
	"github.com/saulo-duarte/sambat-api/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

type GoogleCalendarContainer struct {
	CalendarService CalendarService
	Manager         CalendarManager
	Handler         *Handler
}

func NewGoogleCalendarContainer(cfg config.GoogleConfig, tokens TokenStore) *GoogleCalendarContainer {
	if !cfg.SyncEnabled {
		config.Log.Info("Google Calendar sync disabled")
		return &GoogleCalendarContainer{
			Manager: NewNoopManager(),
			Handler: NewHandler(nil, tokens),
		}
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{gcal.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	calendarService := NewCalendarService(tokens, oauthConfig)

	return &GoogleCalendarContainer{
		CalendarService: calendarService,
		Manager:         NewCalendarManager(calendarService),
		Handler:         NewHandler(oauthConfig, tokens),
	}
}
