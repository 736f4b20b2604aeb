package googlecalendar

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/user"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var (
	ErrUserNotFound          = errors.New("user not found for calendar integration")
	ErrDecryptionFailed      = errors.New("failed to decrypt user's google token")
	ErrMissingCalendarTokens = errors.New("user has no google access token")
	ErrMissingEventID        = errors.New("cannot update event: missing Google Calendar Event ID")
)

const allDayLayout = "2006-01-02"

// TokenStore is the slice of the user repository the calendar client needs.
type TokenStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateGoogleTokens(ctx context.Context, id uuid.UUID, access, refresh string) error
}

type CalendarService interface {
	AddEventToCalendar(ctx context.Context, userID uuid.UUID, entry *CalendarEntry) (string, error)
	UpdateEventInCalendar(ctx context.Context, userID uuid.UUID, entry *CalendarEntry) error
	DeleteEventFromCalendar(ctx context.Context, userID uuid.UUID, googleEventID string) error
}

type calendarService struct {
	tokens      TokenStore
	oauthConfig *oauth2.Config
	calendarID  string
}

func NewCalendarService(tokens TokenStore, oauthConfig *oauth2.Config) CalendarService {
	return &calendarService{
		tokens:      tokens,
		oauthConfig: oauthConfig,
		calendarID:  "primary",
	}
}

func (s *calendarService) getCalendarClient(ctx context.Context, userID uuid.UUID) (*gcal.Service, error) {
	log := config.WithContext(ctx)

	u, err := s.tokens.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		log.WithError(err).Error("Failed to retrieve user for calendar client")
		return nil, err
	}

	if u.EncryptedGoogleAccessToken == "" {
		return nil, ErrMissingCalendarTokens
	}
	accessToken, err := config.Decrypt(u.EncryptedGoogleAccessToken)
	if err != nil {
		log.WithError(err).Error("Failed to decrypt access token")
		return nil, ErrDecryptionFailed
	}
	var refreshToken string
	if u.EncryptedGoogleRefreshToken != "" {
		if refreshToken, err = config.Decrypt(u.EncryptedGoogleRefreshToken); err != nil {
			log.WithError(err).Error("Failed to decrypt refresh token")
			return nil, ErrDecryptionFailed
		}
	}

	token := &oauth2.Token{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Hour),
	}

	tokenSource := s.oauthConfig.TokenSource(ctx, token)
	newToken, err := tokenSource.Token()
	if err != nil {
		log.WithError(err).Error("Failed to refresh Google token")
		return nil, err
	}

	if newToken.AccessToken != accessToken {
		s.persistToken(ctx, userID, newToken, refreshToken)
	}

	client := oauth2.NewClient(ctx, oauth2.ReuseTokenSource(newToken, tokenSource))
	return newCalendarClient(ctx, client)
}

func newCalendarClient(ctx context.Context, client *http.Client, opts ...option.ClientOption) (*gcal.Service, error) {
	srv, err := gcal.NewService(ctx, append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)...)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to create Calendar service client")
		return nil, err
	}
	return srv, nil
}

func (s *calendarService) persistToken(ctx context.Context, userID uuid.UUID, tok *oauth2.Token, previousRefresh string) {
	log := config.WithContext(ctx)

	refresh := tok.RefreshToken
	if refresh == "" {
		refresh = previousRefresh
	}
	encAccess, err := config.Encrypt(tok.AccessToken)
	if err != nil {
		log.WithError(err).Warn("Failed to encrypt refreshed Google token")
		return
	}
	encRefresh, err := config.Encrypt(refresh)
	if err != nil {
		log.WithError(err).Warn("Failed to encrypt Google refresh token")
		return
	}
	if err := s.tokens.UpdateGoogleTokens(ctx, userID, encAccess, encRefresh); err != nil {
		log.WithError(err).Warn("Failed to persist refreshed Google token")
		return
	}
	log.Info("Google token refreshed")
}

// buildCalendarEvent renders an all-day entry on the AD date. Google treats
// the end date as exclusive.
func buildCalendarEvent(entry *CalendarEntry) *gcal.Event {
	if entry.DateAD.IsZero() {
		return nil
	}
	day := entry.DateAD.Time()

	description := entry.Description
	if !entry.DateBS.IsZero() {
		bsLine := "BS " + entry.DateBS.String()
		if description == "" {
			description = bsLine
		} else {
			description = strings.TrimRight(description, "\n") + "\n\n" + bsLine
		}
	}

	return &gcal.Event{
		Summary:      entry.Title,
		Description:  description,
		Start:        &gcal.EventDateTime{Date: day.Format(allDayLayout)},
		End:          &gcal.EventDateTime{Date: day.AddDate(0, 0, 1).Format(allDayLayout)},
		Transparency: "transparent",
		Reminders: &gcal.EventReminders{
			UseDefault:      false,
			ForceSendFields: []string{"UseDefault"},
		},
	}
}

func (s *calendarService) AddEventToCalendar(ctx context.Context, userID uuid.UUID, entry *CalendarEntry) (string, error) {
	log := config.WithContext(ctx)

	event := buildCalendarEvent(entry)
	if event == nil {
		log.Warnf("Event %s has no AD date to mirror", entry.ID)
		return "", nil
	}

	srv, err := s.getCalendarClient(ctx, userID)
	if err != nil {
		return "", err
	}

	calEvent, err := srv.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		log.WithError(err).Error("Failed to insert calendar event")
		return "", err
	}

	return calEvent.Id, nil
}

func (s *calendarService) UpdateEventInCalendar(ctx context.Context, userID uuid.UUID, entry *CalendarEntry) error {
	log := config.WithContext(ctx)
	if entry.GoogleCalendarEventID == nil || *entry.GoogleCalendarEventID == "" {
		return ErrMissingEventID
	}

	event := buildCalendarEvent(entry)
	if event == nil {
		log.Warnf("Event %s no longer has an AD date, deleting calendar event", entry.ID)
		return s.DeleteEventFromCalendar(ctx, userID, *entry.GoogleCalendarEventID)
	}

	srv, err := s.getCalendarClient(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := srv.Events.Update(s.calendarID, *entry.GoogleCalendarEventID, event).Context(ctx).Do(); err != nil {
		log.WithError(err).Error("Failed to update calendar event")
		return err
	}
	return nil
}

func (s *calendarService) DeleteEventFromCalendar(ctx context.Context, userID uuid.UUID, googleEventID string) error {
	log := config.WithContext(ctx)
	srv, err := s.getCalendarClient(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrMissingCalendarTokens) || errors.Is(err, ErrDecryptionFailed) || errors.Is(err, ErrUserNotFound) {
			log.Warnf("Skipping Google Calendar deletion for event %s due to missing/invalid token", googleEventID)
			return nil
		}
		return err
	}

	err = srv.Events.Delete(s.calendarID, googleEventID).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			log.Warnf("Calendar event %s not found on Google, considering deleted.", googleEventID)
			return nil
		}
		log.WithError(err).Error("Failed to delete calendar event")
		return err
	}

	return nil
}
