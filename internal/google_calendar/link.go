package googlecalendar

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/auth"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/request"
	"golang.org/x/oauth2"
)

// codeExchanger is satisfied by *oauth2.Config.
type codeExchanger interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

type LinkRequest struct {
	Code string `json:"code" validate:"required"`
}

type Handler struct {
	oauth  codeExchanger
	tokens TokenStore
}

// NewHandler builds the account-link endpoints. A nil exchanger means sync is
// disabled and only unlinking is served.
func NewHandler(oauth codeExchanger, tokens TokenStore) *Handler {
	return &Handler{oauth: oauth, tokens: tokens}
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/auth-url", h.AuthURL)
	r.Post("/link", h.Link)
	r.Delete("/link", h.Unlink)

	return r
}

var errSyncDisabled = apperr.Validation("google", "calendar sync is disabled")

// AuthURL godoc
// @Summary  Google consent URL for calendar mirroring
// @Tags     google
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /google/auth-url [get]
func (h *Handler) AuthURL(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.ActorFromContext(r.Context()); err != nil {
		apperr.Write(w, err)
		return
	}
	if h.oauth == nil {
		apperr.Write(w, errSyncDisabled)
		return
	}

	url := h.oauth.AuthCodeURL(uuid.NewString(), oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	config.JSON(w, http.StatusOK, map[string]string{"url": url})
}

// Link godoc
// @Summary  Exchange an OAuth code and store the caller's Google tokens
// @Tags     google
// @Accept   json
// @Param    body body LinkRequest true "authorization code"
// @Success  204
// @Router   /google/link [post]
func (h *Handler) Link(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := config.WithContext(ctx)

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	if h.oauth == nil {
		apperr.Write(w, errSyncDisabled)
		return
	}

	var req LinkRequest
	if err := request.Decode(r, &req); err != nil {
		apperr.Write(w, err)
		return
	}

	tok, err := h.oauth.Exchange(ctx, req.Code)
	if err != nil {
		log.WithError(err).Warn("Google code exchange failed")
		apperr.Write(w, apperr.Validation("code", "could not be exchanged"))
		return
	}

	encAccess, err := config.Encrypt(tok.AccessToken)
	if err != nil {
		log.WithError(err).Error("Failed to encrypt Google access token")
		apperr.Write(w, err)
		return
	}
	var encRefresh string
	if tok.RefreshToken != "" {
		if encRefresh, err = config.Encrypt(tok.RefreshToken); err != nil {
			log.WithError(err).Error("Failed to encrypt Google refresh token")
			apperr.Write(w, err)
			return
		}
	}

	if err := h.tokens.UpdateGoogleTokens(ctx, actor.ID, encAccess, encRefresh); err != nil {
		apperr.Write(w, err)
		return
	}

	log.Info("Google Calendar linked")
	w.WriteHeader(http.StatusNoContent)
}

// Unlink godoc
// @Summary  Forget the caller's Google tokens
// @Tags     google
// @Success  204
// @Router   /google/link [delete]
func (h *Handler) Unlink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	if err := h.tokens.UpdateGoogleTokens(ctx, actor.ID, "", ""); err != nil {
		apperr.Write(w, err)
		return
	}

	config.WithContext(ctx).Info("Google Calendar unlinked")
	w.WriteHeader(http.StatusNoContent)
}
