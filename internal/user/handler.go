package user

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/auth"
	"github.com/saulo-duarte/sambat-api/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(service UserService) *Handler {
	return &Handler{service: service}
}

// GetUser godoc
// @Summary  Current user
// @Tags     users
// @Produce  json
// @Success  200 {object} User
// @Router   /users/me [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		apperr.Write(w, apperr.ErrUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		apperr.Write(w, err)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
