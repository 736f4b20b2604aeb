package holiday

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/sambat-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withActor(r *http.Request, id string, role string) *http.Request {
	ctx := auth.ContextWithClaims(r.Context(), &auth.Claims{UserID: id, Role: role})
	return r.WithContext(ctx)
}

func TestHandlerIgnoresClientDateAD(t *testing.T) {
	repo := newMemoryRepository()
	router := Routes(NewHandler(NewService(repo)))

	body := `{"name":"New Year","date_bs":"2081-01-01","date_ad":"1999-12-31"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req = withActor(req, admin.ID.String(), auth.RoleAdmin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp HolidayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-04-13", resp.DateAD.String())
}

func TestHandlerStatusCodes(t *testing.T) {
	router := Routes(NewHandler(NewService(newMemoryRepository())))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		role   string
		want   int
	}{
		{"user create forbidden", http.MethodPost, "/", `{"name":"X","date_bs":"2081-01-01"}`, auth.RoleUser, http.StatusForbidden},
		{"invalid bs date", http.MethodPost, "/", `{"name":"X","date_bs":"2081-01-32"}`, auth.RoleAdmin, http.StatusBadRequest},
		{"missing name", http.MethodPost, "/", `{"date_bs":"2081-01-01"}`, auth.RoleAdmin, http.StatusBadRequest},
		{"bad id", http.MethodGet, "/not-a-uuid", "", auth.RoleUser, http.StatusBadRequest},
		{"unknown id", http.MethodGet, "/" + user.ID.String(), "", auth.RoleUser, http.StatusNotFound},
		{"bad month filter", http.MethodGet, "/?month=3", "", auth.RoleUser, http.StatusBadRequest},
		{"list", http.MethodGet, "/?year=2081", "", auth.RoleUser, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req = withActor(req, user.ID.String(), tt.role)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
