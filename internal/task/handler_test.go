package task

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/sambat-api/internal/access"
	"github.com/saulo-duarte/sambat-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.Handler, actor access.Actor, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	role := auth.RoleUser
	if actor.IsAdmin {
		role = auth.RoleAdmin
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req = req.WithContext(auth.ContextWithClaims(req.Context(), &auth.Claims{UserID: actor.ID.String(), Role: role}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStatusSubresource(t *testing.T) {
	f := newFixture()
	router := Routes(NewHandler(f.svc))
	task := f.create(t, alice, "Call home", date(2024, 5, 1))
	path := "/" + task.ID.String()

	rec := serve(t, router, alice, http.MethodGet, path+"/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"title":"Call home","status":"pending"}`, rec.Body.String())

	rec = serve(t, router, alice, http.MethodPatch, path+"/update_status", `{"status":"in_progress"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusInProgress, resp.Status)
	assert.Equal(t, "alice", resp.AssignedToName)

	rec = serve(t, router, alice, http.MethodPatch, path+"/status", `{"status":"bogus"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, alice, http.MethodPatch, path+"/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, bob, http.MethodGet, path+"/status", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, router, admin, http.MethodPatch, path+"/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	assert.Equal(t, StatusInProgress, f.repo.rows[task.ID].Status)
}

func TestCreateAndListOverHTTP(t *testing.T) {
	f := newFixture()
	router := Routes(NewHandler(f.svc))

	rec := serve(t, router, alice, http.MethodPost, "/", `{"title":"Plan","start_date":"2024-04-13","due_date":"2024-04-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(t, router, alice, http.MethodPost, "/", `{"title":"No dates"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, alice, http.MethodGet, "/?status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "2024-04-10", list[0].DueDate.String())

	rec = serve(t, router, alice, http.MethodGet, "/?event=nope", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, alice, http.MethodGet, "/stats", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
