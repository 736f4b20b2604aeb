package request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
	util "github.com/saulo-duarte/sambat-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name   string         `json:"name" validate:"required,max=5"`
	DateBS nepcal.Date    `json:"date_bs" validate:"required"`
	Due    util.LocalDate `json:"due_date" validate:"required"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecode(t *testing.T) {
	var p samplePayload
	err := Decode(post(`{"name":"Dashain","date_bs":"2081-06-27","due_date":"2024-10-12","date_ad":"1999-01-01"}`), &p)
	assert.Error(t, err, "name is longer than five characters")

	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)

	p = samplePayload{}
	require.NoError(t, Decode(post(`{"name":"Tihar","date_bs":"2081-07-15","due_date":"2024-10-31","date_ad":"1999-01-01"}`), &p))
	assert.Equal(t, "2081-07-15", p.DateBS.String())

	p = samplePayload{}
	err = Decode(post(`{"name":"Tihar","due_date":"2024-10-31"}`), &p)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date_bs", vErr.Field)
	assert.Equal(t, "is required", vErr.Message)

	p = samplePayload{}
	err = Decode(post(`{"name":"Tihar","date_bs":"someday","due_date":"2024-10-31"}`), &p)
	assert.ErrorIs(t, err, nepcal.ErrInvalidDate)

	err = Decode(post(`{not json`), &p)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestBSMonthPrefix(t *testing.T) {
	tests := []struct {
		query   string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"year=2081", "2081-", false},
		{"year=2081&month=1", "2081-01-", false},
		{"month=1", "", true},
		{"year=1900", "", true},
		{"year=2081&month=13", "", true},
		{"year=abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got, err := BSMonthPrefix(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	id := uuid.New()

	got, err := PathID(withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String()), "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = PathID(withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "42"), "id")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestOptionalUUID(t *testing.T) {
	got, err := OptionalUUID(httptest.NewRequest(http.MethodGet, "/", nil), "event")
	require.NoError(t, err)
	assert.Nil(t, got)

	id := uuid.New()
	got, err = OptionalUUID(httptest.NewRequest(http.MethodGet, "/?event="+id.String(), nil), "event")
	require.NoError(t, err)
	assert.Equal(t, id, *got)

	_, err = OptionalUUID(httptest.NewRequest(http.MethodGet, "/?event=x", nil), "event")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
