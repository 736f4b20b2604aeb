package calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestConvert(t *testing.T) {
	router := Routes(NewHandler(NewService()))

	rec := get(t, router, "/convert?bs=2081-01-01")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"bs":"2081-01-01","ad":"2024-04-13","weekday":"Saturday","month_name":"Baishakh"}`, rec.Body.String())

	rec = get(t, router, "/convert?ad=2025-09-26")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var conv Conversion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conv))
	assert.Equal(t, "2082-06-10", conv.BS.String())
	assert.Equal(t, "Ashwin", conv.MonthName)

	for _, path := range []string{
		"/convert",
		"/convert?bs=2081-01-01&ad=2024-04-13",
		"/convert?bs=2081-01-32",
		"/convert?ad=2024-02-30",
		"/convert?ad=1900-01-01",
		"/convert?bs=garbage",
	} {
		assert.Equal(t, http.StatusBadRequest, get(t, router, path).Code, path)
	}
}

func TestMonth(t *testing.T) {
	router := Routes(NewHandler(NewService()))

	rec := get(t, router, "/months/2081/2")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var m Month
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, 32, m.Days)
	assert.Equal(t, "Jestha", m.MonthName)
	assert.Equal(t, "2024-06-14", m.EndAD.String())

	assert.Equal(t, http.StatusBadRequest, get(t, router, "/months/2081/13").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/months/x/1").Code)
}

func TestToday(t *testing.T) {
	svc := &service{now: func() time.Time { return time.Date(2024, 4, 12, 20, 0, 0, 0, time.UTC) }}

	conv, err := svc.Today()
	require.NoError(t, err)
	assert.Equal(t, "2081-01-01", conv.BS.String())
	assert.Equal(t, "2024-04-13", conv.AD.String())
}
