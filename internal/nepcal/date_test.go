package nepcal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2081-1-5")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2081, Month: 1, Day: 5}, d)
	assert.Equal(t, "2081-01-05", d.String())

	for _, in := range []string{"", "2081-01", "2081/01/01", "abcd-01-01", "2081-01-01-01", "2081--1-01"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2081-02-32"}`), &payload))
	assert.Equal(t, Date{Year: 2081, Month: 2, Day: 32}, payload.Date)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2081-02-32"}`, string(out))

	payload.Date = Date{}
	out, err = json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"soon"}`), &payload))
}

func TestDateScanValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.April, 13, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-04-13", d.String())

	require.NoError(t, d.Scan([]byte("2081-02-32")))
	assert.Equal(t, Date{Year: 2081, Month: 2, Day: 32}, d)

	require.NoError(t, d.Scan("2024-04-13T00:00:00Z"))
	assert.Equal(t, "2024-04-13", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := Date{Year: 2081, Month: 1, Day: 1}.Value()
	require.NoError(t, err)
	assert.Equal(t, "2081-01-01", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateCompare(t *testing.T) {
	a := Date{Year: 2081, Month: 1, Day: 1}
	b := Date{Year: 2081, Month: 2, Day: 1}
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}
