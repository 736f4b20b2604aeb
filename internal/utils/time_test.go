package util

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDateJSON(t *testing.T) {
	var payload struct {
		Due LocalDate  `json:"due"`
		Opt *LocalDate `json:"opt"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-06-14","opt":null}`), &payload))
	assert.Equal(t, "2024-06-14", payload.Due.String())
	assert.Nil(t, payload.Opt)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-06-14","opt":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"due":"14/06/2024"}`), &payload))
}

func TestLocalDateScanValue(t *testing.T) {
	var d LocalDate
	require.NoError(t, d.Scan(time.Date(2024, 6, 14, 23, 0, 0, 0, time.FixedZone("X", 3600))))
	assert.Equal(t, "2024-06-14", d.String())

	require.NoError(t, d.Scan("2024-06-15T00:00:00Z"))
	assert.Equal(t, "2024-06-15", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-16")))
	assert.Equal(t, "2024-06-16", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
	assert.Error(t, d.Scan(3.14))

	v, err := NewLocalDate(2024, time.June, 14).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-14", v)

	v, err = LocalDate{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
