package datemodel

import (
	"context"
	"testing"

	"github.com/saulo-duarte/sambat-api/internal/nepcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	bs, ad nepcal.Date
}

func (r *row) BSDate() nepcal.Date      { return r.bs }
func (r *row) SetADDate(ad nepcal.Date) { r.ad = ad }

func TestSaveDerivesBeforePersisting(t *testing.T) {
	r := &row{
		bs: nepcal.Date{Year: 2081, Month: 1, Day: 1},
		ad: nepcal.Date{Year: 1999, Month: 1, Day: 1},
	}

	var seen nepcal.Date
	err := Save(context.Background(), r, func(_ context.Context, r *row) error {
		seen = r.ad
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-04-13", seen.String())
}

func TestSaveSkipsPersistOnInvalidDate(t *testing.T) {
	r := &row{bs: nepcal.Date{Year: 2081, Month: 1, Day: 40}}

	called := false
	err := Save(context.Background(), r, func(context.Context, *row) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, nepcal.ErrInvalidDate)
	assert.False(t, called)
	assert.True(t, r.ad.IsZero())
}
