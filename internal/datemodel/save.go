// Package datemodel holds the save procedure for records that carry a
// user-supplied BS date and a derived AD date.
package datemodel

import (
	"context"

	"github.com/saulo-duarte/sambat-api/internal/nepcal"
)

// Record is a row whose AD date is derived from its BS date.
type Record interface {
	BSDate() nepcal.Date
	SetADDate(nepcal.Date)
}

// Derive recomputes the AD date from the BS date in place.
func Derive(rec Record) error {
	ad, err := nepcal.ConvertBSToAD(rec.BSDate())
	if err != nil {
		return err
	}
	rec.SetADDate(ad)
	return nil
}

// Save derives the AD date and then calls persist. Nothing is persisted when
// the BS date does not convert.
func Save[T Record](ctx context.Context, rec T, persist func(context.Context, T) error) error {
	if err := Derive(rec); err != nil {
		return err
	}
	return persist(ctx, rec)
}
