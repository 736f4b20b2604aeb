package request

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
)

// BSMonthPrefix reads the optional ?year=&month= BS filter and returns the
// date_bs prefix it selects ("2081-", "2081-01-") or "" when absent.
func BSMonthPrefix(r *http.Request) (string, error) {
	q := r.URL.Query()
	yearStr, monthStr := q.Get("year"), q.Get("month")

	if yearStr == "" {
		if monthStr != "" {
			return "", apperr.Validation("month", "requires year")
		}
		return "", nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < nepcal.MinYear || year > nepcal.MaxYear {
		return "", apperr.Validation("year", fmt.Sprintf("must be a BS year between %d and %d", nepcal.MinYear, nepcal.MaxYear))
	}
	if monthStr == "" {
		return fmt.Sprintf("%04d-", year), nil
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return "", apperr.Validation("month", "must be between 1 and 12")
	}
	return fmt.Sprintf("%04d-%02d-", year, month), nil
}

// OptionalUUID parses a query parameter that may be absent.
func OptionalUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperr.Validation(name, "must be a UUID")
	}
	return &id, nil
}
