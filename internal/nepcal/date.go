// Package nepcal converts dates between the Bikram Sambat (BS) and the
// Gregorian (AD) calendars.
//
// Conversion is table driven: every BS month length from MinYear to MaxYear
// is known, and day offsets are counted from a fixed epoch. Functions in this
// package are pure and safe for concurrent use.
package nepcal

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Calendar string

const (
	BS Calendar = "BS"
	AD Calendar = "AD"
)

var ErrInvalidDate = errors.New("invalid date")

// InvalidDateError reports a date that does not exist in the given calendar
// or falls outside the supported range.
type InvalidDateError struct {
	Calendar Calendar
	Input    string
	Reason   string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s date %q: %s", e.Calendar, e.Input, e.Reason)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}

func invalid(cal Calendar, input, reason string, args ...any) error {
	return &InvalidDateError{Calendar: cal, Input: input, Reason: fmt.Sprintf(reason, args...)}
}

// Date is a calendar-agnostic (year, month, day) triple. Whether it holds a
// BS or an AD date is decided by the caller.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(d.Month, other.Month)
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Time interprets d as a Gregorian date at UTC midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseDate reads a YYYY-MM-DD string. Only the shape is checked here; use
// ValidateBS or ConvertBSToAD to check that the date exists.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, invalid(BS, s, "expected YYYY-MM-DD")
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Date{}, invalid(BS, s, "expected YYYY-MM-DD")
		}
		nums[i] = n
	}

	return Date{Year: nums[0], Month: nums[1], Day: nums[2]}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the text form, which postgres also accepts for date columns.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = FromTime(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan type %T into nepcal.Date", value)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > 10 {
		s = s[:10]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
