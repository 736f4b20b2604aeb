package calendar

import (
	"time"

	"github.com/saulo-duarte/sambat-api/internal/apperr"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
)

type Conversion struct {
	BS        nepcal.Date `json:"bs"`
	AD        nepcal.Date `json:"ad"`
	Weekday   string      `json:"weekday"`
	MonthName string      `json:"month_name"`
}

type Month struct {
	Year         int         `json:"year"`
	Month        int         `json:"month"`
	MonthName    string      `json:"month_name"`
	Days         int         `json:"days"`
	FirstWeekday string      `json:"first_weekday"`
	StartAD      nepcal.Date `json:"start_ad"`
	EndAD        nepcal.Date `json:"end_ad"`
}

type Service interface {
	FromBS(bs nepcal.Date) (*Conversion, error)
	FromAD(ad nepcal.Date) (*Conversion, error)
	Today() (*Conversion, error)
	Month(year, month int) (*Month, error)
}

type service struct {
	now func() time.Time
}

func NewService() Service {
	return &service{now: time.Now}
}

func conversion(bs, ad nepcal.Date) *Conversion {
	return &Conversion{
		BS:        bs,
		AD:        ad,
		Weekday:   ad.Time().Weekday().String(),
		MonthName: nepcal.MonthNames[bs.Month-1],
	}
}

func (s *service) FromBS(bs nepcal.Date) (*Conversion, error) {
	ad, err := nepcal.ConvertBSToAD(bs)
	if err != nil {
		return nil, err
	}
	return conversion(bs, ad), nil
}

func (s *service) FromAD(ad nepcal.Date) (*Conversion, error) {
	bs, err := nepcal.ADToBS(ad)
	if err != nil {
		return nil, err
	}
	return conversion(bs, ad), nil
}

func (s *service) Today() (*Conversion, error) {
	bs, err := nepcal.Today(s.now())
	if err != nil {
		return nil, err
	}
	return s.FromBS(bs)
}

func (s *service) Month(year, month int) (*Month, error) {
	days, err := nepcal.DaysInMonth(year, month)
	if err != nil {
		return nil, err
	}
	first, err := nepcal.FirstWeekday(year, month)
	if err != nil {
		return nil, err
	}
	start, err := nepcal.ConvertBSToAD(nepcal.Date{Year: year, Month: month, Day: 1})
	if err != nil {
		return nil, err
	}
	end, err := nepcal.ConvertBSToAD(nepcal.Date{Year: year, Month: month, Day: days})
	if err != nil {
		return nil, err
	}

	return &Month{
		Year:         year,
		Month:        month,
		MonthName:    nepcal.MonthNames[month-1],
		Days:         days,
		FirstWeekday: first.String(),
		StartAD:      start,
		EndAD:        end,
	}, nil
}

func requireOne(bs, ad string) error {
	switch {
	case bs == "" && ad == "":
		return apperr.Validation("bs", "one of bs or ad is required")
	case bs != "" && ad != "":
		return apperr.Validation("ad", "pass either bs or ad, not both")
	}
	return nil
}
