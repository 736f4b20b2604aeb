package nepcal

import (
	"sort"
	"time"
)

var MonthNames = [12]string{
	"Baishakh", "Jestha", "Ashadh", "Shrawan", "Bhadra", "Ashwin",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

var nepalLocation *time.Location

func init() {
	var err error
	nepalLocation, err = time.LoadLocation("Asia/Kathmandu")
	if err != nil {
		nepalLocation = time.FixedZone("NPT", 5*60*60+45*60)
	}
}

// DaysInMonth returns the length of a BS month.
func DaysInMonth(year, month int) (int, error) {
	n, reason := monthLength(year, month)
	if reason != "" {
		return 0, invalid(BS, Date{Year: year, Month: month, Day: 1}.String(), "%s", reason)
	}
	return n, nil
}

func monthLength(year, month int) (int, string) {
	if year < MinYear || year > MaxYear {
		return 0, "year outside supported range"
	}
	if month < 1 || month > 12 {
		return 0, "month outside 1..12"
	}
	return monthDays[year-MinYear][month-1], ""
}

// ValidateBS reports whether bs names an existing day of the supported BS range.
func ValidateBS(bs Date) error {
	n, reason := monthLength(bs.Year, bs.Month)
	if reason != "" {
		return invalid(BS, bs.String(), "%s", reason)
	}
	if bs.Day < 1 || bs.Day > n {
		return invalid(BS, bs.String(), "day outside 1..%d", n)
	}
	return nil
}

// ConvertBSToAD returns the Gregorian date of a BS date.
func ConvertBSToAD(bs Date) (Date, error) {
	if err := ValidateBS(bs); err != nil {
		return Date{}, err
	}

	idx := bs.Year - MinYear
	days := yearOffsets[idx]
	for m := 0; m < bs.Month-1; m++ {
		days += monthDays[idx][m]
	}
	days += bs.Day - 1

	return FromTime(epochAD.AddDate(0, 0, days)), nil
}

// ConvertADToBS returns the BS date of a Gregorian date as YYYY-MM-DD.
func ConvertADToBS(ad Date) (string, error) {
	bs, err := ADToBS(ad)
	if err != nil {
		return "", err
	}
	return bs.String(), nil
}

func ADToBS(ad Date) (Date, error) {
	if ad.Year < 1 || ad.Month < 1 || ad.Month > 12 || ad.Day < 1 {
		return Date{}, invalid(AD, ad.String(), "not a gregorian date")
	}
	t := ad.Time()
	if FromTime(t) != ad {
		return Date{}, invalid(AD, ad.String(), "not a gregorian date")
	}

	days := int(t.Sub(epochAD).Hours() / 24)
	total := yearOffsets[len(yearOffsets)-1]
	if days < 0 || days >= total {
		return Date{}, invalid(AD, ad.String(), "outside supported range %s..%s",
			FromTime(epochAD), FromTime(epochAD.AddDate(0, 0, total-1)))
	}

	// first year whose start is past the offset, minus one
	idx := sort.Search(len(yearOffsets), func(i int) bool { return yearOffsets[i] > days }) - 1
	rem := days - yearOffsets[idx]

	month := 0
	for rem >= monthDays[idx][month] {
		rem -= monthDays[idx][month]
		month++
	}

	return Date{Year: MinYear + idx, Month: month + 1, Day: rem + 1}, nil
}

// Today returns the current BS date in Nepal time.
func Today(now time.Time) (Date, error) {
	return ADToBS(FromTime(now.In(nepalLocation)))
}

// FirstWeekday returns the weekday on which a BS month starts.
func FirstWeekday(year, month int) (time.Weekday, error) {
	ad, err := ConvertBSToAD(Date{Year: year, Month: month, Day: 1})
	if err != nil {
		return 0, err
	}
	return ad.Time().Weekday(), nil
}
