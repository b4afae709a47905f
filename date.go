package chronia

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date is a civil calendar date with no attached offset or time zone,
// restricted to the proleptic Gregorian calendar between YearMin and
// YearMax inclusive.
type Date struct {
	year  Year
	month Month
	day   int8
}

// NewDate validates and builds a Date.
func NewDate(year Year, month Month, day int) (Date, error) {
	if !isValidMonth(int(month)) {
		return Date{}, outOfRangeError("month", int64(month))
	}
	if day < 1 || day > month.DaysIn(year.IsLeap()) {
		return Date{}, outOfRangeError("day", int64(day))
	}
	return Date{year: year, month: month, day: int8(day)}, nil
}

// MustNewDate is NewDate, panicking on error. Intended for package-level
// constants and tests.
func MustNewDate(year int, month Month, day int) Date {
	y := mustValue(NewYear(year))
	return mustValue(NewDate(y, month, day))
}

// dateFromEpochDay builds the Date that is dayNum days after 0001-01-01.
func dateFromEpochDay(dayNum int64) Date {
	y, m, d := civilFromDays(dayNum - epochDayShift)
	return Date{year: Year(y), month: Month(m), day: int8(d)}
}

// epochDay returns the number of days since 0001-01-01.
func (d Date) epochDay() int64 {
	return daysFromCivil(int64(d.year), int(d.month), int(d.day)) + epochDayShift
}

func (d Date) Year() Year   { return d.year }
func (d Date) Month() Month { return d.month }
func (d Date) Day() int     { return int(d.day) }

// Weekday returns the day of week, using the same Sunday=0..Saturday=6
// numbering as time.Weekday.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(weekdayFromEpochDay(d.epochDay()))
}

func (d Date) IsLeapYear() bool   { return d.year.IsLeap() }
func (d Date) DaysInMonth() int   { return d.month.DaysIn(d.year.IsLeap()) }
func (d Date) DayOfYear() int {
	return int(daysFromCivil(int64(d.year), int(d.month), int(d.day)) -
		daysFromCivil(int64(d.year), 1, 1) + 1)
}

// AtTime combines this Date with a Time to form a DateTime.
func (d Date) AtTime(t Time) DateTime {
	return DateTime{date: d, time: t}
}

// EpochAt returns the EpochSecs for this date combined with the given time,
// both interpreted as UTC.
func (d Date) EpochAt(t Time) EpochSecs {
	return EpochSecs(d.epochDay()*secondsPerDay + int64(t.SecondOfDay()))
}

// AddDays shifts the date by n days, which may be negative.
func (d Date) AddDays(n DeltaDays) (Date, error) {
	nd := d.epochDay() + int64(n)
	if nd < minEpochDay || nd > maxEpochDay {
		return Date{}, outOfRangeError("date", nd)
	}
	return dateFromEpochDay(nd), nil
}

// AddMonths shifts the date by n calendar months, clamping the day of month
// if the target month is shorter (e.g. Jan 31 + 1 month = Feb 28/29).
func (d Date) AddMonths(n DeltaMonths) (Date, error) {
	totalMonths := (int64(d.year)-1)*12 + int64(d.month) - 1 + int64(n)
	y := floorDiv(totalMonths, 12) + 1
	m := int(floorMod(totalMonths, 12)) + 1
	if y < int64(YearMin) || y > int64(YearMax) {
		return Date{}, outOfRangeError("year", y)
	}
	yr := Year(y)
	day := int(d.day)
	if maxDay := Month(m).DaysIn(yr.IsLeap()); day > maxDay {
		day = maxDay
	}
	return Date{year: yr, month: Month(m), day: int8(day)}, nil
}

// Shift applies a calendar-month shift followed by a day shift, the order
// the rest of this package always uses for combined date deltas.
func (d Date) Shift(months DeltaMonths, days DeltaDays) (Date, error) {
	shifted, err := d.AddMonths(months)
	if err != nil {
		return Date{}, err
	}
	return shifted.AddDays(days)
}

// Tomorrow and Yesterday are convenience one-day shifts.
func (d Date) Tomorrow() (Date, error)  { return d.AddDays(1) }
func (d Date) Yesterday() (Date, error) { return d.AddDays(-1) }

// Sub returns the calendar difference (in whole years/months/days) between d
// and other, such that other.Shift(delta-months, delta-days) == d.
func (d Date) Sub(other Date) DateDelta {
	if d.epochDay() < other.epochDay() {
		neg := other.Sub(d)
		return DateDelta{months: -neg.months, days: -neg.days}
	}
	months := (int64(d.year)-int64(other.year))*12 + int64(d.month) - int64(other.month)
	anchor, err := other.AddMonths(DeltaMonths(months))
	if err != nil {
		anchor = other
		months = 0
	}
	if anchor.epochDay() > d.epochDay() {
		months--
		anchor, _ = other.AddMonths(DeltaMonths(months))
	}
	days := d.epochDay() - anchor.epochDay()
	return DateDelta{months: DeltaMonths(months), days: DeltaDays(days)}
}

func (d Date) Compare(other Date) int {
	return doCompare(d, other,
		comparing(func(x Date) int64 { return x.epochDay() }),
	)
}

func (d Date) IsBefore(other Date) bool { return d.Compare(other) < 0 }
func (d Date) IsAfter(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool    { return d == other }

// AppendText renders d in YYYY-MM-DD form.
func (d Date) AppendText(b []byte) ([]byte, error) {
	return appendDate(b, d), nil
}

func (d Date) String() string { return stringImpl(d) }

func (d Date) MarshalText() ([]byte, error) { return marshalTextImpl(d) }

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) { return marshalJSONImpl(d) }
func (d *Date) UnmarshalJSON(data []byte) error {
	return unmarshalJSONImpl(d, data)
}

// Scan implements database/sql.Scanner, accepting strings, []byte or
// time.Time (as produced by database drivers for DATE columns).
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return newError(ReasonInvalidFormat, "cannot scan NULL into Date")
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case time.Time:
		year, err := NewYear(v.Year())
		if err != nil {
			return err
		}
		parsed, err := NewDate(year, Month(v.Month()), v.Day())
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("chronia: cannot scan %T into Date", src)
	}
}

// Value implements database/sql/driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// ParseDate parses an ISO 8601 calendar date in extended (YYYY-MM-DD) or
// basic (YYYYMMDD) form.
func ParseDate(s string) (Date, error) {
	return parseISODate(s)
}
