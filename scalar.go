package chronia

import "time"

// Year is a proleptic Gregorian year, restricted to 1..=9999 (the supported
// range of this whole package — see SPEC_FULL.md for why dates outside it are a
// declared Non-goal rather than an oversight).
type Year int16

const (
	YearMin Year = 1
	YearMax Year = 9999
)

// NewYear validates y is within [YearMin, YearMax].
func NewYear(y int) (Year, error) {
	if y < int(YearMin) || y > int(YearMax) {
		return 0, outOfRangeError("year", int64(y))
	}
	return Year(y), nil
}

// MustNewYear is NewYear, panicking on error.
func MustNewYear(y int) Year {
	return mustValue(NewYear(y))
}

// IsLeap reports whether y is a leap year in the proleptic Gregorian calendar.
func (y Year) IsLeap() bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// Length returns 365 or 366.
func (y Year) Length() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// Month is a month-of-year, 1 (January) through 12 (December); it is
// numbered the same as time.Month.
type Month int8

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

func (m Month) String() string {
	if m < January || m > December {
		return "%!Month(" + itoa(int(m)) + ")"
	}
	return time.Month(m).String()
}

// DaysIn returns the number of days in this month for the given year's
// leap-ness.
func (m Month) DaysIn(leap bool) int {
	switch m {
	case April, June, September, November:
		return 30
	case February:
		if leap {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isValidMonth(m int) bool { return m >= int(January) && m <= int(December) }

// SubSecNanos is the sub-second part of a Time or Instant, 0..=999_999_999.
type SubSecNanos int32

// NewSubSecNanos validates ns is within [0, 999_999_999].
func NewSubSecNanos(ns int) (SubSecNanos, error) {
	if ns < 0 || ns > 999_999_999 {
		return 0, outOfRangeError("subsec nanoseconds", int64(ns))
	}
	return SubSecNanos(ns), nil
}

// Offset is a UTC offset in whole seconds east of UTC, strictly between
// -86400 and +86400 (a day in either direction, exclusive — the same bound
// the IANA database itself respects).
type Offset int32

// OffsetZero is UTC (+00:00).
const OffsetZero Offset = 0

const (
	offsetMin = -86399
	offsetMax = 86399
)

// NewOffset validates seconds is within (-86400, 86400).
func NewOffset(seconds int) (Offset, error) {
	if seconds < offsetMin || seconds > offsetMax {
		return 0, outOfRangeError("offset seconds", int64(seconds))
	}
	return Offset(seconds), nil
}

// MustNewOffset is NewOffset, panicking on error.
func MustNewOffset(seconds int) Offset {
	return mustValue(NewOffset(seconds))
}

// NewOffsetHMS builds an offset from hours/minutes/seconds, all of which must
// share the same sign (or be zero).
func NewOffsetHMS(hours, minutes, seconds int) (Offset, error) {
	neg := hours < 0 || minutes < 0 || seconds < 0
	pos := hours > 0 || minutes > 0 || seconds > 0
	if neg && pos {
		return 0, newError(ReasonInvalidFormat, "offset components must share a sign")
	}
	total := hours*3600 + minutes*60 + seconds
	return NewOffset(total)
}

func (o Offset) Seconds() int { return int(o) }

func (o Offset) String() string { return string(appendOffset(nil, o)) }

// EpochSecs counts whole seconds since 0001-01-01T00:00:00 UTC (this
// package's internal timeline origin, rather than the Unix epoch). Values are
// bounded so that the corresponding Date always falls within
// [YearMin, YearMax].
type EpochSecs int64

const secondsPerDay int64 = 86400

var (
	minEpochDay  = daysFromCivil(int64(YearMin), 1, 1) + epochDayShift
	maxEpochDay  = daysFromCivil(int64(YearMax), 12, 31) + epochDayShift
	MinInstantEpochSecs = EpochSecs(minEpochDay * secondsPerDay)
	MaxInstantEpochSecs = EpochSecs(maxEpochDay*secondsPerDay + secondsPerDay - 1)
)

func (e EpochSecs) inRange() bool {
	return e >= MinInstantEpochSecs && e <= MaxInstantEpochSecs
}

// SecondOfDay is the number of seconds elapsed since local midnight, 0..=86399.
type SecondOfDay int32

// DeltaMonths and DeltaDays are signed calendar shift magnitudes, bounded
// generously (the full year range is under 3.7M days and under 120K months,
// so int32 is not remotely tight but keeps the types distinct from raw int).
type DeltaMonths int32
type DeltaDays int32

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
