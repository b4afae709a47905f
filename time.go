package chronia

import (
	"database/sql/driver"
	"fmt"
)

// Time is a time-of-day with nanosecond precision and no date or offset
// attached, 00:00:00 through 23:59:59.999999999.
type Time struct {
	secondOfDay SecondOfDay
	nanos       SubSecNanos
}

// Midnight is 00:00:00.
var Midnight = Time{}

// NewTime validates and builds a Time.
func NewTime(hour, minute, second, nanos int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, outOfRangeError("hour", int64(hour))
	}
	if minute < 0 || minute > 59 {
		return Time{}, outOfRangeError("minute", int64(minute))
	}
	if second < 0 || second > 59 {
		return Time{}, outOfRangeError("second", int64(second))
	}
	ns, err := NewSubSecNanos(nanos)
	if err != nil {
		return Time{}, err
	}
	return Time{secondOfDay: SecondOfDay(hour*3600 + minute*60 + second), nanos: ns}, nil
}

// MustNewTime is NewTime, panicking on error.
func MustNewTime(hour, minute, second, nanos int) Time {
	return mustValue(NewTime(hour, minute, second, nanos))
}

func timeFromNanosOfDay(nanosOfDay int64) Time {
	sod := nanosOfDay / 1_000_000_000
	ns := nanosOfDay % 1_000_000_000
	return Time{secondOfDay: SecondOfDay(sod), nanos: SubSecNanos(ns)}
}

func (t Time) Hour() int          { return int(t.secondOfDay) / 3600 }
func (t Time) Minute() int        { return (int(t.secondOfDay) / 60) % 60 }
func (t Time) Second() int        { return int(t.secondOfDay) % 60 }
func (t Time) Nanosecond() SubSecNanos { return t.nanos }

func (t Time) SecondOfDay() SecondOfDay { return t.secondOfDay }

// NanosecondOfDay returns the time as a count of nanoseconds since midnight,
// 0..86_399_999_999_999.
func (t Time) NanosecondOfDay() int64 {
	return int64(t.secondOfDay)*1_000_000_000 + int64(t.nanos)
}

// Round rounds t to the nearest multiple of incrementNanos using mode,
// returning the rounded time and how many whole days the rounding carried
// into (0, or 1 when it reaches the next midnight).
func (t Time) Round(incrementNanos int64, mode RoundMode) (Time, int) {
	const dayNanos = 86_400_000_000_000
	rounded := mode.round(t.NanosecondOfDay(), incrementNanos)
	carry := 0
	for rounded < 0 {
		rounded += dayNanos
		carry--
	}
	for rounded >= dayNanos {
		rounded -= dayNanos
		carry++
	}
	return timeFromNanosOfDay(rounded), carry
}

func (t Time) Compare(other Time) int {
	return doCompare(t, other,
		comparing(func(x Time) int64 { return int64(x.secondOfDay) }),
		comparing(func(x Time) int32 { return int32(x.nanos) }),
	)
}

func (t Time) IsBefore(other Time) bool { return t.Compare(other) < 0 }
func (t Time) IsAfter(other Time) bool  { return t.Compare(other) > 0 }
func (t Time) Equal(other Time) bool    { return t == other }

func (t Time) AppendText(b []byte) ([]byte, error) {
	return appendTime(b, t), nil
}

func (t Time) String() string { return stringImpl(t) }

func (t Time) MarshalText() ([]byte, error) { return marshalTextImpl(t) }

func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := ParseTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) { return marshalJSONImpl(t) }
func (t *Time) UnmarshalJSON(data []byte) error {
	return unmarshalJSONImpl(t, data)
}

func (t *Time) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return newError(ReasonInvalidFormat, "cannot scan NULL into Time")
	case string:
		parsed, err := ParseTime(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTime(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("chronia: cannot scan %T into Time", src)
	}
}

func (t Time) Value() (driver.Value, error) {
	return t.String(), nil
}

// ParseTime parses an ISO 8601 time-of-day in extended (HH[:MM[:SS[.fraction]]])
// or basic (HH[MM[SS[.fraction]]]) form.
func ParseTime(s string) (Time, error) {
	return parseISOTime(s)
}
