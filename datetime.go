package chronia

import (
	"database/sql/driver"
	"fmt"
)

// DateTime is a civil (date, time) pair with no attached offset or zone.
type DateTime struct {
	date Date
	time Time
}

func NewDateTime(date Date, time Time) DateTime {
	return DateTime{date: date, time: time}
}

func (dt DateTime) Date() Date { return dt.date }
func (dt DateTime) Time() Time { return dt.time }

// EpochSecsAsUTC treats dt as if it were already UTC and returns its
// EpochSecs; used internally by the zone-aware types, which layer an
// offset or zone resolution on top of this.
func (dt DateTime) EpochSecsAsUTC() EpochSecs {
	return dt.date.EpochAt(dt.time)
}

// Shift applies a calendar shift to the date, then an exact-time shift which
// may itself carry across midnight into further date shifts.
func (dt DateTime) Shift(delta DateTimeDelta) (DateTime, error) {
	d, err := dt.date.Shift(delta.dateDelta.months, delta.dateDelta.days)
	if err != nil {
		return DateTime{}, err
	}
	secs, nanos := delta.timeDelta.TotalNanoseconds()
	totalNanos := dt.time.NanosecondOfDay() + secs*1_000_000_000 + int64(nanos)
	const dayNanos = 86_400_000_000_000
	dayCarry := floorDiv(totalNanos, dayNanos)
	d, err = d.AddDays(DeltaDays(dayCarry))
	if err != nil {
		return DateTime{}, err
	}
	t := timeFromNanosOfDay(totalNanos - dayCarry*dayNanos)
	return DateTime{date: d, time: t}, nil
}

// Round rounds the time-of-day component, carrying into the next day when
// rounding reaches midnight.
func (dt DateTime) Round(incrementNanos int64, mode RoundMode) (DateTime, error) {
	t, carry := dt.time.Round(incrementNanos, mode)
	d, err := dt.date.AddDays(DeltaDays(carry))
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: t}, nil
}

func (dt DateTime) Compare(other DateTime) int {
	return doCompare(dt, other,
		comparing(func(x DateTime) int64 { return x.date.epochDay() }),
		comparing(func(x DateTime) int64 { return x.time.NanosecondOfDay() }),
	)
}

func (dt DateTime) IsBefore(other DateTime) bool { return dt.Compare(other) < 0 }
func (dt DateTime) IsAfter(other DateTime) bool  { return dt.Compare(other) > 0 }
func (dt DateTime) Equal(other DateTime) bool    { return dt == other }

func (dt DateTime) AppendText(b []byte) ([]byte, error) {
	b = appendDate(b, dt.date)
	b = append(b, 'T')
	return appendTime(b, dt.time), nil
}

func (dt DateTime) String() string { return stringImpl(dt) }

func (dt DateTime) MarshalText() ([]byte, error) { return marshalTextImpl(dt) }

func (dt *DateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

func (dt DateTime) MarshalJSON() ([]byte, error) { return marshalJSONImpl(dt) }
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	return unmarshalJSONImpl(dt, data)
}

func (dt *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return newError(ReasonInvalidFormat, "cannot scan NULL into DateTime")
	case string:
		parsed, err := ParseDateTime(v)
		if err != nil {
			return err
		}
		*dt = parsed
		return nil
	case []byte:
		parsed, err := ParseDateTime(string(v))
		if err != nil {
			return err
		}
		*dt = parsed
		return nil
	default:
		return fmt.Errorf("chronia: cannot scan %T into DateTime", src)
	}
}

func (dt DateTime) Value() (driver.Value, error) {
	return dt.String(), nil
}

// ParseDateTime parses "YYYY-MM-DDTHH:MM:SS[.fraction]" (a space is also
// accepted in place of 'T', matching common SQL datetime rendering).
func ParseDateTime(s string) (DateTime, error) {
	if len(s) < 19 {
		return DateTime{}, parseFailedError("datetime", s)
	}
	sep := s[10]
	if sep != 'T' && sep != 't' && sep != ' ' {
		return DateTime{}, parseFailedError("datetime", s)
	}
	d, err := parseISODate(s[:10])
	if err != nil {
		return DateTime{}, err
	}
	t, err := parseISOTime(s[11:])
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: t}, nil
}
