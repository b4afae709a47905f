package chronia

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// OffsetDateTime pairs a civil (date, time) with a fixed numeric UTC offset.
// Unlike ZonedDateTime it carries no IANA zone, so arithmetic never needs to
// consult DST rules — but it also can't tell you what the offset "ought to
// be" after a shift, which is exactly the gap ZonedDateTime exists to close.
type OffsetDateTime struct {
	dt     DateTime
	offset Offset
}

// NewOffsetDateTime builds an OffsetDateTime directly; no ambiguity check is
// possible or needed since the offset is explicit.
func NewOffsetDateTime(date Date, t Time, offset Offset) OffsetDateTime {
	return OffsetDateTime{dt: DateTime{date: date, time: t}, offset: offset}
}

func MustNewOffsetDateTime(date Date, t Time, offset Offset) OffsetDateTime {
	return NewOffsetDateTime(date, t, offset)
}

// OffsetDateTimeFromInstant renders inst using the given fixed offset.
func OffsetDateTimeFromInstant(inst Instant, offset Offset) (OffsetDateTime, error) {
	shifted, err := inst.Shift(int64(offset) * 1_000_000_000)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt: shifted.ToDateTime(), offset: offset}, nil
}

func (o OffsetDateTime) Date() Date     { return o.dt.date }
func (o OffsetDateTime) Time() Time     { return o.dt.time }
func (o OffsetDateTime) Offset() Offset { return o.offset }
func (o OffsetDateTime) ToPlain() DateTime { return o.dt }

// Instant recovers the absolute instant this value denotes.
func (o OffsetDateTime) Instant() Instant {
	inst := InstantFromDateTime(o.dt)
	shifted, err := inst.Shift(-int64(o.offset) * 1_000_000_000)
	if err != nil {
		// The valid Date/Time/Offset ranges are constructed so this cannot
		// overflow Instant's own range by more than a day, which the range
		// padding in EpochSecs already accounts for.
		panic(err)
	}
	return shifted
}

// MapKey returns a representation suitable for use as a map key, equal
// across every datetime kind sharing the same instant.
func (o OffsetDateTime) MapKey() (int64, uint32) { return o.Instant().HashKey() }

// ToFixedOffset re-expresses the same instant using a different fixed
// offset.
func (o OffsetDateTime) ToFixedOffset(newOffset Offset) (OffsetDateTime, error) {
	return OffsetDateTimeFromInstant(o.Instant(), newOffset)
}

// ToTZ attaches an IANA zone to the same instant.
func (o OffsetDateTime) ToTZ(zone TimeZone) (ZonedDateTime, error) {
	return ZonedDateTimeFromInstant(o.Instant(), zone)
}

// Add shifts by an exact-time delta. A fixed offset has no way to know
// whether the host's zone would have observed DST during the shift, so the
// caller must opt in with ignoreDST=true; otherwise this raises
// ImplicitlyIgnoringDST rather than silently assuming the offset stays
// correct.
func (o OffsetDateTime) Add(delta TimeDelta, ignoreDST bool) (OffsetDateTime, error) {
	if !ignoreDST {
		return OffsetDateTime{}, newError(ReasonImplicitlyIgnoringDST,
			"shifting an OffsetDateTime requires ignoreDST=true: it has no zone to consult for DST")
	}
	inst, err := o.Instant().Shift(nanosOf(delta))
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTimeFromInstant(inst, o.offset)
}

func nanosOf(d TimeDelta) int64 {
	secs, nanos := d.TotalNanoseconds()
	return secs*1_000_000_000 + int64(nanos)
}

// AddCalendar shifts the civil date/time by a calendar delta, keeping the
// same fixed offset. Like Add, this requires ignoreDST=true: a fixed offset
// has no way to tell whether the shifted date/time should have used a
// different offset.
func (o OffsetDateTime) AddCalendar(delta DateDelta, ignoreDST bool) (OffsetDateTime, error) {
	if !ignoreDST {
		return OffsetDateTime{}, newError(ReasonImplicitlyIgnoringDST,
			"shifting an OffsetDateTime requires ignoreDST=true: it has no zone to consult for DST")
	}
	d, err := o.dt.date.Shift(delta.months, delta.days)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt: DateTime{date: d, time: o.dt.time}, offset: o.offset}, nil
}

// Shift applies delta's calendar component to the date, then its exact-time
// component to the resulting instant, the ordering spec.md §4.7 mandates for
// every datetime kind. Requires ignoreDST=true for the same reason Add does.
func (o OffsetDateTime) Shift(delta DateTimeDelta, ignoreDST bool) (OffsetDateTime, error) {
	withDate, err := o.AddCalendar(delta.dateDelta, ignoreDST)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return withDate.Add(delta.timeDelta, ignoreDST)
}

// Round rounds the time-of-day to the nearest multiple of incrementNanos,
// carrying into the date (keeping the same fixed offset) if needed.
func (o OffsetDateTime) Round(incrementNanos int64, mode RoundMode) (OffsetDateTime, error) {
	dt, err := o.dt.Round(incrementNanos, mode)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt: dt, offset: o.offset}, nil
}

// RoundDay rounds to the nearest midnight. A fixed offset never observes
// DST, so the day is always exactly 24h and this is equivalent to Round at
// day granularity.
func (o OffsetDateTime) RoundDay(mode RoundMode) (OffsetDateTime, error) {
	return o.Round(86_400_000_000_000, mode)
}

func (o OffsetDateTime) ReplaceDate(d Date) OffsetDateTime {
	return OffsetDateTime{dt: DateTime{date: d, time: o.dt.time}, offset: o.offset}
}

func (o OffsetDateTime) ReplaceTime(t Time) OffsetDateTime {
	return OffsetDateTime{dt: DateTime{date: o.dt.date, time: t}, offset: o.offset}
}

// Compare orders by instant only: two values denoting the same instant with
// different offsets compare equal (ExactEqual tells them apart).
func (o OffsetDateTime) Compare(other OffsetDateTime) int {
	return o.Instant().Compare(other.Instant())
}

func (o OffsetDateTime) IsBefore(other OffsetDateTime) bool { return o.Compare(other) < 0 }
func (o OffsetDateTime) IsAfter(other OffsetDateTime) bool  { return o.Compare(other) > 0 }

// Equal compares by instant (the same moment in time, regardless of offset).
func (o OffsetDateTime) Equal(other OffsetDateTime) bool { return o.Compare(other) == 0 }

// ExactEqual additionally requires the stored offset to match exactly.
func (o OffsetDateTime) ExactEqual(other OffsetDateTime) bool {
	return o.dt == other.dt && o.offset == other.offset
}

func (o OffsetDateTime) AppendText(b []byte) ([]byte, error) {
	b = appendDate(b, o.dt.date)
	b = append(b, 'T')
	b = appendTime(b, o.dt.time)
	return appendOffset(b, o.offset), nil
}

func (o OffsetDateTime) String() string { return stringImpl(o) }

func (o OffsetDateTime) MarshalText() ([]byte, error) { return marshalTextImpl(o) }

func (o *OffsetDateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseOffsetDateTime(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o OffsetDateTime) MarshalJSON() ([]byte, error) { return marshalJSONImpl(o) }
func (o *OffsetDateTime) UnmarshalJSON(data []byte) error {
	return unmarshalJSONImpl(o, data)
}

func (o *OffsetDateTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return newError(ReasonInvalidFormat, "cannot scan NULL into OffsetDateTime")
	case string:
		parsed, err := ParseOffsetDateTime(v)
		if err != nil {
			return err
		}
		*o = parsed
		return nil
	case []byte:
		parsed, err := ParseOffsetDateTime(string(v))
		if err != nil {
			return err
		}
		*o = parsed
		return nil
	case time.Time:
		_, secs := v.Zone()
		offset, err := NewOffset(secs)
		if err != nil {
			return err
		}
		parsed, err := OffsetDateTimeFromInstant(FromGoTime(v), offset)
		if err != nil {
			return err
		}
		*o = parsed
		return nil
	default:
		return fmt.Errorf("chronia: cannot scan %T into OffsetDateTime", src)
	}
}

func (o OffsetDateTime) Value() (driver.Value, error) {
	return o.String(), nil
}

// AppendRFC2822Text renders o as an RFC 2822 timestamp, e.g.
// "Mon, 02 Jan 2006 15:04:05 -0700".
func (o OffsetDateTime) AppendRFC2822Text(b []byte) ([]byte, error) {
	return append(b, formatRFC2822(o.dt.date, o.dt.time, o.offset)...), nil
}

// ParseOffsetDateTimeRFC2822 parses an RFC 2822 timestamp.
func ParseOffsetDateTimeRFC2822(s string) (OffsetDateTime, error) {
	d, t, offset, err := parseRFC2822(s)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return NewOffsetDateTime(d, t, offset), nil
}

// ParseOffsetDateTime parses an ISO 8601 / RFC 3339 datetime with an explicit
// offset, in extended or basic form, optionally followed by a bracketed
// "[iananame]" that is validated and then discarded.
func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	if len(s) < 11 {
		return OffsetDateTime{}, parseFailedError("offset datetime", s)
	}
	dateLen := 10
	if s[4] != '-' {
		dateLen = 8
	}
	d, err := parseISODate(s[:dateLen])
	if err != nil {
		return OffsetDateTime{}, err
	}
	if s[dateLen] != 'T' && s[dateLen] != 't' && s[dateLen] != ' ' {
		return OffsetDateTime{}, parseFailedError("offset datetime", s)
	}
	rest := s[dateLen+1:]
	offStart := -1
	for i, c := range rest {
		if c == 'Z' || c == 'z' || c == '+' || (c == '-' && i > 0) {
			offStart = i
			break
		}
	}
	if offStart < 0 {
		return OffsetDateTime{}, parseFailedError("offset datetime", s)
	}
	t, err := parseISOTime(rest[:offStart])
	if err != nil {
		return OffsetDateTime{}, err
	}
	off, consumed, err := parseOffset(rest, offStart)
	if err != nil {
		return OffsetDateTime{}, err
	}
	tail := rest[offStart+consumed:]
	if tail != "" {
		// Tolerate (and validate) a trailing RFC 9557 "[iananame]" suffix:
		// the zone information itself is discarded here since an
		// OffsetDateTime carries no zone, but an unloadable name is still
		// rejected rather than silently accepted.
		if len(tail) < 3 || tail[0] != '[' || tail[len(tail)-1] != ']' {
			return OffsetDateTime{}, parseFailedError("offset datetime", s)
		}
		if _, err := LoadTimeZone(tail[1 : len(tail)-1]); err != nil {
			return OffsetDateTime{}, err
		}
	}
	return NewOffsetDateTime(d, t, off), nil
}
