package chronia

import (
	"database/sql/driver"
	"fmt"
)

// SystemDateTime pairs a civil (date, time) with the host's local time zone,
// resolved through a SystemResolver rather than a named IANA zone. It exists
// alongside ZonedDateTime for programs that mean "whatever zone this machine
// is configured with" rather than a specific, portable IANA identifier.
type SystemDateTime struct {
	dt       DateTime
	offset   Offset
	resolver SystemResolver
}

// NewSystemDateTime resolves (date, t) against resolver.
func NewSystemDateTime(date Date, t Time, how Disambiguate, resolver SystemResolver) (SystemDateTime, error) {
	if resolver == nil {
		resolver = DefaultSystemResolver
	}
	offset, d, tt, err := resolver.ResolveLocal(date, t, how)
	if err != nil {
		return SystemDateTime{}, err
	}
	return SystemDateTime{dt: DateTime{date: d, time: tt}, offset: offset, resolver: resolver}, nil
}

// SystemDateTimeFromInstant renders inst in the resolver's zone.
func SystemDateTimeFromInstant(inst Instant, resolver SystemResolver) (SystemDateTime, error) {
	if resolver == nil {
		resolver = DefaultSystemResolver
	}
	offset := resolver.OffsetForInstant(inst)
	shifted, err := inst.Shift(int64(offset) * 1_000_000_000)
	if err != nil {
		return SystemDateTime{}, err
	}
	return SystemDateTime{dt: shifted.ToDateTime(), offset: offset, resolver: resolver}, nil
}

// NowSystem returns the current instant rendered in the host's local zone.
func NowSystem() (SystemDateTime, error) {
	return SystemDateTimeFromInstant(Now(), DefaultSystemResolver)
}

func (s SystemDateTime) Date() Date        { return s.dt.date }
func (s SystemDateTime) Time() Time        { return s.dt.time }
func (s SystemDateTime) Offset() Offset    { return s.offset }
func (s SystemDateTime) ToPlain() DateTime { return s.dt }

func (s SystemDateTime) Instant() Instant {
	inst := InstantFromDateTime(s.dt)
	shifted, err := inst.Shift(-int64(s.offset) * 1_000_000_000)
	if err != nil {
		panic(err)
	}
	return shifted
}

// MapKey returns a representation suitable for use as a map key, equal
// across every datetime kind sharing the same instant.
func (s SystemDateTime) MapKey() (int64, uint32) { return s.Instant().HashKey() }

func (s SystemDateTime) ToFixedOffset() OffsetDateTime {
	return OffsetDateTime{dt: s.dt, offset: s.offset}
}

func (s SystemDateTime) ToTZ(zone TimeZone) (ZonedDateTime, error) {
	return ZonedDateTimeFromInstant(s.Instant(), zone)
}

// Add shifts by an exact-time delta and re-derives the offset, so a shift
// across a host DST transition updates the stored offset correctly.
func (s SystemDateTime) Add(delta TimeDelta) (SystemDateTime, error) {
	inst, err := s.Instant().Shift(nanosOf(delta))
	if err != nil {
		return SystemDateTime{}, err
	}
	return SystemDateTimeFromInstant(inst, s.resolver)
}

// AddCalendar shifts the civil date/time by a calendar delta and re-resolves
// against the host's zone under how, mirroring ZonedDateTime.AddCalendar.
func (s SystemDateTime) AddCalendar(delta DateDelta, how Disambiguate) (SystemDateTime, error) {
	d, err := s.dt.date.Shift(delta.months, delta.days)
	if err != nil {
		return SystemDateTime{}, err
	}
	return NewSystemDateTime(d, s.dt.time, how, s.resolver)
}

// Shift applies delta's calendar component to the date (re-resolving under
// how if it changed), then adds the exact-time component to the resulting
// instant.
func (s SystemDateTime) Shift(delta DateTimeDelta, how Disambiguate) (SystemDateTime, error) {
	withDate, err := s.AddCalendar(delta.dateDelta, how)
	if err != nil {
		return SystemDateTime{}, err
	}
	return withDate.Add(delta.timeDelta)
}

// ReplaceTimePreferringOffset is like ReplaceTime but reuses s's current
// offset when still valid for the new (date, t) pair under a fold, falling
// back to Compatible otherwise.
func (s SystemDateTime) ReplaceTimePreferringOffset(t Time) (SystemDateTime, error) {
	offset, d, tt, err := s.resolver.ResolveLocalPreferred(s.dt.date, t, s.offset)
	if err != nil {
		return SystemDateTime{}, err
	}
	return SystemDateTime{dt: DateTime{date: d, time: tt}, offset: offset, resolver: s.resolver}, nil
}

// Round rounds the time-of-day to the nearest multiple of incrementNanos,
// carrying into the date and re-resolving against the host zone using the
// preferred-offset policy if needed.
func (s SystemDateTime) Round(incrementNanos int64, mode RoundMode) (SystemDateTime, error) {
	t, carry := s.dt.time.Round(incrementNanos, mode)
	d := s.dt.date
	if carry != 0 {
		var err error
		d, err = d.AddDays(DeltaDays(carry))
		if err != nil {
			return SystemDateTime{}, err
		}
	}
	offset, d2, t2, err := s.resolver.ResolveLocalPreferred(d, t, s.offset)
	if err != nil {
		return SystemDateTime{}, err
	}
	return SystemDateTime{dt: DateTime{date: d2, time: t2}, offset: offset, resolver: s.resolver}, nil
}

// RoundDay rounds to the nearest midnight, accounting for the host zone's
// day possibly being 23h, 24h or 25h long across a DST transition.
func (s SystemDateTime) RoundDay(mode RoundMode) (SystemDateTime, error) {
	floorDate := s.dt.date
	floor, err := NewSystemDateTime(floorDate, Midnight, Compatible, s.resolver)
	if err != nil {
		return SystemDateTime{}, err
	}
	nextDate, err := floorDate.Tomorrow()
	if err != nil {
		return SystemDateTime{}, err
	}
	ceil, err := NewSystemDateTime(nextDate, Midnight, Compatible, s.resolver)
	if err != nil {
		return SystemDateTime{}, err
	}
	nsSinceFloor := nanosOf(s.Instant().Diff(floor.Instant()))
	if nsSinceFloor == 0 {
		return floor, nil
	}
	dayNs := nanosOf(ceil.Instant().Diff(floor.Instant()))
	if nsSinceFloor >= roundDayThreshold(dayNs, mode) {
		return ceil, nil
	}
	return floor, nil
}

func (s SystemDateTime) Compare(other SystemDateTime) int {
	return s.Instant().Compare(other.Instant())
}

func (s SystemDateTime) IsBefore(other SystemDateTime) bool { return s.Compare(other) < 0 }
func (s SystemDateTime) IsAfter(other SystemDateTime) bool  { return s.Compare(other) > 0 }
func (s SystemDateTime) Equal(other SystemDateTime) bool    { return s.Compare(other) == 0 }

func (s SystemDateTime) AppendText(b []byte) ([]byte, error) {
	b = appendDate(b, s.dt.date)
	b = append(b, 'T')
	b = appendTime(b, s.dt.time)
	return appendOffset(b, s.offset), nil
}

func (s SystemDateTime) String() string { return stringImpl(s) }

func (s SystemDateTime) MarshalText() ([]byte, error) { return marshalTextImpl(s) }

func (s *SystemDateTime) UnmarshalText(text []byte) error {
	odt, err := ParseOffsetDateTime(string(text))
	if err != nil {
		return err
	}
	*s = SystemDateTime{dt: odt.dt, offset: odt.offset, resolver: DefaultSystemResolver}
	return nil
}

func (s SystemDateTime) MarshalJSON() ([]byte, error) { return marshalJSONImpl(s) }
func (s *SystemDateTime) UnmarshalJSON(data []byte) error {
	return unmarshalJSONImpl(s, data)
}

func (s *SystemDateTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return newError(ReasonInvalidFormat, "cannot scan NULL into SystemDateTime")
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	default:
		return fmt.Errorf("chronia: cannot scan %T into SystemDateTime", src)
	}
}

func (s SystemDateTime) Value() (driver.Value, error) {
	return s.String(), nil
}
