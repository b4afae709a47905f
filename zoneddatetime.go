package chronia

import (
	"database/sql/driver"
	"fmt"
)

// ZonedDateTime pairs a civil (date, time) with an IANA time zone and the
// specific offset that zone resolves it to. The stored offset is always one
// the zone gives for this (date, time): its single offset, or one of the two
// candidates of a fold or gap. Constructors and arithmetic derive it through
// the zone, and parsing and UnmarshalBinary check a supplied offset against
// it, so recovering its Instant is lossless.
type ZonedDateTime struct {
	dt     DateTime
	zone   TimeZone
	offset Offset
}

// NewZonedDateTime resolves (date, t) against zone, applying how to any
// fold or gap.
func NewZonedDateTime(date Date, t Time, zone TimeZone, how Disambiguate) (ZonedDateTime, error) {
	offset, d, tt, err := zone.ResolveLocal(date, t, how)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{dt: DateTime{date: d, time: tt}, zone: zone, offset: offset}, nil
}

// ZonedDateTimeFromInstant renders inst in zone.
func ZonedDateTimeFromInstant(inst Instant, zone TimeZone) (ZonedDateTime, error) {
	offset := zone.offsetAt(inst.UnixTimestamp())
	shifted, err := inst.Shift(int64(offset) * 1_000_000_000)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{dt: shifted.ToDateTime(), zone: zone, offset: offset}, nil
}

func (z ZonedDateTime) Date() Date       { return z.dt.date }
func (z ZonedDateTime) Time() Time       { return z.dt.time }
func (z ZonedDateTime) Zone() TimeZone   { return z.zone }
func (z ZonedDateTime) Offset() Offset   { return z.offset }
func (z ZonedDateTime) ToPlain() DateTime { return z.dt }

// Instant recovers the absolute instant this value denotes.
func (z ZonedDateTime) Instant() Instant {
	inst := InstantFromDateTime(z.dt)
	shifted, err := inst.Shift(-int64(z.offset) * 1_000_000_000)
	if err != nil {
		panic(err)
	}
	return shifted
}

// MapKey returns a representation suitable for use as a map key, equal
// across every datetime kind sharing the same instant.
func (z ZonedDateTime) MapKey() (int64, uint32) { return z.Instant().HashKey() }

// ToTZ re-expresses the same instant in a different IANA zone.
func (z ZonedDateTime) ToTZ(other TimeZone) (ZonedDateTime, error) {
	return ZonedDateTimeFromInstant(z.Instant(), other)
}

// ToFixedOffset demotes to an OffsetDateTime carrying z's current offset.
func (z ZonedDateTime) ToFixedOffset() OffsetDateTime {
	return OffsetDateTime{dt: z.dt, offset: z.offset}
}

// ToSystemTZ resolves the same instant against the host's local zone via
// resolver.
func (z ZonedDateTime) ToSystemTZ(resolver SystemResolver) (SystemDateTime, error) {
	return SystemDateTimeFromInstant(z.Instant(), resolver)
}

// Add shifts by an exact-time delta along the absolute timeline, then
// re-derives the offset for the result — so a shift that crosses a DST
// transition correctly changes the stored offset.
func (z ZonedDateTime) Add(delta TimeDelta) (ZonedDateTime, error) {
	inst, err := z.Instant().Shift(nanosOf(delta))
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTimeFromInstant(inst, z.zone)
}

// AddCalendar shifts the civil date/time by a calendar delta and re-resolves
// against the zone under how. Mixing calendar units into a ZonedDateTime
// shift always requires this explicit method call with an explicit
// disambiguation policy — there is no bare-operator form that would have to
// guess one.
func (z ZonedDateTime) AddCalendar(delta DateDelta, how Disambiguate) (ZonedDateTime, error) {
	d, err := z.dt.date.Shift(delta.months, delta.days)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return NewZonedDateTime(d, z.dt.time, z.zone, how)
}

// Shift applies delta's calendar component to the date (re-resolving under
// how if it changed), then adds the exact-time component to the resulting
// instant — the ordering spec.md §4.7 mandates for every datetime kind.
func (z ZonedDateTime) Shift(delta DateTimeDelta, how Disambiguate) (ZonedDateTime, error) {
	withDate, err := z.AddCalendar(delta.dateDelta, how)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return withDate.Add(delta.timeDelta)
}

func (z ZonedDateTime) ReplaceDate(d Date, how Disambiguate) (ZonedDateTime, error) {
	return NewZonedDateTime(d, z.dt.time, z.zone, how)
}

func (z ZonedDateTime) ReplaceTime(t Time, how Disambiguate) (ZonedDateTime, error) {
	return NewZonedDateTime(z.dt.date, t, z.zone, how)
}

// ReplaceTimePreferringOffset is like ReplaceTime but reuses z's current
// offset when the new (date, t) pair is still a fold containing it,
// falling back to Compatible otherwise (spec.md §9's documented policy for
// "replace" operations that want to preserve an already-observed offset).
func (z ZonedDateTime) ReplaceTimePreferringOffset(t Time) (ZonedDateTime, error) {
	offset, d, tt, err := z.zone.ResolveLocalPreferred(z.dt.date, t, z.offset)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{dt: DateTime{date: d, time: tt}, zone: z.zone, offset: offset}, nil
}

// Round rounds the time-of-day to the nearest multiple of incrementNanos,
// carrying into the date and re-resolving against the zone using the
// preferred-offset policy (spec.md §4.8) if needed.
func (z ZonedDateTime) Round(incrementNanos int64, mode RoundMode) (ZonedDateTime, error) {
	t, carry := z.dt.time.Round(incrementNanos, mode)
	if carry == 0 {
		offset, d, tt, err := z.zone.ResolveLocalPreferred(z.dt.date, t, z.offset)
		if err != nil {
			return ZonedDateTime{}, err
		}
		return ZonedDateTime{dt: DateTime{date: d, time: tt}, zone: z.zone, offset: offset}, nil
	}
	d, err := z.dt.date.AddDays(DeltaDays(carry))
	if err != nil {
		return ZonedDateTime{}, err
	}
	offset, d2, t2, err := z.zone.ResolveLocalPreferred(d, t, z.offset)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{dt: DateTime{date: d2, time: t2}, zone: z.zone, offset: offset}, nil
}

// RoundDay rounds to the nearest midnight, accounting for the zone's day
// possibly being 23h, 24h or 25h long across a DST transition (spec.md
// §4.8). Both bounding midnights are resolved with Compatible, matching the
// spec's definition of floor/ceil for this operation.
func (z ZonedDateTime) RoundDay(mode RoundMode) (ZonedDateTime, error) {
	floorDate := z.dt.date
	floor, err := NewZonedDateTime(floorDate, Midnight, z.zone, Compatible)
	if err != nil {
		return ZonedDateTime{}, err
	}
	nextDate, err := floorDate.Tomorrow()
	if err != nil {
		return ZonedDateTime{}, err
	}
	ceil, err := NewZonedDateTime(nextDate, Midnight, z.zone, Compatible)
	if err != nil {
		return ZonedDateTime{}, err
	}
	nsSinceFloor := nanosOf(z.Instant().Diff(floor.Instant()))
	if nsSinceFloor == 0 {
		return floor, nil
	}
	dayNs := nanosOf(ceil.Instant().Diff(floor.Instant()))
	if nsSinceFloor >= roundDayThreshold(dayNs, mode) {
		return ceil, nil
	}
	return floor, nil
}

func (z ZonedDateTime) Compare(other ZonedDateTime) int {
	return z.Instant().Compare(other.Instant())
}

func (z ZonedDateTime) IsBefore(other ZonedDateTime) bool { return z.Compare(other) < 0 }
func (z ZonedDateTime) IsAfter(other ZonedDateTime) bool  { return z.Compare(other) > 0 }
func (z ZonedDateTime) Equal(other ZonedDateTime) bool    { return z.Compare(other) == 0 }

// ExactEqual additionally requires the same zone and stored offset.
func (z ZonedDateTime) ExactEqual(other ZonedDateTime) bool {
	return z.dt == other.dt && z.zone.name == other.zone.name && z.offset == other.offset
}

// AppendText renders as RFC 9557: an RFC 3339 timestamp with a bracketed
// IANA zone key, e.g. "2023-03-26T03:30:00+02:00[Europe/Amsterdam]".
func (z ZonedDateTime) AppendText(b []byte) ([]byte, error) {
	b = appendDate(b, z.dt.date)
	b = append(b, 'T')
	b = appendTime(b, z.dt.time)
	b = appendOffset(b, z.offset)
	b = append(b, '[')
	b = append(b, z.zone.name...)
	return append(b, ']'), nil
}

func (z ZonedDateTime) String() string { return stringImpl(z) }

func (z ZonedDateTime) MarshalText() ([]byte, error) { return marshalTextImpl(z) }

func (z *ZonedDateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseZonedDateTime(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}

func (z ZonedDateTime) MarshalJSON() ([]byte, error) { return marshalJSONImpl(z) }
func (z *ZonedDateTime) UnmarshalJSON(data []byte) error {
	return unmarshalJSONImpl(z, data)
}

// Scan only accepts the [iana-id]-suffixed text form: a ZonedDateTime cannot
// round-trip through a bare timestamp column, so SQL schemas using it must
// store the zoned string form (see DESIGN.md).
func (z *ZonedDateTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return newError(ReasonInvalidFormat, "cannot scan NULL into ZonedDateTime")
	case string:
		parsed, err := ParseZonedDateTime(v)
		if err != nil {
			return err
		}
		*z = parsed
		return nil
	case []byte:
		parsed, err := ParseZonedDateTime(string(v))
		if err != nil {
			return err
		}
		*z = parsed
		return nil
	default:
		return fmt.Errorf("chronia: cannot scan %T into ZonedDateTime", src)
	}
}

func (z ZonedDateTime) Value() (driver.Value, error) {
	return z.String(), nil
}

// ParseZonedDateTime parses the RFC 9557 form produced by AppendText:
// <iso-datetime>{Z|offset}[iana-id]. If the literal offset is Z, the
// timestamp is treated as a UTC instant and re-resolved into the named
// zone rather than interpreted as a local time. Otherwise the offset must
// be one the zone gives for that local (date, time): its single offset, or
// either candidate of a fold (selecting which of the two occurrences was
// meant) or of a gap; anything else raises InvalidOffset.
func ParseZonedDateTime(s string) (ZonedDateTime, error) {
	open := -1
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '[' {
			open = i
			break
		}
	}
	if open < 0 || s[len(s)-1] != ']' {
		return ZonedDateTime{}, parseFailedError("zoned datetime", s)
	}
	zoneName := s[open+1 : len(s)-1]
	body := s[:open]
	zone, err := LoadTimeZone(zoneName)
	if err != nil {
		return ZonedDateTime{}, err
	}
	if n := len(body); n > 0 && (body[n-1] == 'Z' || body[n-1] == 'z') {
		dt, err := ParseDateTime(body[:n-1])
		if err != nil {
			return ZonedDateTime{}, err
		}
		return ZonedDateTimeFromInstant(InstantFromDateTime(dt), zone)
	}
	odt, err := ParseOffsetDateTime(body)
	if err != nil {
		return ZonedDateTime{}, err
	}
	amb := zone.AmbiguityForLocal(odt.dt.date, odt.dt.time)
	var offset Offset
	switch amb.Kind {
	case Unambiguous:
		if odt.offset != amb.Offset {
			return ZonedDateTime{}, newError(ReasonInvalidOffset,
				"offset %s is not valid for %s %s in %s", odt.offset, odt.dt.date, odt.dt.time, zoneName)
		}
		offset = amb.Offset
	case Fold:
		switch odt.offset {
		case amb.Earlier:
			offset = amb.Earlier
		case amb.Later:
			offset = amb.Later
		default:
			return ZonedDateTime{}, newError(ReasonInvalidOffset,
				"offset %s is not valid for %s %s in %s", odt.offset, odt.dt.date, odt.dt.time, zoneName)
		}
	case Gap:
		switch odt.offset {
		case amb.Earlier:
			offset = amb.Earlier
		case amb.Later:
			offset = amb.Later
		default:
			return ZonedDateTime{}, newError(ReasonInvalidOffset,
				"offset %s is not valid for %s %s in %s", odt.offset, odt.dt.date, odt.dt.time, zoneName)
		}
	}
	return ZonedDateTime{dt: odt.dt, zone: zone, offset: offset}, nil
}
