package chronia

import (
	"database/sql/driver"
	"fmt"
	"math"
	"time"
)

// Instant is an absolute point on the UTC timeline, independent of any
// calendar or time zone.
type Instant struct {
	epoch EpochSecs
	nanos SubSecNanos
}

// InstantFromDateTime builds the Instant corresponding to dt interpreted as UTC.
func InstantFromDateTime(dt DateTime) Instant {
	return Instant{epoch: dt.EpochSecsAsUTC(), nanos: dt.time.nanos}
}

// ToDateTime returns the UTC civil (date, time) for this instant.
func (i Instant) ToDateTime() DateTime {
	day := floorDiv(int64(i.epoch), secondsPerDay)
	sod := int64(i.epoch) - day*secondsPerDay
	d := dateFromEpochDay(day)
	t := Time{secondOfDay: SecondOfDay(sod), nanos: i.nanos}
	return DateTime{date: d, time: t}
}

// Now returns the current instant read from time.Now, keeping its
// nanosecond precision.
func Now() Instant {
	return FromGoTime(time.Now())
}

// FromGoTime converts a standard library time.Time (any location) to an
// Instant.
func FromGoTime(t time.Time) Instant {
	u := t.UTC()
	epochDay := daysFromCivil(int64(u.Year()), int(u.Month()), u.Day()) + epochDayShift
	sod := u.Hour()*3600 + u.Minute()*60 + u.Second()
	return Instant{epoch: EpochSecs(epochDay*secondsPerDay + int64(sod)), nanos: SubSecNanos(u.Nanosecond())}
}

// ToGoTime converts to a standard library time.Time in UTC.
func (i Instant) ToGoTime() time.Time {
	dt := i.ToDateTime()
	return time.Date(int(dt.date.year), time.Month(dt.date.month), dt.date.Day(),
		dt.time.Hour(), dt.time.Minute(), dt.time.Second(), int(dt.time.nanos), time.UTC)
}

// FromUnixTimestamp builds an Instant from a Unix timestamp in whole seconds.
func FromUnixTimestamp(seconds int64) (Instant, error) {
	return fromUnixNanos(seconds, 0)
}

// FromUnixTimestampMillis builds an Instant from a Unix timestamp in
// milliseconds.
func FromUnixTimestampMillis(millis int64) (Instant, error) {
	return fromUnixNanos(floorDiv(millis, 1000), int(floorMod(millis, 1000))*1_000_000)
}

// FromUnixTimestampF64 builds an Instant from a fractional Unix timestamp in
// seconds, as commonly produced by other languages' time.time()-style APIs.
func FromUnixTimestampF64(seconds float64) (Instant, error) {
	whole := math.Floor(seconds)
	frac := seconds - whole
	nanos := int(math.Round(frac * 1e9))
	if nanos == 1_000_000_000 {
		whole++
		nanos = 0
	}
	return fromUnixNanos(int64(whole), nanos)
}

func fromUnixNanos(seconds int64, nanos int) (Instant, error) {
	const unixEpochOurEpochSecs = int64(epochDayShift) * 86400
	epoch := EpochSecs(seconds + unixEpochOurEpochSecs)
	if !epoch.inRange() {
		return Instant{}, outOfRangeError("instant", seconds)
	}
	ns, err := NewSubSecNanos(nanos)
	if err != nil {
		return Instant{}, err
	}
	return Instant{epoch: epoch, nanos: ns}, nil
}

// UnixTimestamp returns the instant as whole Unix seconds (truncating any
// sub-second part).
func (i Instant) UnixTimestamp() int64 {
	const unixEpochOurEpochSecs = int64(epochDayShift) * 86400
	return int64(i.epoch) - unixEpochOurEpochSecs
}

func (i Instant) UnixTimestampMillis() int64 {
	return i.UnixTimestamp()*1000 + int64(i.nanos)/1_000_000
}

func (i Instant) UnixTimestampF64() float64 {
	return float64(i.UnixTimestamp()) + float64(i.nanos)/1e9
}

// Shift adds a signed number of nanoseconds to the instant.
func (i Instant) Shift(deltaNanos int64) (Instant, error) {
	totalNanos := int64(i.nanos) + deltaNanos
	secCarry := floorDiv(totalNanos, 1_000_000_000)
	epoch := EpochSecs(int64(i.epoch) + secCarry)
	if !epoch.inRange() {
		return Instant{}, outOfRangeError("instant", int64(epoch))
	}
	return Instant{epoch: epoch, nanos: SubSecNanos(totalNanos - secCarry*1_000_000_000)}, nil
}

// Diff returns the exact-time delta other must be shifted by to reach i.
func (i Instant) Diff(other Instant) TimeDelta {
	secs := int64(i.epoch) - int64(other.epoch)
	nanos := int64(i.nanos) - int64(other.nanos)
	return normalizeTimeDelta(secs, nanos)
}

// HashKey returns a representation suitable for use as a map key or hash
// input, shared across every type that can losslessly recover an Instant
// (OffsetDateTime, ZonedDateTime, SystemDateTime all delegate to this).
func (i Instant) HashKey() (int64, uint32) {
	return int64(i.epoch), uint32(i.nanos)
}

// MapKey is an alias for HashKey, named to match the other datetime kinds'
// MapKey methods (all of which forward here through Instant()).
func (i Instant) MapKey() (int64, uint32) { return i.HashKey() }

func (i Instant) Compare(other Instant) int {
	return doCompare(i, other,
		comparing(func(x Instant) int64 { return int64(x.epoch) }),
		comparing(func(x Instant) int32 { return int32(x.nanos) }),
	)
}

func (i Instant) IsBefore(other Instant) bool { return i.Compare(other) < 0 }
func (i Instant) IsAfter(other Instant) bool  { return i.Compare(other) > 0 }
func (i Instant) Equal(other Instant) bool    { return i == other }

// AppendText renders the instant in UTC, RFC 3339 form with a trailing "Z".
func (i Instant) AppendText(b []byte) ([]byte, error) {
	dt := i.ToDateTime()
	b = appendDate(b, dt.date)
	b = append(b, 'T')
	b = appendTime(b, dt.time)
	return append(b, 'Z'), nil
}

func (i Instant) String() string { return stringImpl(i) }

func (i Instant) MarshalText() ([]byte, error) { return marshalTextImpl(i) }

func (i *Instant) UnmarshalText(text []byte) error {
	parsed, err := ParseInstant(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

func (i Instant) MarshalJSON() ([]byte, error) { return marshalJSONImpl(i) }
func (i *Instant) UnmarshalJSON(data []byte) error {
	return unmarshalJSONImpl(i, data)
}

func (i *Instant) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return newError(ReasonInvalidFormat, "cannot scan NULL into Instant")
	case string:
		parsed, err := ParseInstant(v)
		if err != nil {
			return err
		}
		*i = parsed
		return nil
	case []byte:
		parsed, err := ParseInstant(string(v))
		if err != nil {
			return err
		}
		*i = parsed
		return nil
	case time.Time:
		*i = FromGoTime(v)
		return nil
	default:
		return fmt.Errorf("chronia: cannot scan %T into Instant", src)
	}
}

func (i Instant) Value() (driver.Value, error) {
	return i.String(), nil
}

// AppendRFC2822Text renders i as an RFC 2822 timestamp with the "+0000"
// zero-offset literal, since an Instant carries no zone of its own.
func (i Instant) AppendRFC2822Text(b []byte) ([]byte, error) {
	dt := i.ToDateTime()
	return append(b, formatRFC2822(dt.date, dt.time, OffsetZero)...), nil
}

// ParseInstantRFC2822 parses an RFC 2822 timestamp, requiring its offset to
// be the zero-offset literal ("-0000" or "+0000") since an Instant has no
// way to represent a non-UTC rendering.
func ParseInstantRFC2822(s string) (Instant, error) {
	d, t, offset, err := parseRFC2822(s)
	if err != nil {
		return Instant{}, err
	}
	if offset != OffsetZero {
		return Instant{}, newError(ReasonInvalidFormat,
			"RFC 2822 instant %q must use a zero UTC offset literal", s)
	}
	return InstantFromDateTime(DateTime{date: d, time: t}), nil
}

// ParseInstant parses an RFC 3339 UTC timestamp ending in "Z".
func ParseInstant(s string) (Instant, error) {
	if len(s) < 20 || (s[len(s)-1] != 'Z' && s[len(s)-1] != 'z') {
		return Instant{}, parseFailedError("instant", s)
	}
	dt, err := ParseDateTime(s[:len(s)-1])
	if err != nil {
		return Instant{}, err
	}
	return InstantFromDateTime(dt), nil
}
