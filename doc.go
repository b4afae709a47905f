// Package chronia provides an exact, DST-aware datetime model: a clean split
// between absolute instants, civil (offset-less) date/time values, and the
// two ways of attaching a timezone to them (a fixed numeric offset, or a full
// IANA zone with its own DST rules).
//
// Four families of types are provided:
//
//   - Date, Time, DateTime: civil values with no attached offset or zone.
//   - Instant: an absolute point on the UTC timeline.
//   - OffsetDateTime, ZonedDateTime, SystemDateTime: civil values paired with
//     enough information to recover an Instant losslessly.
//   - TimeDelta, DateDelta, DateTimeDelta: exact-time and calendar durations.
//
// # Quick start
//
//	d := chronia.MustNewDate(2024, chronia.March, 15)
//	t := chronia.MustNewTime(14, 30, 45, 0)
//	dt := d.AtTime(t)
//
//	tz, err := chronia.LoadTimeZone("Europe/Amsterdam")
//	zdt, err := chronia.NewZonedDateTime(d, t, tz, chronia.Compatible)
//	inst := zdt.Instant()
//
// # Ambiguity
//
// Attaching an IANA zone to a civil (date, time) is not always a 1:1 mapping:
// clocks skipping forward at the start of DST produce a Gap (a wall-clock
// value that never occurs), and clocks falling back at the end of DST produce
// a Fold (a wall-clock value that occurs twice). Every constructor that
// crosses this boundary takes a Disambiguate policy describing how to resolve
// it; ZonedDateTime additionally validates that its stored offset remains one
// of the offsets the zone actually yields for its stored (date, time), so
// reconstructing its Instant is always lossless.
//
// # Construction
//
// Like the rest of this family of libraries, construction is via checked
// factories returning (T, error); a Must-prefixed sibling panics instead, for
// tests and package-level constants.
//
// # Serialization
//
// The date and time types (Date, Time, DateTime, Instant, OffsetDateTime,
// ZonedDateTime, SystemDateTime, YearMonth, MonthDay) implement
// encoding.TextAppender (and therefore String, MarshalText/UnmarshalText,
// MarshalJSON/UnmarshalJSON) plus database/sql.Scanner and
// database/sql/driver.Valuer, so they can be used directly as struct fields
// persisted through database/sql. The duration types TimeDelta, DateDelta and
// DateTimeDelta implement AppendText, String and MarshalText/UnmarshalText
// only. Most types also
// implement encoding.BinaryMarshaler/BinaryUnmarshaler with a fixed-width
// little-endian layout, for callers that want something more compact than
// text.
package chronia
