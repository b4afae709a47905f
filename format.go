package chronia

import (
	"strconv"
	"time"
)

// This file holds the ISO 8601 / RFC 3339 / RFC 9557 / RFC 2822 text layer
// shared by every value type. Each type's AppendText/Parse just delegates
// here so the formatting rules (zero-padding, subsecond trimming in groups
// of three, offset rendering) stay in one place.

// rfc2822Layout matches Go's time.RFC1123Z, which renders the same
// "Mon, 02 Jan 2006 15:04:05 -0700" shape RFC 2822 specifies.
const rfc2822Layout = time.RFC1123Z

// formatRFC2822 renders (date, t, offset) using the standard library's own
// RFC 2822-compatible layout rather than hand-rolling weekday/month name
// tables.
func formatRFC2822(date Date, t Time, offset Offset) string {
	loc := time.FixedZone("", offset.Seconds())
	gt := time.Date(int(date.year), time.Month(date.month), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, loc)
	return gt.Format(rfc2822Layout)
}

// parseRFC2822 parses an RFC 2822 timestamp into its civil components plus
// offset.
func parseRFC2822(s string) (Date, Time, Offset, error) {
	gt, err := time.Parse(rfc2822Layout, s)
	if err != nil {
		return Date{}, Time{}, 0, wrapError(ReasonInvalidFormat, err, "invalid RFC 2822 timestamp %q", s)
	}
	year, err := NewYear(gt.Year())
	if err != nil {
		return Date{}, Time{}, 0, err
	}
	d, err := NewDate(year, Month(gt.Month()), gt.Day())
	if err != nil {
		return Date{}, Time{}, 0, err
	}
	t, err := NewTime(gt.Hour(), gt.Minute(), gt.Second(), gt.Nanosecond())
	if err != nil {
		return Date{}, Time{}, 0, err
	}
	_, offsetSecs := gt.Zone()
	offset, err := NewOffset(offsetSecs)
	if err != nil {
		return Date{}, Time{}, 0, err
	}
	return d, t, offset, nil
}

func appendPadded(b []byte, v int, width int) []byte {
	s := strconv.Itoa(v)
	for len(s) < width {
		b = append(b, '0')
		width--
	}
	return append(b, s...)
}

func appendDate(b []byte, d Date) []byte {
	b = appendPadded(b, int(d.year), 4)
	b = append(b, '-')
	b = appendPadded(b, int(d.month), 2)
	b = append(b, '-')
	b = appendPadded(b, int(d.day), 2)
	return b
}

// appendSubsec appends ".nnn", ".nnnnnn" or ".nnnnnnnnn" depending on the
// narrowest exact width, or nothing at all when ns is zero.
func appendSubsec(b []byte, ns SubSecNanos) []byte {
	switch {
	case ns == 0:
		return b
	case ns%1_000_000 == 0:
		b = append(b, '.')
		return appendPadded(b, int(ns)/1_000_000, 3)
	case ns%1_000 == 0:
		b = append(b, '.')
		return appendPadded(b, int(ns)/1_000, 6)
	default:
		b = append(b, '.')
		return appendPadded(b, int(ns), 9)
	}
}

func appendTime(b []byte, t Time) []byte {
	b = appendPadded(b, t.Hour(), 2)
	b = append(b, ':')
	b = appendPadded(b, t.Minute(), 2)
	b = append(b, ':')
	b = appendPadded(b, t.Second(), 2)
	return appendSubsec(b, t.Nanosecond())
}

func appendOffset(b []byte, o Offset) []byte {
	if o == OffsetZero {
		return append(b, 'Z')
	}
	secs := int(o)
	sign := byte('+')
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	b = append(b, sign)
	b = appendPadded(b, secs/3600, 2)
	b = append(b, ':')
	b = appendPadded(b, (secs/60)%60, 2)
	if secs%60 != 0 {
		b = append(b, ':')
		b = appendPadded(b, secs%60, 2)
	}
	return b
}

func digits(s string, start, n int) (int, bool) {
	if start+n > len(s) {
		return 0, false
	}
	v := 0
	for i := 0; i < n; i++ {
		c := s[start+i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}

// parseISODate auto-selects extended (YYYY-MM-DD) vs basic (YYYYMMDD) form.
func parseISODate(s string) (Date, error) {
	if len(s) == 10 && s[4] == '-' && s[7] == '-' {
		y, ok1 := digits(s, 0, 4)
		m, ok2 := digits(s, 5, 2)
		d, ok3 := digits(s, 8, 2)
		if !ok1 || !ok2 || !ok3 {
			return Date{}, parseFailedError("date", s)
		}
		year, err := NewYear(y)
		if err != nil {
			return Date{}, parseFailedError("date", s)
		}
		return NewDate(year, Month(m), d)
	}
	if len(s) == 8 {
		y, ok1 := digits(s, 0, 4)
		m, ok2 := digits(s, 4, 2)
		d, ok3 := digits(s, 6, 2)
		if !ok1 || !ok2 || !ok3 {
			return Date{}, parseFailedError("date", s)
		}
		year, err := NewYear(y)
		if err != nil {
			return Date{}, parseFailedError("date", s)
		}
		return NewDate(year, Month(m), d)
	}
	return Date{}, parseFailedError("date", s)
}

// parseSubsec parses an optional fractional-second suffix starting at
// s[pos], introduced by either '.' or ',' (ISO 8601 allows a comma in lieu
// of the decimal point). It returns the value normalized to nanoseconds and
// the number of bytes consumed (0 if there was no fractional part).
func parseSubsec(s string, pos int) (SubSecNanos, int, error) {
	if pos >= len(s) || (s[pos] != '.' && s[pos] != ',') {
		return 0, 0, nil
	}
	start := pos + 1
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, 0, parseFailedError("fractional seconds", s)
	}
	digitsStr := s[start:end]
	// Pad or truncate to 9 digits (nanosecond precision); this package never
	// carries precision finer than a nanosecond.
	for len(digitsStr) < 9 {
		digitsStr += "0"
	}
	digitsStr = digitsStr[:9]
	v, err := strconv.Atoi(digitsStr)
	if err != nil {
		return 0, 0, parseFailedError("fractional seconds", s)
	}
	return SubSecNanos(v), end - pos, nil
}

// parseISOTime auto-selects extended (HH:MM:SS) vs basic (HHMMSS) form by
// checking for a ':' at position 2, per spec.
func parseISOTime(s string) (Time, error) {
	if len(s) >= 3 && s[2] == ':' {
		return parseISOTimeExtended(s)
	}
	return parseISOTimeBasic(s)
}

// parseISOTimeExtended parses HH[:MM[:SS]][.fff], the colon-separated ISO
// form; minutes and seconds are each optional, mirroring parseISOTimeBasic's
// handling of its no-colon equivalent.
func parseISOTimeExtended(s string) (Time, error) {
	if len(s) < 2 {
		return Time{}, parseFailedError("time", s)
	}
	h, ok := digits(s, 0, 2)
	if !ok {
		return Time{}, parseFailedError("time", s)
	}
	mi, sec, pos := 0, 0, 2
	if len(s) >= 5 && s[2] == ':' {
		v, ok := digits(s, 3, 2)
		if !ok {
			return Time{}, parseFailedError("time", s)
		}
		mi, pos = v, 5
		if len(s) >= 8 && s[5] == ':' {
			v, ok := digits(s, 6, 2)
			if !ok {
				return Time{}, parseFailedError("time", s)
			}
			sec, pos = v, 8
		}
	}
	ns, consumed, err := parseSubsec(s, pos)
	if err != nil {
		return Time{}, err
	}
	if pos+consumed != len(s) {
		return Time{}, parseFailedError("time", s)
	}
	return newTimeFoldingLeapSecond(h, mi, sec, int(ns))
}

// parseISOTimeBasic parses HH[MM[SS]][.fff], the basic (no-colon) ISO form.
func parseISOTimeBasic(s string) (Time, error) {
	if len(s) < 2 {
		return Time{}, parseFailedError("time", s)
	}
	h, ok := digits(s, 0, 2)
	if !ok {
		return Time{}, parseFailedError("time", s)
	}
	mi, sec, pos := 0, 0, 2
	if len(s) >= 4 && s[2] >= '0' && s[2] <= '9' {
		v, ok := digits(s, 2, 2)
		if !ok {
			return Time{}, parseFailedError("time", s)
		}
		mi, pos = v, 4
		if len(s) >= 6 && s[4] >= '0' && s[4] <= '9' {
			v, ok := digits(s, 4, 2)
			if !ok {
				return Time{}, parseFailedError("time", s)
			}
			sec, pos = v, 6
		}
	}
	ns, consumed, err := parseSubsec(s, pos)
	if err != nil {
		return Time{}, err
	}
	if pos+consumed != len(s) {
		return Time{}, parseFailedError("time", s)
	}
	return newTimeFoldingLeapSecond(h, mi, sec, int(ns))
}

// newTimeFoldingLeapSecond is the one documented implicit coercion in this
// package: a parsed second of exactly 60 (a leap second) is accepted and
// folded to 59 with its subsecond part preserved; 61 and above still fail.
func newTimeFoldingLeapSecond(hour, minute, second, nanos int) (Time, error) {
	if second == 60 {
		second = 59
	}
	return NewTime(hour, minute, second, nanos)
}

// parseOffset parses "Z", "+HH:MM[:SS]" (extended) or "+HHMM[SS]" (basic)
// starting at s[pos], returning the offset and the number of bytes consumed.
func parseOffset(s string, pos int) (Offset, int, error) {
	if pos >= len(s) {
		return 0, 0, parseFailedError("offset", s)
	}
	if s[pos] == 'Z' || s[pos] == 'z' {
		return OffsetZero, 1, nil
	}
	sign := s[pos]
	if sign != '+' && sign != '-' {
		return 0, 0, parseFailedError("offset", s)
	}
	h, ok1 := digits(s, pos+1, 2)
	if !ok1 {
		return 0, 0, parseFailedError("offset", s)
	}
	extended := pos+3 < len(s) && s[pos+3] == ':'
	var m, sec, consumed int
	if extended {
		v, ok2 := digits(s, pos+4, 2)
		if !ok2 {
			return 0, 0, parseFailedError("offset", s)
		}
		m, consumed = v, 6
		if pos+6 < len(s) && s[pos+6] == ':' {
			v, ok3 := digits(s, pos+7, 2)
			if !ok3 {
				return 0, 0, parseFailedError("offset", s)
			}
			sec, consumed = v, 9
		}
	} else {
		// Basic form: +HHMM[SS], minutes mandatory, seconds optional.
		v, ok2 := digits(s, pos+3, 2)
		if !ok2 {
			return 0, 0, parseFailedError("offset", s)
		}
		m, consumed = v, 5
		if v3, ok3 := digits(s, pos+5, 2); ok3 {
			sec, consumed = v3, 7
		}
	}
	off, err := NewOffsetHMS(h, m, sec)
	if err != nil {
		return 0, 0, err
	}
	if sign == '-' {
		off = -off
	}
	return off, consumed, nil
}
