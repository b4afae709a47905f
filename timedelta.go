package chronia

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// TimeDelta is an exact-time duration, stored as whole seconds plus a
// nanosecond remainder normalized to 0..999_999_999, so a negative delta
// has negative seconds and a non-negative remainder.
type TimeDelta struct {
	seconds int64
	nanos   int32
}

// NewTimeDelta builds a TimeDelta from signed component magnitudes; all
// non-zero components must share a sign.
func NewTimeDelta(hours, minutes, seconds int64, nanos int64) (TimeDelta, error) {
	total := hours*3600 + minutes*60 + seconds
	neg := total < 0 || nanos < 0
	pos := total > 0 || nanos > 0
	if neg && pos {
		return TimeDelta{}, newError(ReasonMixedSign, "time delta components must share a sign")
	}
	return normalizeTimeDelta(total, nanos), nil
}

func normalizeTimeDelta(seconds, nanos int64) TimeDelta {
	extraSec := floorDiv(nanos, 1_000_000_000)
	seconds += extraSec
	nanos -= extraSec * 1_000_000_000
	return TimeDelta{seconds: seconds, nanos: int32(nanos)}
}

// TimeDeltaFromNanos builds a TimeDelta out of a single total-nanoseconds
// count.
func TimeDeltaFromNanos(totalNanos int64) TimeDelta {
	return normalizeTimeDelta(0, totalNanos)
}

func (d TimeDelta) TotalNanoseconds() (seconds int64, nanos int32) { return d.seconds, d.nanos }

func (d TimeDelta) IsZero() bool { return d.seconds == 0 && d.nanos == 0 }

func (d TimeDelta) Add(other TimeDelta) TimeDelta {
	return normalizeTimeDelta(d.seconds+other.seconds, int64(d.nanos)+int64(other.nanos))
}

func (d TimeDelta) Negate() TimeDelta {
	return normalizeTimeDelta(-d.seconds, -int64(d.nanos))
}

// MulInt multiplies by a whole number, erroring on overflow of the total
// nanosecond count.
func (d TimeDelta) MulInt(n int64) (TimeDelta, error) {
	total := nanosOf(d)
	hi, lo := bits.Mul64(uint64(absInt64(total)), uint64(absInt64(n)))
	if hi != 0 || lo > uint64(math.MaxInt64) {
		return TimeDelta{}, outOfRangeError("time delta", n)
	}
	result := int64(lo)
	if (total < 0) != (n < 0) {
		result = -result
	}
	return normalizeTimeDelta(0, result), nil
}

// MulFloat multiplies by a floating-point factor, rounding the resulting
// total nanoseconds to the nearest whole nanosecond.
func (d TimeDelta) MulFloat(f float64) (TimeDelta, error) {
	total := float64(nanosOf(d)) * f
	if math.IsNaN(total) || math.IsInf(total, 0) || total > math.MaxInt64 || total < math.MinInt64 {
		return TimeDelta{}, outOfRangeError("time delta", int64(total))
	}
	return normalizeTimeDelta(0, int64(math.Round(total))), nil
}

// DivInt divides the total nanosecond count by n, rounding to the nearest
// nanosecond (ties away from zero).
func (d TimeDelta) DivInt(n int64) (TimeDelta, error) {
	if n == 0 {
		return TimeDelta{}, newError(ReasonInvalidFormat, "division by zero time delta divisor")
	}
	total := nanosOf(d)
	q := total / n
	r := total % n
	if r != 0 && 2*absInt64(r) >= absInt64(n) {
		if (total < 0) != (n < 0) {
			q--
		} else {
			q++
		}
	}
	return normalizeTimeDelta(0, q), nil
}

// DivFloat divides the total nanosecond count by f, rounding to the nearest
// nanosecond.
func (d TimeDelta) DivFloat(f float64) (TimeDelta, error) {
	if f == 0 {
		return TimeDelta{}, newError(ReasonInvalidFormat, "division by zero time delta divisor")
	}
	return d.MulFloat(1 / f)
}

// DivDelta returns the ratio of the two durations' total nanoseconds as a
// float.
func (d TimeDelta) DivDelta(other TimeDelta) float64 {
	return float64(nanosOf(d)) / float64(nanosOf(other))
}

func (d TimeDelta) Compare(other TimeDelta) int {
	return doCompare(d, other,
		comparing(func(x TimeDelta) int64 { return x.seconds }),
		comparing(func(x TimeDelta) int32 { return x.nanos }),
	)
}

// AppendText renders the delta as an ISO 8601 time-only duration with a
// single leading sign and abs-valued components, e.g. "PT1H2M3.500S" or
// "-PT1H2M3.500S" — never per-component signs ("PT-1H-2M-3.5S"), which isn't
// what ParseTimeDelta (or any other ISO 8601 duration reader) expects back.
func (d TimeDelta) AppendText(b []byte) ([]byte, error) {
	if d.IsZero() {
		return append(b, 'P', 'T', '0', 'S'), nil
	}
	// d.nanos is always normalized non-negative, so the sign of the whole
	// delta is exactly the sign of d.seconds.
	neg := d.seconds < 0
	secs, nanos := d.seconds, int64(d.nanos)
	if neg {
		b = append(b, '-')
		if nanos != 0 {
			secs++
			nanos = 1_000_000_000 - nanos
		}
		secs = -secs
	}
	hours := secs / 3600
	secs -= hours * 3600
	minutes := secs / 60
	secs -= minutes * 60

	b = append(b, 'P', 'T')
	if hours != 0 {
		b = strconv.AppendInt(b, hours, 10)
		b = append(b, 'H')
	}
	if minutes != 0 {
		b = strconv.AppendInt(b, minutes, 10)
		b = append(b, 'M')
	}
	if secs != 0 || nanos != 0 || (hours == 0 && minutes == 0) {
		b = strconv.AppendInt(b, secs, 10)
		b = appendSubsec(b, SubSecNanos(nanos))
		b = append(b, 'S')
	}
	return b, nil
}

func (d TimeDelta) String() string { return stringImpl(d) }

func (d TimeDelta) MarshalText() ([]byte, error) { return marshalTextImpl(d) }

func (d *TimeDelta) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeDelta(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseTimeDelta parses an ISO 8601 duration containing only time
// components: PT[n]H[n]M[n.n]S (sign allowed before P, and before each
// component's digits).
func ParseTimeDelta(s string) (TimeDelta, error) {
	orig := s
	outerNeg := false
	if strings.HasPrefix(s, "-") {
		outerNeg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if !strings.HasPrefix(s, "PT") {
		return TimeDelta{}, parseFailedError("time delta", orig)
	}
	s = s[2:]
	if len(s) == 0 {
		return TimeDelta{}, parseFailedError("time delta", orig)
	}
	var totalSeconds int64
	var totalNanos int64
	for len(s) > 0 {
		neg := false
		if strings.HasPrefix(s, "-") {
			neg = true
			s = s[1:]
		}
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == 0 {
			return TimeDelta{}, parseFailedError("time delta", orig)
		}
		whole, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return TimeDelta{}, parseFailedError("time delta", orig)
		}
		s = s[i:]
		var frac SubSecNanos
		if strings.HasPrefix(s, ".") {
			ns, consumed, err := parseSubsec(s, 0)
			if err != nil {
				return TimeDelta{}, err
			}
			frac = ns
			s = s[consumed:]
		}
		if len(s) == 0 {
			return TimeDelta{}, parseFailedError("time delta", orig)
		}
		unit := s[0]
		s = s[1:]
		var seconds int64
		switch unit {
		case 'H':
			seconds = whole * 3600
		case 'M':
			seconds = whole * 60
		case 'S':
			seconds = whole
		default:
			return TimeDelta{}, parseFailedError("time delta", orig)
		}
		if neg {
			seconds, frac = -seconds, -frac
		}
		totalSeconds += seconds
		totalNanos += int64(frac)
	}
	if outerNeg {
		totalSeconds, totalNanos = -totalSeconds, -totalNanos
	}
	return normalizeTimeDelta(totalSeconds, totalNanos), nil
}
