package chronia

import (
	"strconv"
	"strings"
)

// DateDelta is a calendar-only duration expressed as months and days; it has
// no fixed length in absolute time (a month is whatever length the months it
// spans over happen to be).
type DateDelta struct {
	months DeltaMonths
	days   DeltaDays
}

// NewDateDelta builds a DateDelta, requiring months and days to share a sign
// (or be zero) so "the delta is negative" is unambiguous.
func NewDateDelta(years, months, days int) (DateDelta, error) {
	totalMonths := int64(years)*12 + int64(months)
	neg := totalMonths < 0 || days < 0
	pos := totalMonths > 0 || days > 0
	if neg && pos {
		return DateDelta{}, newError(ReasonMixedSign, "date delta components must share a sign")
	}
	return DateDelta{months: DeltaMonths(totalMonths), days: DeltaDays(days)}, nil
}

func (d DateDelta) Months() DeltaMonths { return d.months }
func (d DateDelta) Days() DeltaDays     { return d.days }
func (d DateDelta) IsZero() bool        { return d.months == 0 && d.days == 0 }

func (d DateDelta) Add(other DateDelta) (DateDelta, error) {
	return NewDateDelta(0, int(d.months)+int(other.months), int(d.days)+int(other.days))
}

func (d DateDelta) Negate() DateDelta {
	return DateDelta{months: -d.months, days: -d.days}
}

func (d DateDelta) Sub(other DateDelta) (DateDelta, error) {
	return d.Add(other.Negate())
}

// AppendText renders the delta as an ISO 8601 duration, e.g. "P1Y2M3D" or,
// for a negative delta, a single leading sign with absolute-valued
// components ("-P1Y2M3D") — the canonical single-sign form ParseDateDelta
// expects back, not a per-component sign.
func (d DateDelta) AppendText(b []byte) ([]byte, error) {
	if d.IsZero() {
		return append(b, 'P', '0', 'D'), nil
	}
	neg := d.months < 0 || d.days < 0
	months, days := int64(d.months), int64(d.days)
	if neg {
		b = append(b, '-')
		months, days = -months, -days
	}
	years := months / 12
	months %= 12
	b = append(b, 'P')
	if years != 0 {
		b = strconv.AppendInt(b, years, 10)
		b = append(b, 'Y')
	}
	if months != 0 {
		b = strconv.AppendInt(b, months, 10)
		b = append(b, 'M')
	}
	if days != 0 {
		b = strconv.AppendInt(b, days, 10)
		b = append(b, 'D')
	}
	return b, nil
}

func (d DateDelta) String() string { return stringImpl(d) }

func (d DateDelta) MarshalText() ([]byte, error) { return marshalTextImpl(d) }

func (d *DateDelta) UnmarshalText(text []byte) error {
	parsed, err := ParseDateDelta(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDateDelta parses an ISO 8601 duration containing only date
// components: P[n]Y[n]M[n]D (any subset, sign allowed before P).
func ParseDateDelta(s string) (DateDelta, error) {
	orig := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if !strings.HasPrefix(s, "P") || strings.Contains(s, "T") {
		return DateDelta{}, parseFailedError("date delta", orig)
	}
	s = s[1:]
	if len(s) == 0 {
		return DateDelta{}, parseFailedError("date delta", orig)
	}
	var years, months, days int64
	for len(s) > 0 {
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == 0 || i == len(s) {
			return DateDelta{}, parseFailedError("date delta", orig)
		}
		n, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return DateDelta{}, parseFailedError("date delta", orig)
		}
		switch s[i] {
		case 'Y':
			years = n
		case 'M':
			months = n
		case 'D':
			days = n
		case 'W':
			days = n * 7
		default:
			return DateDelta{}, parseFailedError("date delta", orig)
		}
		s = s[i+1:]
	}
	if neg {
		years, months, days = -years, -months, -days
	}
	return NewDateDelta(int(years), int(months), int(days))
}
