package chronia

import "strings"

// DateTimeDelta combines a calendar DateDelta with an exact-time TimeDelta,
// applied in that order (calendar shift first, then exact-time shift) by
// every operation that consumes one.
type DateTimeDelta struct {
	dateDelta DateDelta
	timeDelta TimeDelta
}

func NewDateTimeDelta(dateDelta DateDelta, timeDelta TimeDelta) DateTimeDelta {
	return DateTimeDelta{dateDelta: dateDelta, timeDelta: timeDelta}
}

func (d DateTimeDelta) DateDelta() DateDelta { return d.dateDelta }
func (d DateTimeDelta) TimeDelta() TimeDelta { return d.timeDelta }
func (d DateTimeDelta) IsZero() bool         { return d.dateDelta.IsZero() && d.timeDelta.IsZero() }

// Add combines d and other, requiring the combined (months, days, time-ns)
// not mix signs — a DateDelta and TimeDelta can each independently be
// single-signed and still produce a 3-way mixed-sign combination once added,
// which this checks post-combination rather than per-component.
func (d DateTimeDelta) Add(other DateTimeDelta) (DateTimeDelta, error) {
	dd, err := d.dateDelta.Add(other.dateDelta)
	if err != nil {
		return DateTimeDelta{}, err
	}
	td := d.timeDelta.Add(other.timeDelta)

	neg := dd.months < 0 || dd.days < 0 || td.seconds < 0 || (td.seconds == 0 && td.nanos < 0)
	pos := dd.months > 0 || dd.days > 0 || td.seconds > 0 || (td.seconds == 0 && td.nanos > 0)
	if neg && pos {
		return DateTimeDelta{}, newError(ReasonMixedSign, "datetime delta components must share a sign")
	}
	return DateTimeDelta{dateDelta: dd, timeDelta: td}, nil
}

// AppendText renders the combined delta with a single leading sign shared by
// both halves ("-P1Y2M3DT4H5M6.789S"), not the per-half-signed splice this
// used to produce: since the mixed-sign invariant guarantees dateDelta and
// timeDelta never disagree in sign, the overall sign is negated out once and
// both halves are rendered at their absolute magnitude.
func (d DateTimeDelta) AppendText(b []byte) ([]byte, error) {
	if d.dateDelta.IsZero() {
		return d.timeDelta.AppendText(b)
	}
	dd, td := d.dateDelta, d.timeDelta
	if dd.months < 0 || dd.days < 0 || td.seconds < 0 {
		b = append(b, '-')
		dd = dd.Negate()
		td = td.Negate()
	}
	b, err := dd.AppendText(b)
	if err != nil {
		return nil, err
	}
	if td.IsZero() {
		return b, nil
	}
	rest, err := td.AppendText(nil)
	if err != nil {
		return nil, err
	}
	// rest looks like "PT...": splice its "T..." tail onto the date part.
	return append(b, rest[1:]...), nil
}

func (d DateTimeDelta) String() string { return stringImpl(d) }

func (d DateTimeDelta) MarshalText() ([]byte, error) { return marshalTextImpl(d) }

func (d *DateTimeDelta) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTimeDelta(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDateTimeDelta parses a full ISO 8601 duration mixing date and time
// components, e.g. "P1Y2M3DT4H5M6S".
func ParseDateTimeDelta(s string) (DateTimeDelta, error) {
	orig := s
	sign := ""
	rest := s
	if strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, "+") {
		sign = rest[:1]
		rest = rest[1:]
	}
	if !strings.HasPrefix(rest, "P") {
		return DateTimeDelta{}, parseFailedError("datetime delta", orig)
	}
	rest = rest[1:]
	idx := strings.IndexByte(rest, 'T')
	datePart := rest
	timePart := ""
	if idx >= 0 {
		datePart = rest[:idx]
		timePart = rest[idx+1:]
	}
	if datePart == "" && timePart == "" {
		return DateTimeDelta{}, parseFailedError("datetime delta", orig)
	}
	var dd DateDelta
	var err error
	if datePart != "" {
		dd, err = ParseDateDelta(sign + "P" + datePart)
		if err != nil {
			return DateTimeDelta{}, err
		}
	}
	var td TimeDelta
	if timePart != "" {
		td, err = ParseTimeDelta(sign + "PT" + timePart)
		if err != nil {
			return DateTimeDelta{}, err
		}
	}
	return DateTimeDelta{dateDelta: dd, timeDelta: td}, nil
}
