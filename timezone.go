package chronia

import "time"

// TimeZone is a cheap, shareable handle onto an IANA time zone. Unlike a raw
// *time.Location it also knows how to classify a civil (date, time) as
// unambiguous, folded (occurs twice) or gapped (never occurs) against its
// transition history.
type TimeZone struct {
	name string
	loc  *time.Location
}

// LoadTimeZone looks up an IANA zone by name (e.g. "Europe/Amsterdam"),
// using the host's tzdata the same way time.LoadLocation does.
func LoadTimeZone(name string) (TimeZone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return TimeZone{}, wrapError(ReasonTzNotFound, err, "time zone %q not found", name)
	}
	return TimeZone{name: name, loc: loc}, nil
}

// UTC is the fixed UTC zone.
var UTC = TimeZone{name: "UTC", loc: time.UTC}

func (z TimeZone) String() string { return z.name }

func (z TimeZone) offsetAt(absUnix int64) Offset {
	_, offset := time.Unix(absUnix, 0).In(z.loc).Zone()
	return Offset(offset)
}

// transitionSearchWindow bounds how far from the naive local instant this
// package will look for a DST transition. IANA zones never change offset by
// more than a day in one jump and real-world transitions are hours apart at
// most, so a 48h window comfortably contains at most one transition; a zone
// with back-to-back transitions closer together than that is not handled.
const transitionSearchWindow = 48 * 3600

// AmbiguityForLocal classifies how z resolves the civil (date, time) (date, t).
func (z TimeZone) AmbiguityForLocal(date Date, t Time) Ambiguity {
	naiveLocal := (date.epochDay()-epochDayShift)*secondsPerDay + int64(t.SecondOfDay())

	oBefore := z.offsetAt(naiveLocal - transitionSearchWindow)
	oAfter := z.offsetAt(naiveLocal + transitionSearchWindow)

	if oBefore == oAfter {
		return Ambiguity{Kind: Unambiguous, Offset: oBefore}
	}

	lo := naiveLocal - transitionSearchWindow
	hi := naiveLocal + transitionSearchWindow
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if z.offsetAt(mid) == oBefore {
			lo = mid
		} else {
			hi = mid
		}
	}
	transition := hi
	earlier := z.offsetAt(transition - 1)
	later := z.offsetAt(transition)

	gapLow := transition + int64(min32(earlier, later))
	gapHigh := transition + int64(max32(earlier, later))

	if naiveLocal < gapLow {
		return Ambiguity{Kind: Unambiguous, Offset: earlier}
	}
	if naiveLocal >= gapHigh {
		return Ambiguity{Kind: Unambiguous, Offset: later}
	}
	if later > earlier {
		return Ambiguity{Kind: Gap, Earlier: earlier, Later: later}
	}
	return Ambiguity{Kind: Fold, Earlier: earlier, Later: later}
}

func min32(a, b Offset) Offset {
	if a < b {
		return a
	}
	return b
}

func max32(a, b Offset) Offset {
	if a > b {
		return a
	}
	return b
}

// ResolveLocal resolves the civil (date, time) against z according to how
// how picks an offset for an ambiguous result.
func (z TimeZone) ResolveLocal(date Date, t Time, how Disambiguate) (Offset, Date, Time, error) {
	amb := z.AmbiguityForLocal(date, t)
	switch amb.Kind {
	case Unambiguous:
		return amb.Offset, date, t, nil
	case Fold:
		switch how {
		case Raise:
			return 0, Date{}, Time{}, newError(ReasonRepeatedTime,
				"%s %s is ambiguous in %s (occurs twice)", date, t, z.name)
		case Later:
			return amb.Later, date, t, nil
		default: // Compatible, Earlier
			return amb.Earlier, date, t, nil
		}
	case Gap:
		switch how {
		case Raise:
			return 0, Date{}, Time{}, newError(ReasonSkippedTime,
				"%s %s does not exist in %s (clocks skip forward)", date, t, z.name)
		case Earlier:
			shift := int64(amb.Earlier) - int64(amb.Later)
			dt, err := DateTime{date: date, time: t}.Shift(NewDateTimeDelta(DateDelta{}, TimeDeltaFromNanos(shift*1_000_000_000)))
			if err != nil {
				return 0, Date{}, Time{}, err
			}
			return amb.Earlier, dt.date, dt.time, nil
		default: // Compatible, Later: shift forward by the gap length
			gapLen := int64(amb.Later) - int64(amb.Earlier)
			dt, err := DateTime{date: date, time: t}.Shift(NewDateTimeDelta(DateDelta{}, TimeDeltaFromNanos(gapLen*1_000_000_000)))
			if err != nil {
				return 0, Date{}, Time{}, err
			}
			return amb.Later, dt.date, dt.time, nil
		}
	}
	return amb.Offset, date, t, nil
}

// ResolveLocalPreferred resolves (date, t) against z, reusing preferred when
// the classification is a Fold and preferred is one of its two candidate
// offsets. In every other case (Unambiguous, Gap, or a Fold where preferred
// doesn't apply) it falls back to Compatible. This is the policy used by
// "replace" operations and by preferred-offset rounding, which want to keep
// an already-observed offset across a mutation rather than always defaulting
// to the earlier side of a fold (see DESIGN.md's Open Question decision).
func (z TimeZone) ResolveLocalPreferred(date Date, t Time, preferred Offset) (Offset, Date, Time, error) {
	amb := z.AmbiguityForLocal(date, t)
	if amb.Kind == Fold && (preferred == amb.Earlier || preferred == amb.Later) {
		return preferred, date, t, nil
	}
	return z.ResolveLocal(date, t, Compatible)
}
