package chronia

// PartialUpdate is the typed replacement for the dynamic "replace(**fields)"
// pattern: the enumerated set of fields a caller may override on an
// OffsetDateTime/ZonedDateTime/SystemDateTime, each optional via a pointer.
// There is no "unknown field" failure mode to guard against here (unlike the
// keyword-argument form this replaces) since Go's type system already
// rejects anything outside this struct's fields at compile time.
type PartialUpdate struct {
	Year         *Year
	Month        *Month
	Day          *int
	Hour         *int
	Minute       *int
	Second       *int
	Nanosecond   *int
	Offset       *Offset
	TZ           *TimeZone
	Disambiguate *Disambiguate
	IgnoreDST    *bool
}

// applyTo overlays the set fields of pu onto (date, t), leaving every unset
// field as-is.
func (pu PartialUpdate) applyTo(date Date, t Time) (Date, Time, error) {
	year, month, day := date.Year(), date.Month(), date.Day()
	if pu.Year != nil {
		year = *pu.Year
	}
	if pu.Month != nil {
		month = *pu.Month
	}
	if pu.Day != nil {
		day = *pu.Day
	}
	newDate, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, Time{}, err
	}

	hour, minute, second, nanos := t.Hour(), t.Minute(), t.Second(), int(t.Nanosecond())
	if pu.Hour != nil {
		hour = *pu.Hour
	}
	if pu.Minute != nil {
		minute = *pu.Minute
	}
	if pu.Second != nil {
		second = *pu.Second
	}
	if pu.Nanosecond != nil {
		nanos = *pu.Nanosecond
	}
	newTime, err := NewTime(hour, minute, second, nanos)
	if err != nil {
		return Date{}, Time{}, err
	}
	return newDate, newTime, nil
}

func (pu PartialUpdate) disambiguateOr(fallback Disambiguate) Disambiguate {
	if pu.Disambiguate != nil {
		return *pu.Disambiguate
	}
	return fallback
}

// Replace rebuilds o with pu's overridden fields applied. An overridden
// Offset is taken as-is: unlike ZonedDateTime.Replace, a fixed-offset
// datetime has no zone to re-resolve against. Like it, this never raises
// ImplicitlyIgnoringDST — there is no implicit DST assumption in directly
// setting components.
func (o OffsetDateTime) Replace(pu PartialUpdate) (OffsetDateTime, error) {
	date, t, err := pu.applyTo(o.dt.date, o.dt.time)
	if err != nil {
		return OffsetDateTime{}, err
	}
	offset := o.offset
	if pu.Offset != nil {
		offset = *pu.Offset
	}
	return NewOffsetDateTime(date, t, offset), nil
}

// Replace rebuilds z with pu's overridden fields applied, re-resolving
// against (possibly a new) zone under pu's disambiguation policy, or
// Compatible if none was given.
func (z ZonedDateTime) Replace(pu PartialUpdate) (ZonedDateTime, error) {
	date, t, err := pu.applyTo(z.dt.date, z.dt.time)
	if err != nil {
		return ZonedDateTime{}, err
	}
	zone := z.zone
	if pu.TZ != nil {
		zone = *pu.TZ
	}
	return NewZonedDateTime(date, t, zone, pu.disambiguateOr(Compatible))
}

// Replace rebuilds s with pu's overridden fields applied, re-resolving
// against the host zone under pu's disambiguation policy, or Compatible if
// none was given. pu.TZ is not meaningful here (SystemDateTime always uses
// the resolver's zone) and is ignored.
func (s SystemDateTime) Replace(pu PartialUpdate) (SystemDateTime, error) {
	date, t, err := pu.applyTo(s.dt.date, s.dt.time)
	if err != nil {
		return SystemDateTime{}, err
	}
	return NewSystemDateTime(date, t, pu.disambiguateOr(Compatible), s.resolver)
}
