package chronia

import "time"

// SystemResolver resolves a civil (date, time) against the host's local time
// zone, exactly like TimeZone.ResolveLocal but backed by time.Local instead
// of a named IANA zone. It is an interface so tests can substitute a fixed
// zone instead of depending on the machine running the suite.
type SystemResolver interface {
	ResolveLocal(date Date, t Time, how Disambiguate) (Offset, Date, Time, error)
	ResolveLocalPreferred(date Date, t Time, preferred Offset) (Offset, Date, Time, error)
	OffsetForInstant(inst Instant) Offset
}

// localSystemResolver is the default SystemResolver, backed by time.Local.
type localSystemResolver struct{}

// DefaultSystemResolver resolves against the host's configured local zone.
var DefaultSystemResolver SystemResolver = localSystemResolver{}

func (localSystemResolver) ResolveLocal(date Date, t Time, how Disambiguate) (Offset, Date, Time, error) {
	return systemZone().ResolveLocal(date, t, how)
}

func (localSystemResolver) ResolveLocalPreferred(date Date, t Time, preferred Offset) (Offset, Date, Time, error) {
	return systemZone().ResolveLocalPreferred(date, t, preferred)
}

func (localSystemResolver) OffsetForInstant(inst Instant) Offset {
	return systemZone().offsetAt(inst.UnixTimestamp())
}

func systemZone() TimeZone {
	return TimeZone{name: "Local", loc: time.Local}
}
