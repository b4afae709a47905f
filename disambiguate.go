package chronia

// Disambiguate selects how a fold (repeated local time) or gap (skipped
// local time) is resolved when attaching a zone to a civil (date, time).
type Disambiguate int8

const (
	// Compatible mimics the behavior most runtimes default to: the earlier
	// offset on a fold, the offset that would apply after shifting forward
	// by the gap's length on a gap.
	Compatible Disambiguate = iota
	Earlier
	Later
	// Raise rejects any ambiguous local time instead of picking one.
	Raise
)

// AmbiguityKind classifies a local (date, time) against a zone's transitions.
type AmbiguityKind int8

const (
	Unambiguous AmbiguityKind = iota
	Fold
	Gap
)

// Ambiguity describes how a zone resolves a particular local (date, time).
// For Fold and Gap it carries the two candidate offsets in the order
// (earlier in UTC terms, later in UTC terms) — which is NOT necessarily
// numerically-ascending order.
type Ambiguity struct {
	Kind    AmbiguityKind
	Offset  Offset // valid only when Kind == Unambiguous
	Earlier Offset // offset in effect before the transition
	Later   Offset // offset in effect after the transition
}
