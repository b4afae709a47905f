package chronia

import (
	"cmp"
	"encoding"
)

// floorDiv and floorMod implement Euclidean division: the remainder always
// has the same sign as the divisor, which is what calendar month-index and
// nanosecond-of-day math needs (Go's native / and % truncate toward zero).
func floorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

func floorMod(x, y int64) int64 {
	return x - floorDiv(x, y)*y
}

func sign(x int64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// comparing lifts a field accessor into a two-argument comparator, so
// multi-field Compare implementations read as an ordered list of tiebreakers.
func comparing[E any, T cmp.Ordered](f func(E) T) func(E, E) int {
	return func(a, b E) int {
		return cmp.Compare(f(a), f(b))
	}
}

func doCompare[E any](a, b E, cmps ...func(E, E) int) int {
	for _, c := range cmps {
		if r := c(a, b); r != 0 {
			return r
		}
	}
	return 0
}

// The following generic helpers derive String/MarshalText/MarshalJSON from a
// single AppendText implementation, and UnmarshalJSON from UnmarshalText —
// the same layering the teacher package uses throughout.

func stringImpl[T encoding.TextAppender](v T) string {
	b, err := v.AppendText(nil)
	if err != nil {
		return "<invalid " + typeNameOf(v) + ">"
	}
	return string(b)
}

func marshalTextImpl[T encoding.TextAppender](v T) ([]byte, error) {
	return v.AppendText(nil)
}

func marshalJSONImpl[T encoding.TextAppender](v T) ([]byte, error) {
	b, err := v.AppendText([]byte{'"'})
	if err != nil {
		return nil, err
	}
	return append(b, '"'), nil
}

func unmarshalJSONImpl[T encoding.TextUnmarshaler](v T, data []byte) error {
	if len(data) == 4 && string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return parseFailedError("JSON value", string(data))
	}
	return v.UnmarshalText(data[1 : len(data)-1])
}

func typeNameOf(v any) string {
	switch v.(type) {
	case Date:
		return "Date"
	case Time:
		return "Time"
	case DateTime:
		return "DateTime"
	case Instant:
		return "Instant"
	case Offset:
		return "Offset"
	default:
		return "value"
	}
}
