package chronia

import "database/sql/driver"

// MonthDay identifies a day-of-month without a year, e.g. a recurring
// anniversary. February 29 is accepted; it only resolves to an actual Date
// in a leap year (AtYear reports an error for non-leap years).
type MonthDay struct {
	month Month
	day   int8
}

func NewMonthDay(month Month, day int) (MonthDay, error) {
	if !isValidMonth(int(month)) {
		return MonthDay{}, outOfRangeError("month", int64(month))
	}
	if day < 1 || day > month.DaysIn(true) {
		return MonthDay{}, outOfRangeError("day", int64(day))
	}
	return MonthDay{month: month, day: int8(day)}, nil
}

func (md MonthDay) Month() Month { return md.month }
func (md MonthDay) Day() int     { return int(md.day) }

// AtYear combines this MonthDay with a year to build a Date, failing if
// this is February 29 and year is not a leap year.
func (md MonthDay) AtYear(year Year) (Date, error) {
	return NewDate(year, md.month, int(md.day))
}

func (md MonthDay) Compare(other MonthDay) int {
	return doCompare(md, other,
		comparing(func(x MonthDay) int8 { return int8(x.month) }),
		comparing(func(x MonthDay) int8 { return x.day }),
	)
}

func (md MonthDay) IsBefore(other MonthDay) bool { return md.Compare(other) < 0 }
func (md MonthDay) IsAfter(other MonthDay) bool  { return md.Compare(other) > 0 }
func (md MonthDay) Equal(other MonthDay) bool    { return md == other }

// AppendText renders as "--MM-DD", the conventional ISO 8601 form for a date
// with an unspecified year.
func (md MonthDay) AppendText(b []byte) ([]byte, error) {
	b = append(b, '-', '-')
	b = appendPadded(b, int(md.month), 2)
	b = append(b, '-')
	return appendPadded(b, int(md.day), 2), nil
}

func (md MonthDay) String() string { return stringImpl(md) }

func (md MonthDay) MarshalText() ([]byte, error) { return marshalTextImpl(md) }

func (md *MonthDay) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthDay(string(text))
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}

func (md MonthDay) MarshalJSON() ([]byte, error) { return marshalJSONImpl(md) }
func (md *MonthDay) UnmarshalJSON(data []byte) error {
	return unmarshalJSONImpl(md, data)
}

func (md *MonthDay) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return md.UnmarshalText([]byte(v))
	case []byte:
		return md.UnmarshalText(v)
	default:
		return newError(ReasonInvalidFormat, "cannot scan %T into MonthDay", src)
	}
}

func (md MonthDay) Value() (driver.Value, error) {
	return md.String(), nil
}

// ParseMonthDay parses "--MM-DD" or the bare "MM-DD" form.
func ParseMonthDay(s string) (MonthDay, error) {
	if len(s) == 7 && s[0] == '-' && s[1] == '-' {
		s = s[2:]
	}
	if len(s) != 5 || s[2] != '-' {
		return MonthDay{}, parseFailedError("month-day", s)
	}
	m, ok1 := digits(s, 0, 2)
	d, ok2 := digits(s, 3, 2)
	if !ok1 || !ok2 {
		return MonthDay{}, parseFailedError("month-day", s)
	}
	return NewMonthDay(Month(m), d)
}
