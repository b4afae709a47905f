package chronia

import "database/sql/driver"

// YearMonth identifies a calendar month without a specific day, e.g. for
// billing periods or "valid through" fields. Not named by the wire formats
// in the core spec, but present throughout this family of libraries as a
// companion to Date.
type YearMonth struct {
	year  Year
	month Month
}

func NewYearMonth(year Year, month Month) (YearMonth, error) {
	if !isValidMonth(int(month)) {
		return YearMonth{}, outOfRangeError("month", int64(month))
	}
	return YearMonth{year: year, month: month}, nil
}

func (ym YearMonth) Year() Year   { return ym.year }
func (ym YearMonth) Month() Month { return ym.month }
func (ym YearMonth) DaysInMonth() int { return ym.month.DaysIn(ym.year.IsLeap()) }

// AtDay combines this YearMonth with a day to build a Date.
func (ym YearMonth) AtDay(day int) (Date, error) {
	return NewDate(ym.year, ym.month, day)
}

func (ym YearMonth) AddMonths(n DeltaMonths) (YearMonth, error) {
	d, err := Date{year: ym.year, month: ym.month, day: 1}.AddMonths(n)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year: d.year, month: d.month}, nil
}

func (ym YearMonth) Compare(other YearMonth) int {
	return doCompare(ym, other,
		comparing(func(x YearMonth) int16 { return int16(x.year) }),
		comparing(func(x YearMonth) int8 { return int8(x.month) }),
	)
}

func (ym YearMonth) IsBefore(other YearMonth) bool { return ym.Compare(other) < 0 }
func (ym YearMonth) IsAfter(other YearMonth) bool  { return ym.Compare(other) > 0 }
func (ym YearMonth) Equal(other YearMonth) bool    { return ym == other }

// AppendText renders as "YYYY-MM".
func (ym YearMonth) AppendText(b []byte) ([]byte, error) {
	b = appendPadded(b, int(ym.year), 4)
	b = append(b, '-')
	return appendPadded(b, int(ym.month), 2), nil
}

func (ym YearMonth) String() string { return stringImpl(ym) }

func (ym YearMonth) MarshalText() ([]byte, error) { return marshalTextImpl(ym) }

func (ym *YearMonth) UnmarshalText(text []byte) error {
	parsed, err := ParseYearMonth(string(text))
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}

func (ym YearMonth) MarshalJSON() ([]byte, error) { return marshalJSONImpl(ym) }
func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	return unmarshalJSONImpl(ym, data)
}

func (ym *YearMonth) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return ym.UnmarshalText([]byte(v))
	case []byte:
		return ym.UnmarshalText(v)
	default:
		return newError(ReasonInvalidFormat, "cannot scan %T into YearMonth", src)
	}
}

func (ym YearMonth) Value() (driver.Value, error) {
	return ym.String(), nil
}

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	if len(s) != 7 || s[4] != '-' {
		return YearMonth{}, parseFailedError("year-month", s)
	}
	y, ok1 := digits(s, 0, 4)
	m, ok2 := digits(s, 5, 2)
	if !ok1 || !ok2 {
		return YearMonth{}, parseFailedError("year-month", s)
	}
	year, err := NewYear(y)
	if err != nil {
		return YearMonth{}, err
	}
	return NewYearMonth(year, Month(m))
}
