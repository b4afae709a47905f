package chronia

// Civil <-> day-count conversion, using the well-known constant-time
// algorithm for the proleptic Gregorian calendar (the same family of
// technique the teacher package uses for its own unix-epoch day counting,
// generalized here to an arbitrary era so it works symmetrically across the
// whole 1..=9999 year range).
//
// daysFromCivil returns the day number relative to 1970-01-01 (so it agrees
// with time.Time's epoch); epochDayShift converts that into a day number
// relative to 0001-01-01, which is this package's own timeline origin.

// epochDayShift is -daysFromCivil(1, 1, 1): the number of days from
// 0001-01-01 to 1970-01-01.
const epochDayShift = 719162

func daysFromCivil(year int64, month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400 // [0, 399]
	var mp int64
	if month > 2 {
		mp = int64(month) - 3
	} else {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1 // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

func civilFromDays(z int64) (year int64, month int, day int) {
	z += 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097                                       // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365       // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	d := doy - (153*mp+2)/5 + 1              // [1, 31]
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, int(m), int(d)
}

// weekdayFromEpochDay returns a Go time.Weekday-compatible value (0=Sunday) for the given
// our-epoch day number (days since 0001-01-01).
func weekdayFromEpochDay(epochDay int64) int {
	// 0001-01-01 was a Monday.
	return int(floorMod(epochDay+1, 7))
}
