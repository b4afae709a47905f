package chronia_test

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iseki0/chronia"
)

// Example demonstrates basic construction and combination of the core value
// types.
func Example() {
	date := chronia.MustNewDate(2024, chronia.March, 15)
	fmt.Println("Date:", date)

	timeOfDay := chronia.MustNewTime(14, 30, 45, 123456789)
	fmt.Println("Time:", timeOfDay)

	dt := date.AtTime(timeOfDay)
	fmt.Printf("Type of dt: %T\n", dt)

	// Output:
	// Date: 2024-03-15
	// Time: 14:30:45.123456789
	// Type of dt: chronia.DateTime
}

// ExampleNewDate demonstrates how to create a date.
func ExampleNewDate() {
	date, err := chronia.NewDate(chronia.MustNewYear(2024), chronia.January, 15)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(date)

	_, err = chronia.NewDate(chronia.MustNewYear(2024), chronia.February, 30)
	fmt.Println("Error:", err)

	// Output:
	// 2024-01-15
	// Error: chronia: day out of range: 30
}

// ExampleDate_AddDays demonstrates shifting a date by whole days.
func ExampleDate_AddDays() {
	date := chronia.MustNewDate(2024, chronia.January, 15)
	plus10, _ := date.AddDays(10)
	minus10, _ := date.AddDays(-10)
	fmt.Println("Original:", date)
	fmt.Println("Plus 10 days:", plus10)
	fmt.Println("Minus 10 days:", minus10)

	// Output:
	// Original: 2024-01-15
	// Plus 10 days: 2024-01-25
	// Minus 10 days: 2024-01-05
}

// ExampleDate_AddMonths demonstrates shifting a date by whole months,
// clamping the day when the target month is shorter.
func ExampleDate_AddMonths() {
	date := chronia.MustNewDate(2024, chronia.January, 31)
	plus1, _ := date.AddMonths(1)
	plus2, _ := date.AddMonths(2)
	fmt.Println("Original:", date)
	fmt.Println("Plus 1 month:", plus1)
	fmt.Println("Plus 2 months:", plus2)

	// Output:
	// Original: 2024-01-31
	// Plus 1 month: 2024-02-29
	// Plus 2 months: 2024-03-31
}

// ExampleDate_Compare demonstrates ordering dates.
func ExampleDate_Compare() {
	date1 := chronia.MustNewDate(2024, chronia.March, 15)
	date2 := chronia.MustNewDate(2024, chronia.March, 20)
	date3 := chronia.MustNewDate(2024, chronia.March, 15)

	fmt.Println("date1 < date2:", date1.IsBefore(date2))
	fmt.Println("date1 > date2:", date1.IsAfter(date2))
	fmt.Println("date1 == date3:", date1.Equal(date3))

	// Output:
	// date1 < date2: true
	// date1 > date2: false
	// date1 == date3: true
}

// ExampleDate_Weekday demonstrates getting the day of week.
func ExampleDate_Weekday() {
	date := chronia.MustNewDate(2024, chronia.March, 15)
	fmt.Println("Weekday:", date.Weekday())
	fmt.Println("Is Friday?", date.Weekday() == time.Friday)

	// Output:
	// Weekday: Friday
	// Is Friday? true
}

// ExampleDate_Sub demonstrates the calendar difference between two dates.
func ExampleDate_Sub() {
	later := chronia.MustNewDate(2024, chronia.March, 15)
	earlier := chronia.MustNewDate(2023, chronia.January, 20)
	delta := later.Sub(earlier)
	fmt.Println(delta)

	// Output:
	// P1Y1M24D
}

// ExampleTime_String demonstrates the string format with fractional seconds,
// auto-trimmed to the narrowest exact width.
func ExampleTime_String() {
	fmt.Println(chronia.MustNewTime(14, 30, 45, 0))
	fmt.Println(chronia.MustNewTime(14, 30, 45, 123000000))
	fmt.Println(chronia.MustNewTime(14, 30, 45, 123456000))
	fmt.Println(chronia.MustNewTime(14, 30, 45, 123456789))

	// Output:
	// 14:30:45
	// 14:30:45.123
	// 14:30:45.123456
	// 14:30:45.123456789
}

// ExampleYear_IsLeap demonstrates checking for leap years.
func ExampleYear_IsLeap() {
	fmt.Println("2024 is leap:", chronia.MustNewYear(2024).IsLeap())
	fmt.Println("2023 is leap:", chronia.MustNewYear(2023).IsLeap())
	fmt.Println("2000 is leap:", chronia.MustNewYear(2000).IsLeap())
	fmt.Println("1900 is leap:", chronia.MustNewYear(1900).IsLeap())

	// Output:
	// 2024 is leap: true
	// 2023 is leap: false
	// 2000 is leap: true
	// 1900 is leap: false
}

// ExampleDate_MarshalJSON demonstrates JSON serialization.
func ExampleDate_MarshalJSON() {
	date := chronia.MustNewDate(2024, chronia.March, 15)
	jsonBytes, _ := json.Marshal(date)
	fmt.Println(string(jsonBytes))

	// Output:
	// "2024-03-15"
}

// ExampleDate_UnmarshalJSON demonstrates JSON deserialization.
func ExampleDate_UnmarshalJSON() {
	var date chronia.Date
	jsonData := []byte(`"2024-03-15"`)
	if err := json.Unmarshal(jsonData, &date); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(date)

	// Output:
	// 2024-03-15
}

// ExampleNewZonedDateTime demonstrates resolving a civil date/time against
// an IANA zone, including a DST gap that must be disambiguated.
func ExampleNewZonedDateTime() {
	amsterdam, err := chronia.LoadTimeZone("Europe/Amsterdam")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	date := chronia.MustNewDate(2023, chronia.March, 26)
	skipped := chronia.MustNewTime(2, 30, 0, 0)

	zdt, err := chronia.NewZonedDateTime(date, skipped, amsterdam, chronia.Compatible)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(zdt)

	// Output:
	// 2023-03-26T03:30:00+02:00[Europe/Amsterdam]
}
