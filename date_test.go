package chronia

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_EpochRoundTrip(t *testing.T) {
	begin := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100_000; i++ {
		d := MustNewDate(begin.Year(), Month(begin.Month()), begin.Day())
		back := dateFromEpochDay(d.epochDay())
		if !assert.Equal(t, d, back, begin) {
			break
		}
		if !assert.Equal(t, begin.Weekday(), d.Weekday(), begin) {
			break
		}
		begin = begin.AddDate(0, 0, 1)
	}
}

func TestNewDate(t *testing.T) {
	t.Run("valid dates", func(t *testing.T) {
		d, err := NewDate(MustNewYear(2024), January, 1)
		require.NoError(t, err)
		assert.Equal(t, Year(2024), d.Year())
		assert.Equal(t, January, d.Month())
		assert.Equal(t, 1, d.Day())

		d, err = NewDate(MustNewYear(2024), February, 29)
		require.NoError(t, err)
		assert.Equal(t, 29, d.Day())
	})

	t.Run("invalid day of month", func(t *testing.T) {
		_, err := NewDate(MustNewYear(2024), January, 32)
		assert.Error(t, err)

		_, err = NewDate(MustNewYear(2023), February, 29)
		assert.Error(t, err)
	})
}

func TestDate_AddMonths_Clamp(t *testing.T) {
	d := MustNewDate(2024, January, 31)
	next, err := d.AddMonths(1)
	require.NoError(t, err)
	assert.Equal(t, MustNewDate(2024, February, 29), next)
}

func TestDate_Sub(t *testing.T) {
	later := MustNewDate(2024, March, 15)
	earlier := MustNewDate(2023, January, 20)
	delta := later.Sub(earlier)
	assert.Equal(t, DeltaMonths(13), delta.Months())
	assert.Equal(t, DeltaDays(24), delta.Days())

	back, err := earlier.Shift(delta.Months(), delta.Days())
	require.NoError(t, err)
	assert.Equal(t, later, back)
}

func TestDate_TextRoundTrip(t *testing.T) {
	d := MustNewDate(2024, March, 15)
	assert.Equal(t, "2024-03-15", d.String())

	var parsed Date
	require.NoError(t, parsed.UnmarshalText([]byte("2024-03-15")))
	assert.Equal(t, d, parsed)

	_, err := ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDate_Compare(t *testing.T) {
	a := MustNewDate(2024, March, 15)
	b := MustNewDate(2024, March, 20)
	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.True(t, a.Equal(MustNewDate(2024, March, 15)))
}
