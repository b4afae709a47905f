package chronia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundMode_Time(t *testing.T) {
	// 12:00:30 rounded to the nearest minute sits exactly halfway between
	// 12:00:00 and 12:01:00 (quotient 720, even).
	half := MustNewTime(12, 0, 30, 0)
	const minuteNanos = 60_000_000_000

	rounded, carry := half.Round(minuteNanos, RoundHalfEven)
	assert.Equal(t, 0, carry)
	assert.Equal(t, MustNewTime(12, 0, 0, 0), rounded)

	rounded, _ = half.Round(minuteNanos, RoundHalfFloor)
	assert.Equal(t, MustNewTime(12, 0, 0, 0), rounded)

	rounded, _ = half.Round(minuteNanos, RoundHalfCeil)
	assert.Equal(t, MustNewTime(12, 1, 0, 0), rounded)

	rounded, _ = half.Round(minuteNanos, RoundCeil)
	assert.Equal(t, MustNewTime(12, 1, 0, 0), rounded)

	rounded, _ = half.Round(minuteNanos, RoundFloor)
	assert.Equal(t, MustNewTime(12, 0, 0, 0), rounded)
}

func TestRoundMode_Time_CarriesPastMidnight(t *testing.T) {
	t23 := MustNewTime(23, 59, 59, 700_000_000)
	rounded, carry := t23.Round(1_000_000_000, RoundHalfEven)
	assert.Equal(t, 1, carry)
	assert.Equal(t, Midnight, rounded)
}

func TestRoundDayThreshold_EvenDay(t *testing.T) {
	const day24h = 86_400_000_000_000
	assert.Equal(t, int64(1), roundDayThreshold(day24h, RoundCeil))
	assert.Equal(t, day24h+1, roundDayThreshold(day24h, RoundFloor))
	assert.Equal(t, day24h/2, roundDayThreshold(day24h, RoundHalfCeil))
	assert.Equal(t, day24h/2+1, roundDayThreshold(day24h, RoundHalfFloor))
}

func TestOffsetDateTime_RoundDay(t *testing.T) {
	noon := NewOffsetDateTime(MustNewDate(2024, June, 15), MustNewTime(12, 0, 1, 0), OffsetZero)
	rounded, err := noon.RoundDay(RoundHalfEven)
	assert.NoError(t, err)
	assert.Equal(t, MustNewDate(2024, June, 16), rounded.Date())
	assert.Equal(t, Midnight, rounded.Time())
}

func TestZonedDateTime_RoundDay_ShortDSTDay(t *testing.T) {
	tz, err := LoadTimeZone("Europe/Amsterdam")
	assert.NoError(t, err)

	// 2023-03-26 in Europe/Amsterdam is a 23h day (spring-forward), so its
	// midpoint is 11.5h after midnight, at 12:30 local. 13:00 local is 12h
	// in, past it, and rounds up to the next midnight (a fixed 24h day would
	// still round down here).
	zdt, err := NewZonedDateTime(MustNewDate(2023, March, 26), MustNewTime(13, 0, 0, 0), tz, Compatible)
	assert.NoError(t, err)

	rounded, err := zdt.RoundDay(RoundHalfEven)
	assert.NoError(t, err)
	assert.Equal(t, MustNewDate(2023, March, 27), rounded.Date())
}

func TestZonedDateTime_Round_PreferredOffsetAcrossFold(t *testing.T) {
	tz, err := LoadTimeZone("America/New_York")
	assert.NoError(t, err)

	// 01:30 on this date is repeated (fold); pin the later occurrence.
	zdt, err := NewZonedDateTime(MustNewDate(2023, November, 5), MustNewTime(1, 30, 0, 0), tz, Later)
	assert.NoError(t, err)

	rounded, err := zdt.Round(3_600_000_000_000, RoundFloor)
	assert.NoError(t, err)
	assert.Equal(t, MustNewTime(1, 0, 0, 0), rounded.Time())
	assert.Equal(t, zdt.Offset(), rounded.Offset())
}
