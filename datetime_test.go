package chronia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_Shift_CarriesIntoDate(t *testing.T) {
	dt := NewDateTime(MustNewDate(2024, January, 1), MustNewTime(23, 0, 0, 0))
	delta := NewDateTimeDelta(DateDelta{}, TimeDeltaFromNanos(2*3600*1_000_000_000))
	shifted, err := dt.Shift(delta)
	require.NoError(t, err)
	assert.Equal(t, MustNewDate(2024, January, 2), shifted.Date())
	assert.Equal(t, MustNewTime(1, 0, 0, 0), shifted.Time())
}

func TestDateTime_Round_CarriesIntoDate(t *testing.T) {
	dt := NewDateTime(MustNewDate(2024, January, 1), MustNewTime(23, 59, 59, 900_000_000))
	rounded, err := dt.Round(1_000_000_000, RoundCeil)
	require.NoError(t, err)
	assert.Equal(t, MustNewDate(2024, January, 2), rounded.Date())
	assert.Equal(t, Midnight, rounded.Time())
}

func TestDateTime_TextRoundTrip(t *testing.T) {
	dt := NewDateTime(MustNewDate(2024, March, 15), MustNewTime(14, 30, 45, 0))
	assert.Equal(t, "2024-03-15T14:30:45", dt.String())

	parsed, err := ParseDateTime("2024-03-15 14:30:45")
	require.NoError(t, err)
	assert.Equal(t, dt, parsed)
}
