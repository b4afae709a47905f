package chronia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearMonth_TextRoundTrip(t *testing.T) {
	ym, err := NewYearMonth(MustNewYear(2024), February)
	require.NoError(t, err)
	assert.Equal(t, "2024-02", ym.String())

	parsed, err := ParseYearMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, ym, parsed)
}

func TestYearMonth_AtDay_LeapDay(t *testing.T) {
	ym, _ := NewYearMonth(MustNewYear(2024), February)
	d, err := ym.AtDay(29)
	require.NoError(t, err)
	assert.Equal(t, MustNewDate(2024, February, 29), d)
}

func TestMonthDay_AtYear_NonLeapRejectsFeb29(t *testing.T) {
	md, err := NewMonthDay(February, 29)
	require.NoError(t, err)

	_, err = md.AtYear(MustNewYear(2023))
	assert.Error(t, err)

	d, err := md.AtYear(MustNewYear(2024))
	require.NoError(t, err)
	assert.Equal(t, MustNewDate(2024, February, 29), d)
}

func TestDateRange_Contains(t *testing.T) {
	start := MustNewDate(2024, January, 1)
	end := MustNewDate(2024, February, 1)
	r, err := NewDateRange(start, end)
	require.NoError(t, err)

	assert.True(t, r.Contains(start))
	assert.False(t, r.Contains(end))
	assert.Equal(t, int64(31), r.Days())
}
