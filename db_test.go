package chronia_test

import (
	"testing"

	"github.com/iseki0/chronia"
	"github.com/stretchr/testify/assert"
)

func TestDate_ValuePG(t *testing.T) {
	pg := getPG(t)
	expected := chronia.MustNewDate(2000, chronia.December, 29)
	var actual chronia.Date
	var expectedTrue bool
	err := pg.QueryRow("SELECT $1::date, $1::date = '2000-12-29'", expected).Scan(&actual, &expectedTrue)
	assert.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.True(t, expectedTrue)
}

func TestDate_ValueMySQL(t *testing.T) {
	db := getMySQL(t)
	expected := chronia.MustNewDate(2000, chronia.December, 29)
	var actual chronia.Date
	var expectedTrue bool
	err := db.QueryRow("SELECT CAST(? AS DATE), CAST(? AS DATE) = '2000-12-29'", expected, expected).Scan(&actual, &expectedTrue)
	assert.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.True(t, expectedTrue)
}

func TestOffsetDateTime_ValuePG(t *testing.T) {
	pg := getPG(t)
	offset, err := chronia.NewOffsetHMS(2, 0, 0)
	assert.NoError(t, err)
	expected := chronia.NewOffsetDateTime(chronia.MustNewDate(2024, chronia.June, 15), chronia.MustNewTime(12, 0, 0, 0), offset)
	var actual chronia.OffsetDateTime
	err = pg.QueryRow("SELECT $1::timestamptz", expected).Scan(&actual)
	assert.NoError(t, err)
	assert.True(t, expected.Equal(actual))
}
