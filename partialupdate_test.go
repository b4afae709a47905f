package chronia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetDateTime_Replace_Field(t *testing.T) {
	odt := NewOffsetDateTime(MustNewDate(2024, January, 1), MustNewTime(12, 0, 0, 0), OffsetZero)

	hour := 18
	updated, err := odt.Replace(PartialUpdate{Hour: &hour})
	require.NoError(t, err)

	assert.Equal(t, 18, updated.Time().Hour())
	assert.Equal(t, odt.Date(), updated.Date())
	assert.Equal(t, odt.Offset(), updated.Offset())
}

func TestOffsetDateTime_Replace_Offset(t *testing.T) {
	odt := NewOffsetDateTime(MustNewDate(2024, January, 1), MustNewTime(12, 0, 0, 0), OffsetZero)

	newOffset := MustNewOffset(3600)
	updated, err := odt.Replace(PartialUpdate{Offset: &newOffset})
	require.NoError(t, err)

	assert.Equal(t, newOffset, updated.Offset())
	assert.Equal(t, odt.Date(), updated.Date())
	assert.Equal(t, odt.Time(), updated.Time())
}

func TestOffsetDateTime_Replace_InvalidComponentFails(t *testing.T) {
	odt := NewOffsetDateTime(MustNewDate(2024, January, 1), MustNewTime(12, 0, 0, 0), OffsetZero)

	badDay := 32
	_, err := odt.Replace(PartialUpdate{Day: &badDay})
	assert.Error(t, err)
}

func TestZonedDateTime_Replace_ReResolvesAgainstZone(t *testing.T) {
	tz, err := LoadTimeZone("Europe/Amsterdam")
	require.NoError(t, err)

	zdt, err := NewZonedDateTime(MustNewDate(2023, June, 15), MustNewTime(12, 0, 0, 0), tz, Compatible)
	require.NoError(t, err)

	month := March
	day := 26
	hour := 2
	minute := 30
	updated, err := zdt.Replace(PartialUpdate{
		Month:        &month,
		Day:          &day,
		Hour:         &hour,
		Minute:       &minute,
		Disambiguate: disambiguatePtr(Later),
	})
	require.NoError(t, err)
	assert.Equal(t, MustNewDate(2023, March, 26), updated.Date())
}

func TestZonedDateTime_Replace_NewZone(t *testing.T) {
	tzAmsterdam, err := LoadTimeZone("Europe/Amsterdam")
	require.NoError(t, err)
	tzNY, err := LoadTimeZone("America/New_York")
	require.NoError(t, err)

	zdt, err := NewZonedDateTime(MustNewDate(2024, January, 1), MustNewTime(12, 0, 0, 0), tzAmsterdam, Compatible)
	require.NoError(t, err)

	updated, err := zdt.Replace(PartialUpdate{TZ: &tzNY})
	require.NoError(t, err)
	// Replace keeps the wall-clock fields and re-resolves them in the new
	// zone (ToTZ is the conversion that keeps the instant).
	assert.Equal(t, zdt.ToPlain(), updated.ToPlain())
	assert.Equal(t, MustNewOffset(-5*3600), updated.Offset())
}

func disambiguatePtr(d Disambiguate) *Disambiguate { return &d }

func TestMapKey_SharedAcrossKinds(t *testing.T) {
	inst := InstantFromDateTime(DateTime{date: MustNewDate(2024, January, 1), time: MustNewTime(12, 0, 0, 0)})

	odt, err := OffsetDateTimeFromInstant(inst, OffsetZero)
	require.NoError(t, err)

	tz, err := LoadTimeZone("Europe/Amsterdam")
	require.NoError(t, err)
	zdt, err := ZonedDateTimeFromInstant(inst, tz)
	require.NoError(t, err)

	sdt, err := SystemDateTimeFromInstant(inst, DefaultSystemResolver)
	require.NoError(t, err)

	wantEpoch, wantNanos := inst.MapKey()

	gotEpoch, gotNanos := odt.MapKey()
	assert.Equal(t, wantEpoch, gotEpoch)
	assert.Equal(t, wantNanos, gotNanos)

	gotEpoch, gotNanos = zdt.MapKey()
	assert.Equal(t, wantEpoch, gotEpoch)
	assert.Equal(t, wantNanos, gotNanos)

	gotEpoch, gotNanos = sdt.MapKey()
	assert.Equal(t, wantEpoch, gotEpoch)
	assert.Equal(t, wantNanos, gotNanos)
}
