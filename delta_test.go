package chronia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateDelta_RequiresAtLeastOneComponent(t *testing.T) {
	_, err := ParseDateDelta("P")
	assert.Error(t, err)
}

func TestParseTimeDelta_RequiresAtLeastOneComponent(t *testing.T) {
	_, err := ParseTimeDelta("PT")
	assert.Error(t, err)
}

func TestParseDateTimeDelta_TimeOnly(t *testing.T) {
	dtd, err := ParseDateTimeDelta("PT4H5M6S")
	require.NoError(t, err)
	assert.True(t, dtd.DateDelta().IsZero())
	secs, _ := dtd.TimeDelta().TotalNanoseconds()
	assert.Equal(t, int64(4*3600+5*60+6), secs)
}

func TestParseDateTimeDelta_DateOnly(t *testing.T) {
	dtd, err := ParseDateTimeDelta("P1Y2M3D")
	require.NoError(t, err)
	assert.True(t, dtd.TimeDelta().IsZero())
	assert.Equal(t, DeltaMonths(14), dtd.DateDelta().Months())
	assert.Equal(t, DeltaDays(3), dtd.DateDelta().Days())
}

func TestParseDateTimeDelta_RejectsEmpty(t *testing.T) {
	_, err := ParseDateTimeDelta("P")
	assert.Error(t, err)
}

func TestTimeDelta_MulInt(t *testing.T) {
	d := TimeDeltaFromNanos(3_600_000_000_000)
	result, err := d.MulInt(2)
	require.NoError(t, err)
	secs, _ := result.TotalNanoseconds()
	assert.Equal(t, int64(7200), secs)

	neg, err := d.MulInt(-2)
	require.NoError(t, err)
	secs, _ = neg.TotalNanoseconds()
	assert.Equal(t, int64(-7200), secs)
}

func TestTimeDelta_MulInt_Overflow(t *testing.T) {
	d := TimeDeltaFromNanos(1 << 62)
	_, err := d.MulInt(1 << 62)
	assert.Error(t, err)
}

func TestTimeDelta_MulFloat(t *testing.T) {
	d := TimeDeltaFromNanos(3_600_000_000_000)
	result, err := d.MulFloat(1.5)
	require.NoError(t, err)
	secs, _ := result.TotalNanoseconds()
	assert.Equal(t, int64(5400), secs)
}

func TestTimeDelta_DivInt(t *testing.T) {
	d := TimeDeltaFromNanos(7_200_000_000_000)
	result, err := d.DivInt(3)
	require.NoError(t, err)
	secs, _ := result.TotalNanoseconds()
	assert.Equal(t, int64(2400), secs)

	_, err = d.DivInt(0)
	assert.Error(t, err)
}

func TestTimeDelta_DivInt_RoundsToNearest(t *testing.T) {
	d := TimeDeltaFromNanos(5)
	result, err := d.DivInt(2)
	require.NoError(t, err)
	_, nanos := result.TotalNanoseconds()
	assert.Equal(t, int32(3), nanos)
}

func TestTimeDelta_DivFloat(t *testing.T) {
	d := TimeDeltaFromNanos(3_600_000_000_000)
	result, err := d.DivFloat(2)
	require.NoError(t, err)
	secs, _ := result.TotalNanoseconds()
	assert.Equal(t, int64(1800), secs)

	_, err = d.DivFloat(0)
	assert.Error(t, err)
}

func TestTimeDelta_DivDelta(t *testing.T) {
	a := TimeDeltaFromNanos(3_600_000_000_000)
	b := TimeDeltaFromNanos(1_800_000_000_000)
	assert.Equal(t, 2.0, a.DivDelta(b))
}

func TestDateDelta_Sub(t *testing.T) {
	a, err := NewDateDelta(0, 3, 0)
	require.NoError(t, err)
	b, err := NewDateDelta(0, 1, 0)
	require.NoError(t, err)

	result, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, DeltaMonths(2), result.Months())
}

func TestDateDelta_Sub_RejectsMixedSign(t *testing.T) {
	a, err := NewDateDelta(0, 1, 0)
	require.NoError(t, err)
	b, err := NewDateDelta(0, 0, 5)
	require.NoError(t, err)

	_, err = a.Sub(b)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMixedSign)
}

func TestDateTimeDelta_Add_RejectsMixedSignAcrossComponents(t *testing.T) {
	dd, err := NewDateDelta(0, 1, 0)
	require.NoError(t, err)
	positive := NewDateTimeDelta(dd, TimeDelta{})

	negativeTime := NewDateTimeDelta(DateDelta{}, TimeDeltaFromNanos(-1_000_000_000))

	_, err = positive.Add(negativeTime)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMixedSign)
}

func TestDateTimeDelta_Add_CombinesSameSignComponents(t *testing.T) {
	dd, err := NewDateDelta(0, 1, 0)
	require.NoError(t, err)
	a := NewDateTimeDelta(dd, TimeDeltaFromNanos(3_600_000_000_000))
	b := NewDateTimeDelta(DateDelta{}, TimeDeltaFromNanos(1_800_000_000_000))

	result, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, DeltaMonths(1), result.DateDelta().Months())
	secs, _ := result.TimeDelta().TotalNanoseconds()
	assert.Equal(t, int64(5400), secs)
}

func TestDateDelta_String_NegativeSingleSign(t *testing.T) {
	dd, err := NewDateDelta(-1, -2, -3)
	require.NoError(t, err)
	assert.Equal(t, "-P1Y2M3D", dd.String())

	parsed, err := ParseDateDelta(dd.String())
	require.NoError(t, err)
	assert.Equal(t, dd, parsed)
}

func TestTimeDelta_String_NegativeSingleSign(t *testing.T) {
	d, err := NewTimeDelta(-4, -5, -6, -789_000_000)
	require.NoError(t, err)
	assert.Equal(t, "-PT4H5M6.789S", d.String())

	parsed, err := ParseTimeDelta(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, parsed)
}

func TestDateTimeDelta_String_RoundTrip_Negative(t *testing.T) {
	dtd, err := ParseDateTimeDelta("-P1Y2M3DT4H5M6.789S")
	require.NoError(t, err)
	assert.Equal(t, DeltaMonths(-14), dtd.DateDelta().Months())
	assert.Equal(t, DeltaDays(-3), dtd.DateDelta().Days())
	assert.Equal(t, "-P1Y2M3DT4H5M6.789S", dtd.String())

	parsed, err := ParseDateTimeDelta(dtd.String())
	require.NoError(t, err)
	assert.Equal(t, dtd, parsed)
}
