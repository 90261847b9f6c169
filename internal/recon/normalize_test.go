package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNumber_Simple(t *testing.T) {
	assert.Equal(t, 3500.0, ToNumber("3500.00"))
}

func TestToNumber_WithCommas(t *testing.T) {
	assert.Equal(t, 150000.0, ToNumber("1,50,000.00"))
}

func TestToNumber_Blank(t *testing.T) {
	assert.Equal(t, 0.0, ToNumber(""))
}

func TestToNumber_Invalid(t *testing.T) {
	assert.Equal(t, 0.0, ToNumber("not-a-number"))
}

func TestToNumber_Negative(t *testing.T) {
	assert.Equal(t, -42.5, ToNumber("-42.5"))
}

func TestParseMonthLabel_Abbreviated(t *testing.T) {
	d, ok := ParseMonthLabel("Jan-24")
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 1, d.Day())
}

func TestParseMonthLabel_FullName(t *testing.T) {
	d, ok := ParseMonthLabel("January 2024")
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
}

func TestParseMonthLabel_LeadingOrdinal(t *testing.T) {
	// Some exports prefix the label with a sort ordinal, e.g. "4.Apr-24".
	d, ok := ParseMonthLabel("4.Apr-24")
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.April, d.Month())
}

func TestParseMonthLabel_TwoDigitYear(t *testing.T) {
	d, ok := ParseMonthLabel("dec-99")
	require.True(t, ok)
	assert.Equal(t, 2099, d.Year())
}

func TestParseMonthLabel_YearOutOfRange(t *testing.T) {
	_, ok := ParseMonthLabel("Jan-2200")
	assert.False(t, ok)
}

func TestParseMonthLabel_GenericDateFallback(t *testing.T) {
	d, ok := ParseMonthLabel("2024-01")
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 1, d.Day())
}

func TestParseMonthLabel_Unparseable(t *testing.T) {
	_, ok := ParseMonthLabel("garbled")
	assert.False(t, ok)

	_, ok = ParseMonthLabel("")
	assert.False(t, ok)
}

func TestParseDate_ISO(t *testing.T) {
	d, ok := ParseDate("2024-01-15")
	require.True(t, ok)
	assert.Equal(t, 15, d.Day())
}

func TestParseDate_DDMMYYYY(t *testing.T) {
	d, ok := ParseDate("15/01/2024")
	require.True(t, ok)
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 15, d.Day())
}

func TestParseDate_DDMonYYYY(t *testing.T) {
	d, ok := ParseDate("15-Jan-2024")
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
}

func TestParseDate_Invalid(t *testing.T) {
	_, ok := ParseDate("invalid-date")
	assert.False(t, ok)
}
