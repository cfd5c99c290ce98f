package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDate_TwoDigitYear verifies that 2-digit years map to the 2000s.
func TestParseDate_TwoDigitYear(t *testing.T) {
	parsed, ok := ParseDate("05/03/24")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), parsed)
}

// TestParseDate_FourDigitYearWithTime verifies date plus time-of-day parsing.
func TestParseDate_FourDigitYearWithTime(t *testing.T) {
	parsed, ok := ParseDate("05/03/2024 14:30:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC), parsed)
}

// TestParseDate_HourMinuteOnly verifies the HH:MM time variant.
func TestParseDate_HourMinuteOnly(t *testing.T) {
	parsed, ok := ParseDate("10/12/25 08:15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.December, 10, 8, 15, 0, 0, time.UTC), parsed)
}

// TestParseDate_Malformed verifies that every malformed variant is rejected
// without panicking.
func TestParseDate_Malformed(t *testing.T) {
	cases := []string{
		"not-a-date",
		"",
		"05/03",
		"05/03/1999",    // below the accepted year range
		"05/03/2101",    // above the accepted year range
		"05/03/024",     // 3-digit year
		"aa/03/2024",    // non-numeric day
		"05/13/2024",    // month out of range
		"32/03/2024",    // day out of range
		"-5/03/2024",    // signed token
		"05/03/24 25:00",
		"05/03/24 14:30:00 extra",
	}

	for _, raw := range cases {
		_, ok := ParseDate(raw)
		assert.False(t, ok, "expected %q to be rejected", raw)
	}
}

// TestParseDateLenient_NativeLayouts verifies ISO-like inputs are handled
// before the token parser kicks in.
func TestParseDateLenient_NativeLayouts(t *testing.T) {
	fallback := EpochFallback

	got := ParseDateLenient("2025-05-10T13:06:23", fallback)
	assert.Equal(t, time.Date(2025, time.May, 10, 13, 6, 23, 0, time.UTC), got)

	// Fractional seconds appear on some provider endpoints.
	got = ParseDateLenient("2025-04-30T18:53:15.917", fallback)
	assert.Equal(t, 917000000, got.Nanosecond())

	got = ParseDateLenient("2023-12-28 10:50:44", fallback)
	assert.Equal(t, time.Date(2023, time.December, 28, 10, 50, 44, 0, time.UTC), got)
}

// TestParseDateLenient_TokenFallback verifies slash dates still parse leniently.
func TestParseDateLenient_TokenFallback(t *testing.T) {
	got := ParseDateLenient("05/03/2024 14:30:00", EpochFallback)
	assert.Equal(t, time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC), got)
}

// TestParseDateLenient_Fallback verifies the caller-supplied fallback is
// returned instead of a zero value or error.
func TestParseDateLenient_Fallback(t *testing.T) {
	got := ParseDateLenient("garbage", EpochFallback)
	assert.Equal(t, EpochFallback, got)
}
