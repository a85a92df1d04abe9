package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("14/12/2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 14, got.Day())

	_, err = Parse("2025-12-14")
	assert.Error(t, err)

	_, err = Parse("31/02/2026")
	assert.Error(t, err, "impossible calendar dates must be rejected")

	_, err = Parse("")
	assert.Error(t, err)
}

func TestMonthYear(t *testing.T) {
	label, day, err := MonthYear("05/01/2026")
	require.NoError(t, err)
	assert.Equal(t, "January 2026", label)
	assert.Equal(t, 5, day)

	label, day, err = MonthYear("14/12/2025")
	require.NoError(t, err)
	assert.Equal(t, "December 2025", label)
	assert.Equal(t, 14, day)

	_, _, err = MonthYear("not a date")
	assert.Error(t, err)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 12, 14, 9, 0, 0, 0, time.UTC)
	b := time.Date(2025, 12, 14, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
