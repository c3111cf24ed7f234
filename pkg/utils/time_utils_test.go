package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	early, ok := ParseTimeOfDay("09:00")
	require.True(t, ok)
	late, ok := ParseTimeOfDay("18:30")
	require.True(t, ok)
	assert.True(t, early.Before(late))

	for _, bad := range []string{"", "9am", "25:00", "12:60", "noon", "12.30"} {
		_, ok := ParseTimeOfDay(bad)
		assert.False(t, ok, "input %q must not parse", bad)
	}
}

func TestParseFlexibleDate(t *testing.T) {
	for _, good := range []string{
		"2024-07-15",
		"2024-07-15T08:00:00Z",
		"2024-07-15 08:00:00",
		"Jul 15, 2024",
		"July 15, 2024",
		"07/15/2024",
	} {
		parsed, ok := ParseFlexibleDate(good)
		require.True(t, ok, "input %q must parse", good)
		assert.Equal(t, 2024, parsed.Year())
	}

	for _, bad := range []string{"", "Undecided Dates", "next week", "15-07-2024"} {
		_, ok := ParseFlexibleDate(bad)
		assert.False(t, ok, "input %q must not parse", bad)
	}
}
