package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayKey_UsesHouseholdZone(t *testing.T) {
	require.NoError(t, Init("America/Chicago"))
	defer func() { _ = Init("") }()

	// 2026-03-03 03:00 UTC is still Monday evening in Chicago.
	instant := time.Date(2026, 3, 3, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "mon", WeekdayKey(instant))
}

func TestStartOfDayAndAtClock(t *testing.T) {
	require.NoError(t, Init("UTC"))
	defer func() { _ = Init("") }()

	instant := time.Date(2026, 7, 14, 16, 45, 10, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC), StartOfDay(instant).UTC())
	assert.Equal(t, time.Date(2026, 7, 14, 8, 30, 0, 0, time.UTC), AtClock(instant, 8, 30).UTC())
}

func TestInit_RejectsUnknownZone(t *testing.T) {
	assert.Error(t, Init("Mars/Olympus_Mons"))
}
