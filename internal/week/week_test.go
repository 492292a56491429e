package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestID(t *testing.T) {
	// Jan 1 2024 is a Monday and owns ISO week 1.
	assert.Equal(t, "2024-W01", ID(date(2024, time.January, 1)))
	// Dec 31 2024 is a Tuesday; its Thursday falls in 2025, so ISO says 2025-W01.
	assert.Equal(t, "2025-W01", ID(date(2024, time.December, 31)))
	assert.Equal(t, "2025-W01", ID(date(2025, time.January, 1)))
	assert.Equal(t, "2024-W28", ID(date(2024, time.July, 10)))
	// Jan 1-3 2027 belong to 2026's last week.
	assert.Equal(t, "2026-W53", ID(date(2027, time.January, 1)))
	assert.Equal(t, "2027-W01", ID(date(2027, time.January, 4)))
}

func TestForContainsOriginalDate(t *testing.T) {
	dates := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.December, 31),
		date(2025, time.January, 2),
		date(2024, time.July, 10),
		date(2027, time.January, 4), // year whose Jan 1 is a Friday
		date(2026, time.December, 28),
	}
	for _, d := range dates {
		info, err := For(ID(d))
		require.NoError(t, err, "week %s", ID(d))

		found := false
		for _, day := range info.Days {
			if day.Date == d.Format("2006-01-02") {
				found = true
			}
		}
		assert.True(t, found, "week %s should contain %s", ID(d), d.Format("2006-01-02"))
	}
}

func TestForShape(t *testing.T) {
	info, err := For("2024-W01")
	require.NoError(t, err)

	assert.Equal(t, "2024年 1月, 第 1 週", info.Title)
	assert.Equal(t, "(01/01 - 01/05)", info.DateRange)
	require.Len(t, info.Days, 5)
	assert.Equal(t, 1, info.Days[0].DayIndex)
	assert.Equal(t, "2024-01-01", info.Days[0].Date)
	assert.Equal(t, "01/01", info.Days[0].DisplayDate)
	assert.Equal(t, 5, info.Days[4].DayIndex)
	assert.Equal(t, "2024-01-05", info.Days[4].Date)
}

func TestForYearBoundaryWeek(t *testing.T) {
	info, err := For("2025-W01")
	require.NoError(t, err)

	assert.Equal(t, "2024-12-30", info.Days[0].Date)
	assert.Equal(t, "2024-12-31", info.Days[1].Date)
	assert.Equal(t, "2025-01-03", info.Days[4].Date)
}

func TestAdjacentRoundTrip(t *testing.T) {
	ids := []string{"2024-W01", "2024-W28", "2025-W01", "2024-W52", "2027-W01"}
	for _, id := range ids {
		prev, err := Adjacent(id, -1)
		require.NoError(t, err)
		back, err := Adjacent(prev, 1)
		require.NoError(t, err)
		assert.Equal(t, id, back, "round trip through %s", prev)
	}
}

func TestAdjacentYearRollover(t *testing.T) {
	prev, err := Adjacent("2025-W01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2024-W52", prev)

	next, err := Adjacent("2024-W52", 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-W01", next)
}

func TestParseRejectsMalformedIDs(t *testing.T) {
	for _, bad := range []string{"", "2024", "2024-W", "2024-W00", "2024-W54", "abcd-W10"} {
		_, _, err := Parse(bad)
		assert.Error(t, err, "id %q", bad)
	}
}

func TestDayIndexOf(t *testing.T) {
	assert.Equal(t, 1, DayIndexOf("2024-01-01"))
	assert.Equal(t, 3, DayIndexOf("2024-01-03"))
	assert.Equal(t, 5, DayIndexOf("2024-01-05"))
	assert.Equal(t, 0, DayIndexOf("2024-01-06")) // Saturday
	assert.Equal(t, 0, DayIndexOf("2024-01-07")) // Sunday
	assert.Equal(t, 0, DayIndexOf("not-a-date"))
}
