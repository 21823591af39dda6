package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStartIsMonday(t *testing.T) {
	// 2024-01-03 est un mercredi
	wednesday := time.Date(2024, 1, 3, 15, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-01-01", WeekStartKey(wednesday))

	// Le lundi est son propre début de semaine
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-01-01", WeekStartKey(monday))
}

func TestWeekStartSundayBelongsToPreviousMonday(t *testing.T) {
	// 2024-01-07 est un dimanche : il appartient à la semaine du 1er
	sunday := time.Date(2024, 1, 7, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-01-01", WeekStartKey(sunday))
}

func TestWeekStartAcrossYearBoundary(t *testing.T) {
	// 2025-01-01 est un mercredi, sa semaine commence le 2024-12-30
	newYear := time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-12-30", WeekStartKey(newYear))
}

func TestWeekStartKeyFor(t *testing.T) {
	weekStart, err := WeekStartKeyFor("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", weekStart)

	_, err = WeekStartKeyFor("not-a-date")
	assert.Error(t, err)
}

func TestWeekDates(t *testing.T) {
	dates, err := WeekDates("2024-01-01")
	require.NoError(t, err)
	require.Len(t, dates, 7)
	assert.Equal(t, "2024-01-01", dates[0])
	assert.Equal(t, "2024-01-07", dates[6])

	_, err = WeekDates("2024-13-99")
	assert.Error(t, err)
}

func TestWeekDatesAcrossMonthBoundary(t *testing.T) {
	dates, err := WeekDates("2024-01-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31", dates[2])
	assert.Equal(t, "2024-02-04", dates[6])
}

func TestHasWeekRolledOver(t *testing.T) {
	assert.False(t, HasWeekRolledOver(CurrentWeekStartKey()))
	assert.True(t, HasWeekRolledOver("2020-01-06"))
	// Première visite : pas encore de semaine connue
	assert.True(t, HasWeekRolledOver(""))
}

func TestHasDateRolledOver(t *testing.T) {
	assert.False(t, HasDateRolledOver(CurrentDateKey()))
	assert.True(t, HasDateRolledOver("2020-01-01"))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "Monday, January 1", DisplayDate("2024-01-01"))
	// Clé illisible : on la renvoie telle quelle plutôt que d'échouer
	assert.Equal(t, "garbage", DisplayDate("garbage"))
}
