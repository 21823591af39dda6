package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokobill/MedTrack/internal/auth"
	model "github.com/mokobill/MedTrack/internal/models"
	"github.com/mokobill/MedTrack/internal/store"
)

func perfectWeekState(t *testing.T, weekDates []string) *model.UserState {
	t.Helper()
	state := store.DefaultState()
	for _, date := range weekDates {
		state.Tracking[date] = &model.DailyTracking{
			Date: date,
			Items: map[string]int{
				"fruits": 3, "vegetables": 2, "oliveoil": 4, "nuts": 1,
			},
		}
	}
	state.WeeklyTracking[weekDates[0]] = &model.WeeklyTracking{
		WeekStart: weekDates[0],
		Items:     map[string]int{"fish": 3, "legumes": 3},
	}
	state.ExerciseItems[0].Completed = 3
	return state
}

func weekDatesOf(t *testing.T) []string {
	t.Helper()
	return []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07",
	}
}

func TestBuildWeeklyReportIncludesWholeRoster(t *testing.T) {
	st := store.NewMemoryStore("test")
	report, err := BuildWeeklyReport(context.Background(), st, "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", report.WeekStart)
	assert.Equal(t, "2024-01-07", report.WeekEnd)
	// Tout le roster apparaît, même sans aucune donnée
	assert.Len(t, report.Users, len(auth.Roster()))
}

func TestBuildWeeklyReportUsersWithoutDataAreAllZero(t *testing.T) {
	st := store.NewMemoryStore("test")
	report, err := BuildWeeklyReport(context.Background(), st, "2024-01-01")
	require.NoError(t, err)

	for _, user := range report.Users {
		assert.Zero(t, user.Summary.TotalDaysTracked, user.Username)
		assert.Zero(t, user.Summary.OverallCompliance, user.Username)
		require.Len(t, user.Daily, 7, user.Username)
		for _, row := range user.Daily {
			assert.Zero(t, row.Compliance)
			assert.Zero(t, row.GoalsCompleted)
		}
	}
}

func TestBuildWeeklyReportPerfectWeek(t *testing.T) {
	st := store.NewMemoryStore("test")
	ctx := context.Background()
	weekDates := weekDatesOf(t)
	require.NoError(t, st.Save(ctx, "demo", perfectWeekState(t, weekDates)))

	report, err := BuildWeeklyReport(ctx, st, "2024-01-01")
	require.NoError(t, err)

	var demo *UserReport
	for i := range report.Users {
		if report.Users[i].Username == "demo" {
			demo = &report.Users[i]
		}
	}
	require.NotNil(t, demo)

	assert.Equal(t, 7, demo.Summary.TotalDaysTracked)
	assert.Equal(t, 100.0, demo.Summary.AverageDailyCompliance)
	assert.Equal(t, 100.0, demo.Summary.AverageWeeklyCompliance)
	assert.Equal(t, 100.0, demo.Summary.AverageExerciseCompliance)
	assert.Equal(t, 100.0, demo.Summary.OverallCompliance)
	assert.Equal(t, "Demo User", demo.DisplayName)
}

func TestBuildWeeklyReportOverallIsMeanOfThree(t *testing.T) {
	st := store.NewMemoryStore("test")
	ctx := context.Background()
	weekDates := weekDatesOf(t)

	// Journalier parfait, hebdomadaire et exercice à zéro
	state := store.DefaultState()
	for _, date := range weekDates {
		state.Tracking[date] = &model.DailyTracking{
			Date: date,
			Items: map[string]int{
				"fruits": 3, "vegetables": 2, "oliveoil": 4, "nuts": 1,
			},
		}
	}
	require.NoError(t, st.Save(ctx, "MEDAL001", state))

	report, err := BuildWeeklyReport(ctx, st, "2024-01-01")
	require.NoError(t, err)

	var user *UserReport
	for i := range report.Users {
		if report.Users[i].Username == "MEDAL001" {
			user = &report.Users[i]
		}
	}
	require.NotNil(t, user)

	assert.Equal(t, 100.0, user.Summary.AverageDailyCompliance)
	assert.Zero(t, user.Summary.AverageWeeklyCompliance)
	assert.Zero(t, user.Summary.AverageExerciseCompliance)
	assert.InDelta(t, 33.33, user.Summary.OverallCompliance, 0.001)
	assert.Equal(t, "MEDAL001", user.DisplayName)
}

func TestBuildWeeklyReportInvalidWeekStart(t *testing.T) {
	st := store.NewMemoryStore("test")
	_, err := BuildWeeklyReport(context.Background(), st, "nonsense")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	st := store.NewMemoryStore("test")
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, "demo", perfectWeekState(t, weekDatesOf(t))))

	report, err := BuildWeeklyReport(ctx, st, "2024-01-01")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// Une ligne d'en-tête plus une ligne par utilisateur du roster
	assert.Len(t, records, len(auth.Roster())+1)

	var demoRow []string
	for _, rec := range records[1:] {
		if rec[0] == "demo" {
			demoRow = rec
		}
	}
	require.NotNil(t, demoRow)
	assert.Contains(t, demoRow, "100.00")
}

func TestFilename(t *testing.T) {
	report := &WeeklyReport{WeekStart: "2024-01-01", WeekEnd: "2024-01-07"}
	name := report.Filename()
	assert.True(t, strings.HasPrefix(name, "MediterraneanDiet-WeeklyReport-2024-01-01"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}
