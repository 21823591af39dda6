package tracking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/mokobill/MedTrack/internal/models"
	"github.com/mokobill/MedTrack/internal/store"
)

func newTestTracker(t *testing.T) (*Tracker, store.Store) {
	t.Helper()
	st := store.NewMemoryStore("test-tracker")
	return NewTracker(context.Background(), "demo", st), st
}

func TestIncrementDailyReachesTargetExactlyOnce(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	// Fruits : cible journalière de 3. Le signal de complétion ne doit
	// partir qu'au passage exact à 3, pas avant, pas après.
	var reached []int
	for i := 1; i <= 5; i++ {
		count, justReached, err := tr.IncrementDaily(ctx, "2024-01-01", "fruits")
		require.NoError(t, err)
		assert.Equal(t, i, count)
		if justReached {
			reached = append(reached, count)
		}
	}
	assert.Equal(t, []int{3}, reached)
}

func TestIncrementWeeklyReachesTargetExactlyOnce(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	// Fish : cible hebdomadaire de 3
	var reached []int
	for i := 1; i <= 4; i++ {
		count, justReached, err := tr.IncrementWeekly(ctx, "2024-01-01", "fish")
		require.NoError(t, err)
		assert.Equal(t, i, count)
		if justReached {
			reached = append(reached, count)
		}
	}
	assert.Equal(t, []int{3}, reached)
}

func TestIncrementDoesNotCapCount(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, _, err := tr.IncrementDaily(ctx, "2024-01-01", "nuts")
		require.NoError(t, err)
	}
	assert.Equal(t, 10, tr.GetDailyCount("2024-01-01", "nuts"))
}

func TestDecrementNeverGoesNegative(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	// Décrément sur un compteur vierge : no-op silencieux
	count, err := tr.DecrementDaily(ctx, "2024-01-01", "fruits")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = tr.DecrementWeekly(ctx, "2024-01-01", "fish")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, _, err = tr.IncrementDaily(ctx, "2024-01-01", "fruits")
	require.NoError(t, err)

	count, err = tr.DecrementDaily(ctx, "2024-01-01", "fruits")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = tr.DecrementDaily(ctx, "2024-01-01", "fruits")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestFruitsScenario(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()
	date := "2024-01-01"

	var completions int
	for i := 0; i < 3; i++ {
		_, justReached, err := tr.IncrementDaily(ctx, date, "fruits")
		require.NoError(t, err)
		if justReached {
			completions++
		}
	}
	assert.Equal(t, 3, tr.GetDailyCount(date, "fruits"))
	assert.Equal(t, 1, completions)

	item := tr.State().FindFoodItem("fruits")
	require.NotNil(t, item)
	assert.GreaterOrEqual(t, tr.GetDailyCount(date, "fruits"), item.Target())

	count, err := tr.DecrementDaily(ctx, date, "fruits")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Less(t, count, item.Target())
}

func TestIncrementExerciseProgressClampsAtFrequency(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	// Resistance : fréquence 3 par semaine
	var reached []int
	for i := 1; i <= 3; i++ {
		completed, justReached, err := tr.IncrementExerciseProgress(ctx, "resistance")
		require.NoError(t, err)
		assert.Equal(t, i, completed)
		if justReached {
			reached = append(reached, completed)
		}
	}
	assert.Equal(t, []int{3}, reached)

	// À la cible : no-op, pas de nouveau signal
	completed, justReached, err := tr.IncrementExerciseProgress(ctx, "resistance")
	require.NoError(t, err)
	assert.Equal(t, 3, completed)
	assert.False(t, justReached)
}

func TestIncrementExerciseProgressUnknownItem(t *testing.T) {
	tr, _ := newTestTracker(t)
	_, _, err := tr.IncrementExerciseProgress(context.Background(), "swimming")
	assert.Error(t, err)
}

func TestApplyWeekRolloverResetsExerciseAndIsIdempotent(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.EnsureDateInitialized(ctx, "2024-01-01"))
	for i := 0; i < 2; i++ {
		_, _, err := tr.IncrementExerciseProgress(ctx, "resistance")
		require.NoError(t, err)
	}
	require.Equal(t, 2, tr.State().FindExerciseItem("resistance").Completed)

	require.NoError(t, tr.ApplyWeekRollover(ctx, "2024-01-08"))
	assert.Equal(t, 0, tr.State().FindExerciseItem("resistance").Completed)
	assert.Equal(t, "2024-01-08", tr.State().LastWeekStart)
	assert.Contains(t, tr.State().WeeklyTracking, "2024-01-08")

	// Rejouer le rollover de la même semaine ne touche plus rien
	_, _, err := tr.IncrementExerciseProgress(ctx, "resistance")
	require.NoError(t, err)
	require.NoError(t, tr.ApplyWeekRollover(ctx, "2024-01-08"))
	assert.Equal(t, 1, tr.State().FindExerciseItem("resistance").Completed)
}

func TestWeekRolloverPreservesHistoricalWeeklyRecords(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	_, _, err := tr.IncrementWeekly(ctx, "2024-01-01", "fish")
	require.NoError(t, err)
	_, _, err = tr.IncrementWeekly(ctx, "2024-01-01", "fish")
	require.NoError(t, err)

	require.NoError(t, tr.ApplyWeekRollover(ctx, "2024-01-08"))

	// L'historique reste lisible et intact, la nouvelle semaine part de zéro
	assert.Equal(t, 2, tr.GetWeeklyCount("2024-01-01", "fish"))
	assert.Equal(t, 0, tr.GetWeeklyCount("2024-01-08", "fish"))
}

func TestEnsureDateInitializedCreatesRecords(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.EnsureDateInitialized(ctx, "2024-01-03"))
	assert.Contains(t, tr.State().Tracking, "2024-01-03")
	assert.Contains(t, tr.State().WeeklyTracking, "2024-01-01")
	assert.Equal(t, "2024-01-01", tr.State().LastWeekStart)

	// Rappel avec la même date : rien de nouveau
	require.NoError(t, tr.EnsureDateInitialized(ctx, "2024-01-03"))
	assert.Len(t, tr.State().Tracking, 1)

	assert.Error(t, tr.EnsureDateInitialized(ctx, "bad-date"))
}

func TestMutationsArePersisted(t *testing.T) {
	tr, st := newTestTracker(t)
	ctx := context.Background()

	_, _, err := tr.IncrementDaily(ctx, "2024-01-01", "vegetables")
	require.NoError(t, err)
	_, _, err = tr.IncrementExerciseProgress(ctx, "resistance")
	require.NoError(t, err)

	// Un nouveau tracker rechargé depuis le store voit les mêmes compteurs
	reloaded := NewTracker(ctx, "demo", st)
	assert.Equal(t, 1, reloaded.GetDailyCount("2024-01-01", "vegetables"))
	assert.Equal(t, 1, reloaded.State().FindExerciseItem("resistance").Completed)
}

func TestUpdateSettings(t *testing.T) {
	tr, st := newTestTracker(t)
	ctx := context.Background()

	err := tr.UpdateSettings(ctx, model.UserSettings{
		Notifications: model.NotificationPreference{Enabled: false},
		Theme:         "dark",
		Name:          "Demo User",
	})
	require.NoError(t, err)

	reloaded := NewTracker(ctx, "demo", st)
	assert.Equal(t, "dark", reloaded.State().Settings.Theme)
	assert.Equal(t, "demo", reloaded.State().Settings.Username)
	assert.NotNil(t, reloaded.State().Settings.Notifications.Times)
}
