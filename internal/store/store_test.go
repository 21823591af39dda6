package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/mokobill/MedTrack/internal/models"
)

func TestDefaultStateMatchesCatalog(t *testing.T) {
	state := DefaultState()
	assert.Len(t, state.FoodItems, 6)
	assert.Len(t, state.ExerciseItems, 1)
	assert.NotEmpty(t, state.WorkoutExercises)
	assert.NotNil(t, state.Tracking)
	assert.NotNil(t, state.WeeklyTracking)
	assert.True(t, state.Settings.Notifications.Enabled)
	assert.Equal(t, "light", state.Settings.Theme)
	for _, item := range state.ExerciseItems {
		assert.Zero(t, item.Completed)
	}
}

func TestMemoryStoreLoadUnknownUserGivesDefaults(t *testing.T) {
	st := NewMemoryStore("test")
	state := st.Load(context.Background(), "nobody")
	require.NotNil(t, state)
	assert.Len(t, state.FoodItems, 6)
	assert.Empty(t, state.Tracking)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemoryStore("test")
	ctx := context.Background()

	state := DefaultState()
	state.Tracking["2024-01-01"] = &model.DailyTracking{
		Date:  "2024-01-01",
		Items: map[string]int{"fruits": 2},
	}
	state.ExerciseItems[0].Completed = 2
	state.LastWeekStart = "2024-01-01"
	require.NoError(t, st.Save(ctx, "demo", state))

	loaded := st.Load(ctx, "demo")
	assert.Equal(t, 2, loaded.Tracking["2024-01-01"].Items["fruits"])
	assert.Equal(t, "2024-01-01", loaded.LastWeekStart)
	// Le rechargement conserve la progression d'exercice
	assert.Equal(t, 2, loaded.ExerciseItems[0].Completed)

	require.NoError(t, st.Clear(ctx, "demo"))
	cleared := st.Load(ctx, "demo")
	assert.Empty(t, cleared.Tracking)
}

func TestMemoryStoreIsolatesUsers(t *testing.T) {
	st := NewMemoryStore("test")
	ctx := context.Background()

	state := DefaultState()
	state.Tracking["2024-01-01"] = &model.DailyTracking{
		Date:  "2024-01-01",
		Items: map[string]int{"nuts": 1},
	}
	require.NoError(t, st.Save(ctx, "alice", state))

	other := st.Load(ctx, "bob")
	assert.Empty(t, other.Tracking)
}

func TestMergeWithDefaultsRefreshesCatalogDefinitions(t *testing.T) {
	// Un état sauvegardé avec des définitions périmées reprend les cibles
	// du catalogue sans perdre les compteurs ni les enregistrements
	saved := &model.UserState{
		FoodItems: []model.FoodItem{
			{ID: "fruits", Name: "Old Fruits", ServingsPerDay: 99, TrackingPeriod: model.PeriodDaily},
		},
		ExerciseItems: []model.ExerciseItem{
			{ID: "resistance", Frequency: 99, Completed: 2},
		},
		Tracking: map[string]*model.DailyTracking{
			"2024-01-01": {Date: "2024-01-01", Items: map[string]int{"fruits": 3}},
		},
		LastWeekStart: "2024-01-01",
		Settings: model.UserSettings{
			Theme: "dark",
		},
	}

	merged := mergeWithDefaults(saved)
	assert.Len(t, merged.FoodItems, 6)

	var fruits *model.FoodItem
	for i := range merged.FoodItems {
		if merged.FoodItems[i].ID == "fruits" {
			fruits = &merged.FoodItems[i]
		}
	}
	require.NotNil(t, fruits)
	assert.Equal(t, 3, fruits.ServingsPerDay)
	assert.Equal(t, "Fruits", fruits.Name)

	assert.Equal(t, 3, merged.ExerciseItems[0].Frequency)
	assert.Equal(t, 2, merged.ExerciseItems[0].Completed)
	assert.Equal(t, 3, merged.Tracking["2024-01-01"].Items["fruits"])
	assert.Equal(t, "2024-01-01", merged.LastWeekStart)
	assert.Equal(t, "dark", merged.Settings.Theme)
	assert.NotNil(t, merged.Settings.Notifications.Times)
}
