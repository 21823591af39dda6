// Package tracking porte l'agrégat de suivi vivant d'un utilisateur
// authentifié : compteurs journaliers et hebdomadaires, progression des
// objectifs d'exercice et sessions d'entraînement. Chaque mutation est
// persistée immédiatement dans le store clé/valeur.
package tracking

import (
	"context"
	"fmt"

	model "github.com/mokobill/MedTrack/internal/models"
	"github.com/mokobill/MedTrack/internal/period"
	"github.com/mokobill/MedTrack/internal/store"
)

// Tracker est lié à un utilisateur explicite ; l'identité est passée à
// la construction, jamais résolue globalement.
type Tracker struct {
	username string
	store    store.Store
	state    *model.UserState
}

// NewTracker charge l'état de l'utilisateur depuis le store. Un store
// illisible donne un état par défaut, jamais une erreur.
func NewTracker(ctx context.Context, username string, st store.Store) *Tracker {
	return &Tracker{
		username: username,
		store:    st,
		state:    st.Load(ctx, username),
	}
}

// State expose l'agrégat courant (lecture seule pour les appelants)
func (t *Tracker) State() *model.UserState {
	return t.state
}

// Username retourne l'identité liée au tracker
func (t *Tracker) Username() string {
	return t.username
}

func (t *Tracker) save(ctx context.Context) error {
	return t.store.Save(ctx, t.username, t.state)
}

// dailyRecord retourne l'enregistrement journalier, créé si nécessaire
func (t *Tracker) dailyRecord(date string) *model.DailyTracking {
	rec, ok := t.state.Tracking[date]
	if !ok {
		rec = &model.DailyTracking{Date: date, Items: map[string]int{}}
		t.state.Tracking[date] = rec
	}
	if rec.Items == nil {
		rec.Items = map[string]int{}
	}
	return rec
}

// weeklyRecord retourne l'enregistrement hebdomadaire, créé si nécessaire
func (t *Tracker) weeklyRecord(weekStart string) *model.WeeklyTracking {
	rec, ok := t.state.WeeklyTracking[weekStart]
	if !ok {
		rec = &model.WeeklyTracking{WeekStart: weekStart, Items: map[string]int{}}
		t.state.WeeklyTracking[weekStart] = rec
	}
	if rec.Items == nil {
		rec.Items = map[string]int{}
	}
	return rec
}

// GetDailyCount retourne le compteur d'un item pour une date (0 par défaut)
func (t *Tracker) GetDailyCount(date, itemID string) int {
	if rec, ok := t.state.Tracking[date]; ok {
		return rec.Items[itemID]
	}
	return 0
}

// GetWeeklyCount retourne le compteur d'un item pour une semaine (0 par défaut)
func (t *Tracker) GetWeeklyCount(weekStart, itemID string) int {
	if rec, ok := t.state.WeeklyTracking[weekStart]; ok {
		return rec.Items[itemID]
	}
	return 0
}

// IncrementDaily incrémente le compteur journalier d'un item et persiste.
// Le booléen vaut true seulement quand le nouveau compte atteint
// exactement la cible, pour que la notification de complétion parte une
// seule fois par franchissement.
func (t *Tracker) IncrementDaily(ctx context.Context, date, itemID string) (int, bool, error) {
	rec := t.dailyRecord(date)
	rec.Items[itemID]++
	count := rec.Items[itemID]

	justReached := false
	if item := t.state.FindFoodItem(itemID); item != nil && item.TrackingPeriod == model.PeriodDaily {
		justReached = count == item.ServingsPerDay
	}

	if err := t.save(ctx); err != nil {
		return count, justReached, err
	}
	return count, justReached, nil
}

// IncrementWeekly est l'équivalent hebdomadaire d'IncrementDaily
func (t *Tracker) IncrementWeekly(ctx context.Context, weekStart, itemID string) (int, bool, error) {
	rec := t.weeklyRecord(weekStart)
	rec.Items[itemID]++
	count := rec.Items[itemID]

	justReached := false
	if item := t.state.FindFoodItem(itemID); item != nil && item.TrackingPeriod == model.PeriodWeekly {
		justReached = count == item.ServingsPerWeek
	}

	if err := t.save(ctx); err != nil {
		return count, justReached, err
	}
	return count, justReached, nil
}

// DecrementDaily décrémente un compteur journalier. Sous zéro : no-op
// silencieux, rien n'est persisté.
func (t *Tracker) DecrementDaily(ctx context.Context, date, itemID string) (int, error) {
	rec, ok := t.state.Tracking[date]
	if !ok || rec.Items[itemID] <= 0 {
		return t.GetDailyCount(date, itemID), nil
	}
	rec.Items[itemID]--
	if err := t.save(ctx); err != nil {
		return rec.Items[itemID], err
	}
	return rec.Items[itemID], nil
}

// DecrementWeekly est l'équivalent hebdomadaire de DecrementDaily
func (t *Tracker) DecrementWeekly(ctx context.Context, weekStart, itemID string) (int, error) {
	rec, ok := t.state.WeeklyTracking[weekStart]
	if !ok || rec.Items[itemID] <= 0 {
		return t.GetWeeklyCount(weekStart, itemID), nil
	}
	rec.Items[itemID]--
	if err := t.save(ctx); err != nil {
		return rec.Items[itemID], err
	}
	return rec.Items[itemID], nil
}

// IncrementExerciseProgress avance le compteur Completed d'un objectif
// d'exercice. À la cible : no-op. Le booléen suit la même règle
// d'égalité exacte que les incréments alimentaires.
func (t *Tracker) IncrementExerciseProgress(ctx context.Context, exerciseID string) (int, bool, error) {
	item := t.state.FindExerciseItem(exerciseID)
	if item == nil {
		return 0, false, fmt.Errorf("unknown exercise item %q", exerciseID)
	}
	if item.Completed >= item.Frequency {
		return item.Completed, false, nil
	}

	item.Completed++
	justReached := item.Completed == item.Frequency

	if err := t.save(ctx); err != nil {
		return item.Completed, justReached, err
	}
	return item.Completed, justReached, nil
}

// ApplyWeekRollover applique la transition de semaine : crée
// l'enregistrement hebdomadaire vide et remet les compteurs d'exercice à
// zéro. Idempotent — rappeler avec la semaine déjà courante ne fait rien.
func (t *Tracker) ApplyWeekRollover(ctx context.Context, newWeekStart string) error {
	if t.state.LastWeekStart == newWeekStart {
		return nil
	}

	t.weeklyRecord(newWeekStart)
	for i := range t.state.ExerciseItems {
		t.state.ExerciseItems[i].Completed = 0
	}
	t.state.LastWeekStart = newWeekStart

	return t.save(ctx)
}

// EnsureDateInitialized crée l'enregistrement journalier de la date et
// celui de la semaine qui la contient s'ils n'existent pas encore
func (t *Tracker) EnsureDateInitialized(ctx context.Context, date string) error {
	weekStart, err := period.WeekStartKeyFor(date)
	if err != nil {
		return err
	}

	_, hadDay := t.state.Tracking[date]
	_, hadWeek := t.state.WeeklyTracking[weekStart]

	t.dailyRecord(date)
	t.weeklyRecord(weekStart)
	if t.state.LastWeekStart == "" {
		t.state.LastWeekStart = weekStart
	}

	if hadDay && hadWeek {
		return nil
	}
	return t.save(ctx)
}

// EnsureCurrent fait avancer l'agrégat jusqu'à aujourd'hui : rollover
// hebdomadaire si la semaine a changé, puis initialisation de la date du
// jour. Sûr à rappeler à chaque requête.
func (t *Tracker) EnsureCurrent(ctx context.Context) error {
	if t.state.LastWeekStart != "" && period.HasWeekRolledOver(t.state.LastWeekStart) {
		if err := t.ApplyWeekRollover(ctx, period.CurrentWeekStartKey()); err != nil {
			return err
		}
	}
	return t.EnsureDateInitialized(ctx, period.CurrentDateKey())
}

// UpdateSettings remplace les réglages utilisateur et persiste
func (t *Tracker) UpdateSettings(ctx context.Context, settings model.UserSettings) error {
	settings.Username = t.username
	if settings.Notifications.Times == nil {
		settings.Notifications.Times = []string{}
	}
	t.state.Settings = settings
	return t.save(ctx)
}
