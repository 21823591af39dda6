// Package store persiste le document agrégat de chaque utilisateur dans
// un store clé/valeur, une clé par utilisateur ("<namespace>-<username>").
// La lecture ne remonte jamais d'erreur bloquante : un document absent ou
// corrompu se replie sur l'état par défaut — cache local best-effort,
// pas une source de vérité.
package store

import (
	"context"
	"sync"

	"github.com/mokobill/MedTrack/internal/catalog"
	model "github.com/mokobill/MedTrack/internal/models"
)

// DefaultNamespace est le préfixe historique des clés de stockage
const DefaultNamespace = "med-diet-tracker-data"

// Store est le collaborateur de persistance clé/valeur
type Store interface {
	// Load retourne l'état de l'utilisateur, ou l'état par défaut si
	// aucune donnée n'est lisible. Ne retourne jamais nil.
	Load(ctx context.Context, username string) *model.UserState
	// Save persiste l'état complet de l'utilisateur
	Save(ctx context.Context, username string, state *model.UserState) error
	// Clear supprime toutes les données de l'utilisateur
	Clear(ctx context.Context, username string) error
}

// DefaultState construit un état vierge à partir du catalogue
func DefaultState() *model.UserState {
	return &model.UserState{
		FoodItems:        catalog.FoodItems(),
		ExerciseItems:    catalog.ExerciseItems(),
		WorkoutExercises: catalog.WorkoutExercises(),
		WorkoutSessions:  []model.WorkoutSession{},
		Tracking:         map[string]*model.DailyTracking{},
		WeeklyTracking:   map[string]*model.WeeklyTracking{},
		Settings: model.UserSettings{
			Notifications: model.NotificationPreference{Enabled: true, Times: []string{}},
			Theme:         "light",
		},
	}
}

// mergeWithDefaults rafraîchit les définitions de catalogue d'un état
// sauvegardé tout en préservant les compteurs de progression et les
// enregistrements de suivi. Les items retirés du catalogue disparaissent,
// les nouveaux apparaissent avec un compteur à zéro.
func mergeWithDefaults(saved *model.UserState) *model.UserState {
	merged := DefaultState()

	for i := range merged.ExerciseItems {
		if prev := saved.FindExerciseItem(merged.ExerciseItems[i].ID); prev != nil {
			merged.ExerciseItems[i].Completed = prev.Completed
		}
	}

	if saved.WorkoutSessions != nil {
		merged.WorkoutSessions = saved.WorkoutSessions
	}
	if saved.Tracking != nil {
		merged.Tracking = saved.Tracking
	}
	if saved.WeeklyTracking != nil {
		merged.WeeklyTracking = saved.WeeklyTracking
	}
	merged.LastWeekStart = saved.LastWeekStart

	merged.Settings = saved.Settings
	if merged.Settings.Theme == "" {
		merged.Settings.Theme = "light"
	}
	if merged.Settings.Notifications.Times == nil {
		merged.Settings.Notifications.Times = []string{}
	}

	return merged
}

// MemoryStore est une implémentation en mémoire, utilisée par les tests
// et comme repli quand Redis est injoignable au démarrage.
type MemoryStore struct {
	mu        sync.RWMutex
	namespace string
	data      map[string][]byte
}

func NewMemoryStore(namespace string) *MemoryStore {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &MemoryStore{
		namespace: namespace,
		data:      map[string][]byte{},
	}
}

func (m *MemoryStore) key(username string) string {
	return m.namespace + "-" + username
}

func (m *MemoryStore) Load(ctx context.Context, username string) *model.UserState {
	m.mu.RLock()
	raw, ok := m.data[m.key(username)]
	m.mu.RUnlock()
	if !ok {
		return DefaultState()
	}
	return decodeState(raw, username)
}

func (m *MemoryStore) Save(ctx context.Context, username string, state *model.UserState) error {
	raw, err := encodeState(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[m.key(username)] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context, username string) error {
	m.mu.Lock()
	delete(m.data, m.key(username))
	m.mu.Unlock()
	return nil
}
