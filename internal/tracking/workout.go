package tracking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	model "github.com/mokobill/MedTrack/internal/models"
)

// StartWorkout ouvre une nouvelle session d'entraînement pour un
// exercice du catalogue. Les sessions d'un jour donné sont append-only.
func (t *Tracker) StartWorkout(ctx context.Context, exerciseID, date string) (*model.WorkoutSession, error) {
	found := false
	for _, ex := range t.state.WorkoutExercises {
		if ex.ID == exerciseID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("unknown workout exercise %q", exerciseID)
	}

	session := model.WorkoutSession{
		ID:         uuid.NewString(),
		ExerciseID: exerciseID,
		Date:       date,
		Sets:       []model.ExerciseSet{},
	}
	t.state.WorkoutSessions = append(t.state.WorkoutSessions, session)

	if err := t.save(ctx); err != nil {
		return nil, err
	}
	return &t.state.WorkoutSessions[len(t.state.WorkoutSessions)-1], nil
}

func (t *Tracker) findSession(sessionID string) *model.WorkoutSession {
	for i := range t.state.WorkoutSessions {
		if t.state.WorkoutSessions[i].ID == sessionID {
			return &t.state.WorkoutSessions[i]
		}
	}
	return nil
}

// AddSet ajoute une série à une session encore ouverte
func (t *Tracker) AddSet(ctx context.Context, sessionID string, weight float64, reps int, notes string) (*model.ExerciseSet, error) {
	session := t.findSession(sessionID)
	if session == nil {
		return nil, fmt.Errorf("workout session %q not found", sessionID)
	}
	if session.Finished {
		return nil, fmt.Errorf("workout session %q is already finished", sessionID)
	}

	set := model.ExerciseSet{
		ID:     uuid.NewString(),
		Weight: weight,
		Reps:   reps,
		Notes:  notes,
	}
	session.Sets = append(session.Sets, set)

	if err := t.save(ctx); err != nil {
		return nil, err
	}
	return &session.Sets[len(session.Sets)-1], nil
}

// CompleteSet marque une série comme effectuée. C'est la seule mutation
// autorisée après la fin de la session.
func (t *Tracker) CompleteSet(ctx context.Context, sessionID, setID string) error {
	session := t.findSession(sessionID)
	if session == nil {
		return fmt.Errorf("workout session %q not found", sessionID)
	}

	for i := range session.Sets {
		if session.Sets[i].ID == setID {
			if session.Sets[i].Completed {
				return nil
			}
			session.Sets[i].Completed = true
			return t.save(ctx)
		}
	}
	return fmt.Errorf("set %q not found in session %q", setID, sessionID)
}

// FinishWorkout clôt la session et fige son volume total
func (t *Tracker) FinishWorkout(ctx context.Context, sessionID string, duration int) (*model.WorkoutSession, error) {
	session := t.findSession(sessionID)
	if session == nil {
		return nil, fmt.Errorf("workout session %q not found", sessionID)
	}
	if session.Finished {
		return session, nil
	}

	session.TotalVolume = session.ComputeTotalVolume()
	session.Duration = duration
	session.Finished = true

	if err := t.save(ctx); err != nil {
		return nil, err
	}
	return session, nil
}

// WorkoutsForDate retourne les sessions d'une date donnée
func (t *Tracker) WorkoutsForDate(date string) []model.WorkoutSession {
	var sessions []model.WorkoutSession
	for _, s := range t.state.WorkoutSessions {
		if s.Date == date {
			sessions = append(sessions, s)
		}
	}
	return sessions
}
