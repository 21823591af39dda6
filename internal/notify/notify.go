// Package notify planifie les rappels alimentaires : 3 à 5 horaires
// aléatoires entre 08:00 et 21:00, un message templaté par rappel.
// Le service est un collaborateur injecté avec un cycle de vie explicite
// (New, ScheduleAll, CancelAll) — pas un singleton de module. La
// livraison effective est déléguée au callback d'envoi.
package notify

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	model "github.com/mokobill/MedTrack/internal/models"
	"github.com/mokobill/MedTrack/internal/utils"
)

// Fenêtre de rappel : entre 8h et 21h heure locale
const (
	reminderStartHour = 8
	reminderEndHour   = 21
)

var reminderTemplates = []string{
	"Have you had your %s today?",
	"Don't forget about your %s goal!",
	"Time for some %s?",
	"Remember to track your %s intake!",
	"How's your %s progress today?",
}

// SendFunc livre un message à l'utilisateur (push, log, ...)
type SendFunc func(title, body string)

// Service planifie et annule les rappels. Les timers tirent sur leurs
// propres goroutines, d'où le mutex — le reste du cœur est synchrone.
type Service struct {
	mu      sync.Mutex
	timers  []*time.Timer
	granted bool
	send    SendFunc
	rng     *rand.Rand
	now     func() time.Time
}

// New construit un service avec le callback d'envoi fourni. Un callback
// nil loggue simplement les messages.
func New(send SendFunc) *Service {
	if send == nil {
		send = func(title, body string) {
			utils.LogInfo("notification: %s — %s", title, body)
		}
	}
	return &Service{
		send: send,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// SetPermission enregistre le résultat de la demande de permission
func (s *Service) SetPermission(granted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.granted = granted
	if !granted {
		s.cancelAllLocked()
	}
}

// HasPermission indique si les rappels sont autorisés
func (s *Service) HasPermission() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.granted
}

// randomTimes génère 3 à 5 horaires HH:MM distincts, triés
func (s *Service) randomTimes() []string {
	count := s.rng.Intn(3) + 3
	seen := map[string]bool{}
	var times []string
	for i := 0; i < count; i++ {
		hour := s.rng.Intn(reminderEndHour-reminderStartHour) + reminderStartHour
		minute := s.rng.Intn(60)
		ts := fmt.Sprintf("%02d:%02d", hour, minute)
		if !seen[ts] {
			seen[ts] = true
			times = append(times, ts)
		}
	}
	sort.Strings(times)
	return times
}

// ScheduleAll remplace les rappels planifiés par une nouvelle fournée
// d'horaires aléatoires. Sans permission ou rappels désactivés : no-op
// silencieux. Chaque rappel se replanifie pour le lendemain après envoi.
func (s *Service) ScheduleAll(settings model.UserSettings, foodItems []model.FoodItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAllLocked()

	if !settings.Notifications.Enabled || !s.granted {
		return
	}

	now := s.now()
	for _, ts := range s.randomTimes() {
		var hour, minute int
		fmt.Sscanf(ts, "%02d:%02d", &hour, &minute)

		next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if next.Before(now) {
			next = next.AddDate(0, 0, 1)
		}

		timer := time.AfterFunc(next.Sub(now), func() {
			s.showReminder(foodItems)
			s.ScheduleAll(settings, foodItems)
		})
		s.timers = append(s.timers, timer)
	}
}

// CancelAll annule tous les rappels en attente. Granularité globale :
// il n'y a pas d'annulation par rappel.
func (s *Service) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAllLocked()
}

func (s *Service) cancelAllLocked() {
	for _, timer := range s.timers {
		timer.Stop()
	}
	s.timers = nil
}

// Pending retourne le nombre de rappels actuellement planifiés
func (s *Service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *Service) showReminder(foodItems []model.FoodItem) {
	s.mu.Lock()
	granted := s.granted
	var item model.FoodItem
	var template string
	if len(foodItems) > 0 {
		item = foodItems[s.rng.Intn(len(foodItems))]
		template = reminderTemplates[s.rng.Intn(len(reminderTemplates))]
	}
	s.mu.Unlock()

	if !granted || template == "" {
		return
	}
	s.send("Mediterranean Diet Reminder", fmt.Sprintf(template, strings.ToLower(item.Name)))
}

// ShowCompletion envoie le message de félicitations quand un objectif
// vient d'être atteint (appelé uniquement sur l'égalité exacte)
func (s *Service) ShowCompletion(itemName string) {
	if !s.HasPermission() {
		return
	}
	s.send("Great job!", fmt.Sprintf("You've completed your %s goal for today!", itemName))
}
