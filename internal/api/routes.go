package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/mokobill/MedTrack/internal/handler"
	"github.com/mokobill/MedTrack/internal/middleware"
	"github.com/mokobill/MedTrack/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/session", handler.CheckSession).Methods(http.MethodGet)

	// Catalogue
	r.HandleFunc("/catalog", handler.GetCatalog).Methods(http.MethodGet)

	// Suivi alimentaire et exercice
	authenticatedRoutes.HandleFunc("/tracking/today", handler.GetToday).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/tracking/day/{date}", handler.GetTrackingDay).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/tracking/week/{weekStart}", handler.GetTrackingWeek).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/tracking/food/{itemId}/increment", handler.IncrementFood).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/tracking/food/{itemId}/decrement", handler.DecrementFood).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/tracking/exercise/{itemId}/complete", handler.CompleteExercise).Methods(http.MethodPost)

	// Conformité
	authenticatedRoutes.HandleFunc("/compliance/daily/{date}", handler.GetDailyCompliance).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/compliance/weekly/{weekStart}", handler.GetWeeklyCompliance).Methods(http.MethodGet)

	// Sessions d'entraînement
	authenticatedRoutes.HandleFunc("/workouts", handler.StartWorkout).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/workouts", handler.GetWorkouts).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/workouts/{sessionId}/sets", handler.AddWorkoutSet).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/workouts/{sessionId}/sets/{setId}/complete", handler.CompleteWorkoutSet).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/workouts/{sessionId}/finish", handler.FinishWorkout).Methods(http.MethodPost)

	// Réglages et notifications
	authenticatedRoutes.HandleFunc("/settings", handler.GetSettings).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/settings", handler.UpdateSettings).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/notifications/permission", handler.SetNotificationPermission).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/notifications/schedule", handler.ScheduleNotifications).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/notifications/schedule", handler.CancelNotifications).Methods(http.MethodDelete)

	// Device tokens (comptabilité push)
	authenticatedRoutes.HandleFunc("/devices", handler.GetDevices).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/devices", handler.RegisterDevice).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/devices/{token}", handler.UnregisterDevice).Methods(http.MethodDelete)

	// Journal d'accès
	authenticatedRoutes.HandleFunc("/access", handler.TrackAccess).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/access/stats", handler.GetAccessStats).Methods(http.MethodGet)

	// Export hebdomadaire multi-utilisateurs
	authenticatedRoutes.HandleFunc("/export/weekly", handler.ExportWeeklyReport).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
