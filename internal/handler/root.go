package handler

import (
	"net/http"

	"github.com/mokobill/MedTrack/internal/catalog"
	"github.com/mokobill/MedTrack/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "MedTrack API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/login", "description": "Connexion utilisateur (username + PIN)"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion utilisateur"},
				{"method": "GET", "path": "/auth/session", "description": "Vérifier la session courante"},
			},
			"catalog": []map[string]string{
				{"method": "GET", "path": "/catalog", "description": "Catalogue des items suivis"},
			},
			"tracking": []map[string]string{
				{"method": "GET", "path": "/tracking/today", "description": "Suivi du jour avec résumé"},
				{"method": "GET", "path": "/tracking/day/{date}", "description": "Enregistrement journalier d'une date"},
				{"method": "GET", "path": "/tracking/week/{weekStart}", "description": "Enregistrement hebdomadaire d'une semaine"},
				{"method": "POST", "path": "/tracking/food/{itemId}/increment", "description": "Incrémenter un item alimentaire"},
				{"method": "POST", "path": "/tracking/food/{itemId}/decrement", "description": "Décrémenter un item alimentaire"},
				{"method": "POST", "path": "/tracking/exercise/{itemId}/complete", "description": "Avancer un objectif d'exercice"},
			},
			"compliance": []map[string]string{
				{"method": "GET", "path": "/compliance/daily/{date}", "description": "Conformité d'une date"},
				{"method": "GET", "path": "/compliance/weekly/{weekStart}", "description": "Conformité moyenne d'une semaine"},
			},
			"workouts": []map[string]string{
				{"method": "POST", "path": "/workouts", "description": "Démarrer une session d'entraînement"},
				{"method": "GET", "path": "/workouts", "description": "Sessions d'une date (?date=)"},
				{"method": "POST", "path": "/workouts/{sessionId}/sets", "description": "Ajouter une série"},
				{"method": "POST", "path": "/workouts/{sessionId}/sets/{setId}/complete", "description": "Marquer une série effectuée"},
				{"method": "POST", "path": "/workouts/{sessionId}/finish", "description": "Clore la session"},
			},
			"settings": []map[string]string{
				{"method": "GET", "path": "/settings", "description": "Réglages utilisateur"},
				{"method": "PUT", "path": "/settings", "description": "Mettre à jour les réglages"},
			},
			"notifications": []map[string]string{
				{"method": "POST", "path": "/notifications/permission", "description": "Enregistrer la permission de notification"},
				{"method": "POST", "path": "/notifications/schedule", "description": "Planifier les rappels"},
				{"method": "DELETE", "path": "/notifications/schedule", "description": "Annuler tous les rappels"},
			},
			"devices": []map[string]string{
				{"method": "GET", "path": "/devices", "description": "Device tokens de l'utilisateur"},
				{"method": "POST", "path": "/devices", "description": "Enregistrer un device token"},
				{"method": "DELETE", "path": "/devices/{token}", "description": "Supprimer un device token"},
			},
			"access": []map[string]string{
				{"method": "POST", "path": "/access", "description": "Journaliser un accès applicatif"},
				{"method": "GET", "path": "/access/stats", "description": "Statistiques d'accès (?start=&end=)"},
			},
			"export": []map[string]string{
				{"method": "GET", "path": "/export/weekly", "description": "Rapport hebdomadaire multi-utilisateurs (?weekStart=&format=csv)"},
			},
		},
	}

	utils.JSON(w, http.StatusOK, routes)
}

// GetCatalog retourne les définitions statiques des items suivis
func GetCatalog(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"foodItems":        catalog.FoodItems(),
		"exerciseItems":    catalog.ExerciseItems(),
		"workoutExercises": catalog.WorkoutExercises(),
	})
}
