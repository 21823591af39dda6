package handler

import (
	"net/http"

	"github.com/mokobill/MedTrack/internal/auth"
	"github.com/mokobill/MedTrack/internal/middleware"
	"github.com/mokobill/MedTrack/internal/tracking"
	"github.com/mokobill/MedTrack/internal/utils"
)

type LoginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

// Login valide un couple utilisateur/PIN du roster et ouvre une session
// de 24h. L'accès est aussi journalisé pour les statistiques de l'étude.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if !auth.Validate(req.Username, req.PIN) {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ctx := r.Context()

	token, err := utils.CreateSession(ctx, req.Username, r.RemoteAddr, r.UserAgent())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	// Initialiser l'état de l'utilisateur et avancer les périodes
	tracker := tracking.NewTracker(ctx, req.Username, appStore)
	if tracker.State().Settings.Name == "" {
		settings := tracker.State().Settings
		settings.Name = auth.DisplayName(req.Username)
		if err := tracker.UpdateSettings(ctx, settings); err != nil {
			utils.LogError("initializing settings for %s: %v", req.Username, err)
		}
	}
	if err := tracker.EnsureCurrent(ctx); err != nil {
		utils.LogError("initializing tracking for %s: %v", req.Username, err)
	}

	// Journal d'accès best-effort : un échec n'empêche pas la connexion
	if err := trackAppAccess(ctx, req.Username); err != nil {
		utils.LogError("tracking access for %s: %v", req.Username, err)
	}

	utils.Success(w, map[string]interface{}{
		"username":    req.Username,
		"displayName": tracker.State().Settings.Name,
		"token":       token,
	})
}

// Logout invalide la session courante
func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := utils.InvalidateSession(r.Context(), token); err != nil {
		utils.Error(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	// Déconnexion : plus de rappels pour cet utilisateur
	notifier.CancelAll()

	utils.Message(w, "logged out")
}

// CheckSession confirme qu'une session est encore valide
func CheckSession(w http.ResponseWriter, r *http.Request) {
	username, err := middleware.GetUsernameFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	utils.Success(w, map[string]interface{}{
		"username":    username,
		"displayName": auth.DisplayName(username),
	})
}
