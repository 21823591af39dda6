package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mokobill/MedTrack/internal/database"
	"github.com/mokobill/MedTrack/internal/middleware"
	"github.com/mokobill/MedTrack/internal/utils"
)

type registerDeviceRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform,omitempty"`
}

// RegisterDevice enregistre (ou rafraîchit) un device token de push
// pour l'utilisateur. La livraison des notifications reste externe ;
// le backend ne fait que la comptabilité des tokens.
func RegisterDevice(w http.ResponseWriter, r *http.Request) {
	username, err := middleware.GetUsernameFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req registerDeviceRequest
	if err := utils.DecodeJSON(r, &req); err != nil || req.Token == "" {
		utils.Error(w, http.StatusBadRequest, "missing device token")
		return
	}
	if req.Platform == "" {
		req.Platform = "web"
	}

	_, err = database.DB.Exec(r.Context(),
		`INSERT INTO device_tokens(username, token, platform)
		 VALUES($1, $2, $3)
		 ON CONFLICT (token) DO UPDATE
		 SET username = EXCLUDED.username, platform = EXCLUDED.platform, last_seen_at = NOW()`,
		username, req.Token, req.Platform,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not register device: "+err.Error())
		return
	}

	utils.Message(w, "device registered")
}

// UnregisterDevice supprime un device token
func UnregisterDevice(w http.ResponseWriter, r *http.Request) {
	username, err := middleware.GetUsernameFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	token := mux.Vars(r)["token"]

	res, err := database.DB.Exec(r.Context(),
		`DELETE FROM device_tokens WHERE token=$1 AND username=$2`,
		token, username,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not unregister device: "+err.Error())
		return
	}
	if res.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "device token not found")
		return
	}

	utils.Message(w, "device unregistered")
}

// GetDevices liste les device tokens de l'utilisateur
func GetDevices(w http.ResponseWriter, r *http.Request) {
	username, err := middleware.GetUsernameFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	rows, err := database.DB.Query(r.Context(),
		`SELECT token, platform, created_at, last_seen_at
		 FROM device_tokens WHERE username=$1 ORDER BY created_at`,
		username,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not list devices: "+err.Error())
		return
	}
	defer rows.Close()

	type device struct {
		Token      string    `json:"token"`
		Platform   string    `json:"platform"`
		CreatedAt  time.Time `json:"createdAt"`
		LastSeenAt time.Time `json:"lastSeenAt"`
	}
	devices := []device{}
	for rows.Next() {
		var d device
		if err := rows.Scan(&d.Token, &d.Platform, &d.CreatedAt, &d.LastSeenAt); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan device: "+err.Error())
			return
		}
		devices = append(devices, d)
	}

	utils.Success(w, devices)
}
