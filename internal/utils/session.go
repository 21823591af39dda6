package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mokobill/MedTrack/internal/database"
)

// SessionDuration durée de validité d'une session (24h)
const SessionDuration = 24 * time.Hour

// CreateSession crée une nouvelle session pour un utilisateur du roster
func CreateSession(ctx context.Context, username, ipAddress, userAgent string) (string, error) {
	token := uuid.NewString()
	now := time.Now()

	var sessionID string
	err := database.DB.QueryRow(ctx,
		`INSERT INTO sessions(username, token, ip_address, user_agent, is_active, created_at, expires_at)
		 VALUES($1, $2, $3, $4, true, $5, $6)
		 RETURNING id`,
		username, token, ipAddress, userAgent, now, now.Add(SessionDuration),
	).Scan(&sessionID)

	if err != nil {
		return "", err
	}

	return token, nil
}

// ValidateSession retourne le nom d'utilisateur associé à un token encore valide
func ValidateSession(ctx context.Context, token string) (string, error) {
	var username string
	err := database.DB.QueryRow(ctx,
		`SELECT username FROM sessions
		 WHERE token=$1 AND is_active=true AND expires_at > NOW() AND deleted_at IS NULL`,
		token,
	).Scan(&username)
	if err != nil {
		return "", fmt.Errorf("token not found or expired")
	}
	return username, nil
}

// InvalidateSession invalide une session (soft delete)
func InvalidateSession(ctx context.Context, token string) error {
	res, err := database.DB.Exec(ctx,
		`UPDATE sessions
		 SET is_active=false, expires_at=NOW(), deleted_at=NOW()
		 WHERE token=$1 AND is_active=true AND deleted_at IS NULL`,
		token,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("session introuvable ou déjà invalide")
	}
	return nil
}
