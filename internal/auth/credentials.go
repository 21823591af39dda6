// Package auth porte l'annuaire d'identifiants de l'étude : un roster
// fixe d'utilisateurs et de codes PIN courts. L'accès est exclusif, il
// n'y a pas d'inscription.
package auth

import (
	"crypto/subtle"
	"fmt"
)

// Credential associe un nom d'utilisateur à son code PIN
type Credential struct {
	Username string `json:"username"`
	PIN      string `json:"-"`
}

var validCredentials = buildRoster()

func buildRoster() []Credential {
	roster := []Credential{
		{Username: "admin", PIN: "1998"},
		{Username: "demo", PIN: "0000"},
	}
	// Participants de l'étude : MEDAL001..MEDAL040, PIN commun
	for i := 1; i <= 40; i++ {
		roster = append(roster, Credential{
			Username: fmt.Sprintf("MEDAL%03d", i),
			PIN:      "0000",
		})
	}
	return roster
}

// Roster retourne une copie de l'annuaire complet
func Roster() []Credential {
	roster := make([]Credential, len(validCredentials))
	copy(roster, validCredentials)
	return roster
}

// Validate vérifie un couple utilisateur/PIN. Comparaison en temps
// constant pour ne pas laisser fuiter la longueur du match.
func Validate(username, pin string) bool {
	for _, cred := range validCredentials {
		userMatch := subtle.ConstantTimeCompare([]byte(cred.Username), []byte(username)) == 1
		pinMatch := subtle.ConstantTimeCompare([]byte(cred.PIN), []byte(pin)) == 1
		if userMatch && pinMatch {
			return true
		}
	}
	return false
}

// Exists indique si un nom d'utilisateur figure dans le roster
func Exists(username string) bool {
	for _, cred := range validCredentials {
		if cred.Username == username {
			return true
		}
	}
	return false
}

var displayNames = map[string]string{
	"admin": "Administrator",
	"demo":  "Demo User",
}

// DisplayName retourne le nom d'affichage d'un utilisateur, ou son
// identifiant à défaut
func DisplayName(username string) string {
	if name, ok := displayNames[username]; ok {
		return name
	}
	return username
}
