package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.True(t, Validate("admin", "1998"))
	assert.True(t, Validate("demo", "0000"))
	assert.True(t, Validate("MEDAL001", "0000"))
	assert.True(t, Validate("MEDAL040", "0000"))

	assert.False(t, Validate("admin", "0000"))
	assert.False(t, Validate("MEDAL041", "0000"))
	assert.False(t, Validate("medal001", "0000"))
	assert.False(t, Validate("", ""))
}

func TestRoster(t *testing.T) {
	roster := Roster()
	// admin + demo + 40 participants
	assert.Len(t, roster, 42)

	// La copie est détachée de l'annuaire interne
	roster[0].Username = "mallory"
	assert.True(t, Exists("admin"))
	assert.False(t, Exists("mallory"))
}

func TestExists(t *testing.T) {
	assert.True(t, Exists("demo"))
	assert.True(t, Exists("MEDAL017"))
	assert.False(t, Exists("MEDAL000"))
	assert.False(t, Exists("root"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Administrator", DisplayName("admin"))
	assert.Equal(t, "Demo User", DisplayName("demo"))
	assert.Equal(t, "MEDAL003", DisplayName("MEDAL003"))
}
