package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken("admin", "admin@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, "admin@example.com", claims["email"])
}

func TestValidateAdminTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateAdminToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateAdminTokenRejectsExpired(t *testing.T) {
	token, err := GenerateAdminToken("admin", "admin@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateAdminToken(token)
	assert.Error(t, err)
}
