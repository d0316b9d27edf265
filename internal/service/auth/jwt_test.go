package auth_test

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/service/auth"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	m := auth.NewJWTManager("test-secret", "easytolearn", time.Minute)

	token, err := m.Generate("user-42", models.AdminRole)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, models.AdminRole, claims.Role)
	assert.Equal(t, "easytolearn", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := auth.NewJWTManager("secret-one", "easytolearn", time.Minute)
	other := auth.NewJWTManager("secret-two", "easytolearn", time.Minute)

	token, err := m.Generate("user-42", models.ClientRole)
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	m := auth.NewJWTManager("test-secret", "easytolearn", -time.Minute)

	token, err := m.Generate("user-42", models.ClientRole)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, app_errors.ErrTokenExpired)
}

func TestParseGarbage(t *testing.T) {
	m := auth.NewJWTManager("test-secret", "easytolearn", time.Minute)
	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}
