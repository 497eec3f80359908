package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumenhq/lumen/internal/infrastructure/auth"
	"github.com/lumenhq/lumen/internal/shared/config"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

func newLogin(t *testing.T, password string) (*LoginUseCase, *auth.JWTService) {
	t.Helper()
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	jwt := auth.NewJWTService("test-secret", 1)
	return NewLoginUseCase(config.AdminConfig{Username: "admin", PasswordHash: hash}, hasher, jwt, logger.NewNop()), jwt
}

func TestLogin(t *testing.T) {
	uc, jwt := newLogin(t, "hunter2")

	session, err := uc.Execute(LoginCommand{Username: "admin", Password: "hunter2"})
	require.NoError(t, err)

	claims, err := jwt.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, session.SessionID, claims.SessionID)
}

func TestLogin_Rejects(t *testing.T) {
	uc, _ := newLogin(t, "hunter2")

	for name, cmd := range map[string]LoginCommand{
		"wrong password": {Username: "admin", Password: "hunter3"},
		"wrong username": {Username: "root", Password: "hunter2"},
		"empty":          {},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(cmd)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
		})
	}
}

func TestLogin_NoConfiguredHash(t *testing.T) {
	uc := NewLoginUseCase(config.AdminConfig{Username: "admin"}, auth.NewBcryptPasswordHasher(bcrypt.MinCost), auth.NewJWTService("s", 1), logger.NewNop())
	_, err := uc.Execute(LoginCommand{Username: "admin", Password: ""})
	assert.Error(t, err)
}
