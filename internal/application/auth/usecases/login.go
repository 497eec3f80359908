package usecases

import (
	"crypto/subtle"

	"github.com/lumenhq/lumen/internal/infrastructure/auth"
	"github.com/lumenhq/lumen/internal/shared/config"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

type PasswordHasher interface {
	Verify(password, hash string) error
}

type SessionIssuer interface {
	Issue(username string) (*auth.Session, error)
}

type LoginCommand struct {
	Username string
	Password string
	IP       string
}

// LoginUseCase checks the single configured admin credential.
type LoginUseCase struct {
	admin  config.AdminConfig
	hasher PasswordHasher
	issuer SessionIssuer
	logger logger.Interface
}

func NewLoginUseCase(admin config.AdminConfig, hasher PasswordHasher, issuer SessionIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		admin:  admin,
		hasher: hasher,
		issuer: issuer,
		logger: logger,
	}
}

func (uc *LoginUseCase) Execute(cmd LoginCommand) (*auth.Session, error) {
	if uc.admin.PasswordHash == "" {
		uc.logger.Warnw("admin login attempted but no password hash is configured", "ip", cmd.IP)
		return nil, errors.NewUnauthorizedError("Invalid username or password")
	}

	// The hash is always checked so a wrong username costs as much as a wrong password.
	userOK := subtle.ConstantTimeCompare([]byte(cmd.Username), []byte(uc.admin.Username)) == 1
	passErr := uc.hasher.Verify(cmd.Password, uc.admin.PasswordHash)
	if !userOK || passErr != nil {
		uc.logger.Warnw("admin login failed", "username", cmd.Username, "ip", cmd.IP)
		return nil, errors.NewUnauthorizedError("Invalid username or password")
	}

	session, err := uc.issuer.Issue(uc.admin.Username)
	if err != nil {
		uc.logger.Errorw("failed to issue admin session", "error", err)
		return nil, errors.WrapInternal("Failed to create session", err)
	}

	uc.logger.Infow("admin logged in", "session_id", session.SessionID, "ip", cmd.IP)
	return session, nil
}
