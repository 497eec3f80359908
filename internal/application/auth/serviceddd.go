package auth

import (
	"github.com/lumenhq/lumen/internal/application/auth/usecases"
	infraAuth "github.com/lumenhq/lumen/internal/infrastructure/auth"
	"github.com/lumenhq/lumen/internal/shared/config"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// ServiceDDD handles admin sessions
type ServiceDDD struct {
	loginUC *usecases.LoginUseCase
	jwt     *infraAuth.JWTService
}

func NewServiceDDD(cfg config.AuthConfig, jwt *infraAuth.JWTService, logger logger.Interface) *ServiceDDD {
	hasher := infraAuth.NewBcryptPasswordHasher(cfg.BcryptCost)
	return &ServiceDDD{
		loginUC: usecases.NewLoginUseCase(cfg.Admin, hasher, jwt, logger),
		jwt:     jwt,
	}
}

func (s *ServiceDDD) Login(cmd usecases.LoginCommand) (*infraAuth.Session, error) {
	return s.loginUC.Execute(cmd)
}

// Verify returns the claims of a valid session token.
func (s *ServiceDDD) Verify(token string) (*infraAuth.Claims, error) {
	return s.jwt.Verify(token)
}

func (s *ServiceDDD) SessionExp() int {
	return int(s.jwt.SessionExp().Seconds())
}
