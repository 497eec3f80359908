// Package auth issues and verifies admin session tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lumenhq/lumen/internal/shared/biztime"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims identifies one admin session.
type Claims struct {
	Username  string `json:"username"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Session is a freshly issued token.
type Session struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
}

type JWTService struct {
	secret     []byte
	sessionExp time.Duration
	issuer     string
}

func NewJWTService(secret string, sessionExpDays int) *JWTService {
	if sessionExpDays <= 0 {
		sessionExpDays = 7
	}
	return &JWTService{
		secret:     []byte(secret),
		sessionExp: time.Duration(sessionExpDays) * 24 * time.Hour,
		issuer:     "lumen",
	}
}

// Issue signs a new HS256 session token for username.
func (s *JWTService) Issue(username string) (*Session, error) {
	now := biztime.NowUTC()
	exp := now.Add(s.sessionExp)
	sessionID := uuid.NewString()

	claims := &Claims{
		Username:  username,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &Session{Token: token, SessionID: sessionID, ExpiresAt: exp}, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Username != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// SessionExp returns how long issued sessions live.
func (s *JWTService) SessionExp() time.Duration {
	return s.sessionExp
}
