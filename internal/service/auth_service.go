package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nshiba/enquete-api/config"
	"github.com/nshiba/enquete-api/internal/apperr"
	"github.com/rs/zerolog/log"
)

// SessionCookieName is the cookie that carries the admin session token.
const SessionCookieName = "admin_session"

// SessionTTL bounds how long an issued admin session stays valid.
const SessionTTL = 7 * 24 * time.Hour

// AuthService gates the admin area. Login exchanges the configured password
// for a signed session token; Verify checks a presented token's signature and
// expiry. The gate contract stays "one shared admin identity" — there are no
// per-user accounts.
type AuthService interface {
	Login(password string) (string, error)
	Verify(token string) error
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(password string) (string, error) {
	if s.cfg.AdminPassword == "" {
		log.Error().Msg("ADMIN_PASSWORD is not configured, admin login disabled")
		return "", fmt.Errorf("admin password not configured")
	}
	if password != s.cfg.AdminPassword {
		return "", fmt.Errorf("wrong password: %w", apperr.ErrUnauthorized)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

func (s *authService) Verify(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !parsed.Valid {
		return fmt.Errorf("invalid session token: %w", apperr.ErrUnauthorized)
	}
	return nil
}
