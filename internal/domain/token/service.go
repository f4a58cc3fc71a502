package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"
)

var ErrInvalidToken = errors.New("invalid token")

type Servicer interface {
	Issue(userID string, ttl time.Duration) (string, error)
	Validate(token string) (string, error)
}

// Service issues and verifies HS256 bearer tokens. The payload carries only
// the user identifier and the expiry.
type Service struct {
	secret []byte
	log    *slog.Logger
}

func NewService(secret string, log *slog.Logger) *Service {
	return &Service{
		secret: []byte(secret),
		log:    log.With("component", "token_service"),
	}
}

func (s *Service) Issue(userID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": jwt.NewNumericDate(time.Now().Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate возвращает ID пользователя из валидного токена.
// Подпись и срок действия проверяет парсер.
func (s *Service) Validate(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}
