// Package session issues and verifies the per-interview bearer tokens
// returned when an interview is created. A token grants access to that
// interview only.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jonathan/ai-interviewer/internal/config"
)

// Claims bind a session token to one interview.
type Claims struct {
	InterviewID uuid.UUID `json:"interview_id"`
	Phone       string    `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a shared HS256 secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a Service from validated signing configuration.
func NewService(cfg *config.JWTConfig) *Service {
	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(cfg.ExpirationHours) * time.Hour,
	}
}

// Issue signs a token for the interview, valid from now until the
// configured expiration.
func (s *Service) Issue(interviewID uuid.UUID, phone string) (string, error) {
	now := time.Now()
	claims := &Claims{
		InterviewID: interviewID,
		Phone:       phone,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and returns its claims. Any HMAC variant of the
// signing algorithm is accepted; everything else is rejected before the
// signature is checked.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("empty session token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	switch {
	case err != nil:
		return nil, fmt.Errorf("invalid session token: %w", err)
	case !token.Valid:
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
