package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"quiz-maker/internal/config"
	"quiz-maker/internal/domain"
)

const tokenTypeAccess = "access"

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AccessClaims are the claims of a student access token. Subject is the student id.
type AccessClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies student access tokens.
type AuthService interface {
	IssueToken(studentID string) (string, time.Time, error)
	ValidateToken(tokenString string) (*AccessClaims, error)
}

type authServiceImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authCfg config.AuthConfig) (AuthService, error) {
	if authCfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	ttl := authCfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &authServiceImpl{secret: []byte(authCfg.JWTSecret), ttl: ttl, now: time.Now}, nil
}

func (s *authServiceImpl) IssueToken(studentID string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := AccessClaims{
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   studentID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *authServiceImpl) ValidateToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, domain.NewError(domain.CodeUnauthorized, "invalid or expired token", errors.Join(ErrInvalidJWTToken, err))
	}
	if claims.TokenType != tokenTypeAccess || claims.Subject == "" {
		return nil, domain.NewError(domain.CodeUnauthorized, "not an access token", ErrInvalidJWTToken)
	}
	return claims, nil
}
