package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobboard/internal/models"
)

// tokenTTL matches the 7-day bearer token lifetime.
const tokenTTL = 7 * 24 * time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenService issues and verifies the signed bearer tokens. It is a pure
// function of the signing secret and the clock; nothing is persisted.
type TokenService interface {
	Issue(userID, email, role string) (string, error)
	Verify(tokenString string) (*models.Claims, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) TokenService {
	return &tokenService{secret: []byte(secret), ttl: tokenTTL}
}

func (s *tokenService) Issue(userID, email, role string) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *tokenService) Verify(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is what we expect
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
