package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes the token families issued by the service.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
	TokenVerify  TokenType = "verify"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by every issued token.
type Claims struct {
	UserID  uint      `json:"user_id"`
	IsAdmin bool      `json:"is_admin"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the service's JWTs.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	verifyTTL  time.Duration
}

func NewTokenManager(secret string, accessTTL, refreshTTL, verifyTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		verifyTTL:  verifyTTL,
	}
}

func (m *TokenManager) issue(userID uint, isAdmin bool, typ TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		Type:    typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) GenerateAccessToken(userID uint, isAdmin bool) (string, error) {
	return m.issue(userID, isAdmin, TokenAccess, m.accessTTL)
}

func (m *TokenManager) GenerateRefreshToken(userID uint, isAdmin bool) (string, error) {
	return m.issue(userID, isAdmin, TokenRefresh, m.refreshTTL)
}

func (m *TokenManager) GenerateVerifyToken(userID uint) (string, error) {
	return m.issue(userID, false, TokenVerify, m.verifyTTL)
}

// ParseToken verifies signature and expiry and checks the token type.
func (m *TokenManager) ParseToken(tokenString string, expected TokenType) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != expected {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
