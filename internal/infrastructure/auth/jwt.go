package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"incidentdesk/internal/shared/authorization"
)

type TokenType string

const TokenTypeAccess TokenType = "access"

// Claims carries the authenticated identity in the access token. SessionID
// ties the token to a server-side session row so logout can revoke it.
type Claims struct {
	UserID    uint                   `json:"user_id"`
	SessionID string                 `json:"session_id"`
	Role      authorization.UserRole `json:"role"`
	TokenType TokenType              `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs an access token bound to the given session.
func (s *JWTService) Generate(userID uint, sessionID string, role authorization.UserRole) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		UserID:    userID,
		SessionID: sessionID,
		Role:      role,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, exp, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if claims.TokenType != TokenTypeAccess {
			return nil, fmt.Errorf("invalid token type")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
