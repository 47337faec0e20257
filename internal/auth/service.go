package auth

import (
	"fmt"
	"time"

	"pulso-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the authenticated employee identity. Tokens are issued by
// the external identity provider; this service only verifies them.
type Claims struct {
	EmployeeID   uuid.UUID   `json:"employee_id"`
	Registration string      `json:"registration"`
	Role         models.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthService validates shared-secret JWTs
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// GenerateJWT issues a short-lived token for the given identity. Used by
// tests and local development; production tokens come from the IdP.
func (s *AuthService) GenerateJWT(employeeID uuid.UUID, registration string, role models.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		EmployeeID:   employeeID,
		Registration: registration,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
