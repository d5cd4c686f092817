package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pageza/labellens/backend/internal/types"
)

// ErrInvalidToken covers every token that fails parsing or validation.
var ErrInvalidToken = errors.New("invalid token")

// AuthService issues and validates the bearer tokens that identify callers.
// Accounts themselves are managed elsewhere.
type AuthService struct {
	jwtSecret []byte
	issuer    string
	ttl       time.Duration
}

var _ IAuthService = (*AuthService)(nil)

func NewAuthService(jwtSecret, issuer string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		issuer:    issuer,
		ttl:       ttl,
	}
}

// GenerateToken signs claims with HS256, filling issuer and expiry when unset.
func (s *AuthService) GenerateToken(claims *types.TokenClaims) (string, error) {
	if claims.UserID == uuid.Nil {
		return "", fmt.Errorf("generate token: missing user id")
	}
	now := time.Now()
	if claims.Issuer == "" {
		claims.Issuer = s.issuer
	}
	if claims.Subject == "" {
		claims.Subject = claims.UserID.String()
	}
	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(now)
	}
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	if claims.Role == "" {
		claims.Role = types.RoleUser
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
