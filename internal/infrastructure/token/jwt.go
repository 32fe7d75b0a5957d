package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
)

// claims estende as claims registradas com a identidade do usuário
type claims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer implementa ports.TokenIssuer com tokens HS256
type JWTIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewJWTIssuer cria um novo emissor de tokens
func NewJWTIssuer(secret string, expiry time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue emite um token de acesso para o usuário
func (j *JWTIssuer) Issue(user *entities.User) (string, error) {
	now := time.Now()
	c := claims{
		Username: user.Username,
		Name:     user.Name,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify valida o token e extrai as claims de identidade
func (j *JWTIssuer) Verify(tokenString string) (*ports.TokenClaims, error) {
	var c claims

	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthorized
	}

	role := entities.Role(c.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrUnauthorized
	}

	if c.Subject == "" {
		return nil, errors.Join(domainerrors.ErrUnauthorized, errors.New("missing subject"))
	}

	return &ports.TokenClaims{
		UserID:   c.Subject,
		Username: c.Username,
		Name:     c.Name,
		Role:     role,
	}, nil
}
