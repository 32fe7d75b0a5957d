package ports

import "github.com/placasafe/placasafe-backend/internal/domain/entities"

// TokenClaims são os dados de identidade carregados no token de acesso
type TokenClaims struct {
	UserID   string
	Username string
	Name     string
	Role     entities.Role
}

// TokenIssuer emite e verifica tokens de acesso
type TokenIssuer interface {
	Issue(user *entities.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}
