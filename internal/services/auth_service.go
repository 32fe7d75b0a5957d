package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/domain/repositories"
)

// AuthService autentica usuários e emite tokens de acesso
type AuthService struct {
	users  repositories.UserRepository
	tokens ports.TokenIssuer
	logger ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(users repositories.UserRepository, tokens ports.TokenIssuer, logger ports.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Login valida as credenciais e devolve o usuário e um token de acesso.
// Usuário inexistente e senha errada produzem o mesmo erro.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entities.User, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", storageError(err)
	}
	if user == nil {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("failed login attempt", "username", username)
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", "username", username, "role", user.Role)
	return user, token, nil
}
