package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/domain/repositories"
)

// UserService contém a lógica de negócio para gestão de contas.
// Todas as rotas que chegam aqui já passaram pelo guard de admin.
type UserService struct {
	users    repositories.UserRepository
	plates   repositories.PlateRepository
	uow      ports.UnitOfWork
	notifier ports.Notifier
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	users repositories.UserRepository,
	plates repositories.PlateRepository,
	uow ports.UnitOfWork,
	notifier ports.Notifier,
	logger ports.Logger,
) *UserService {
	return &UserService{
		users:    users,
		plates:   plates,
		uow:      uow,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar uma conta
type CreateUserInput struct {
	Username  string
	Password  string
	Name      string
	Role      entities.Role
	MaxPlates *int
}

// CreateUser cria uma nova conta
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	existing, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, storageError(err)
	}
	if existing != nil {
		return nil, domainerrors.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         input.Role,
	}
	if user.Role == entities.RoleTransportadora {
		user.MaxPlates = input.MaxPlates
	}

	if err := user.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, storageError(err)
	}

	s.logger.Info("user created", "username", user.Username, "role", user.Role)
	return user, nil
}

// GetUser busca uma conta por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista contas com filtros
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	users, err := s.users.List(ctx, filters)
	if err != nil {
		return nil, storageError(err)
	}
	return users, nil
}

// UpdateUserInput representa os campos mutáveis de uma conta
type UpdateUserInput struct {
	Name      *string
	MaxPlates *int
}

// UpdateUser atualiza nome e limite de placas de uma conta
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.MaxPlates != nil && user.Role == entities.RoleTransportadora {
		user.MaxPlates = input.MaxPlates
	}

	if err := user.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, storageError(err)
	}

	s.logger.Info("user updated", "username", user.Username)
	return user, nil
}

// UpdatePassword troca a senha de uma conta
func (s *UserService) UpdatePassword(ctx context.Context, id string, password string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if err := s.users.Update(ctx, user); err != nil {
		return storageError(err)
	}

	s.logger.Info("user password updated", "username", user.Username)
	return nil
}

// DeleteUser remove uma conta. Remover uma transportadora remove em
// cascata as suas placas, na mesma transação. O usuário logado não
// pode remover a si mesmo.
func (s *UserService) DeleteUser(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domainerrors.ErrCannotRemoveSelf
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	var removed []*entities.Plate
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if user.IsTransportadora() {
			removed, err = s.plates.ListByTransportadora(txCtx, user.ID)
			if err != nil {
				return err
			}
			if err := s.plates.DeleteByTransportadora(txCtx, user.ID); err != nil {
				return err
			}
		}
		return s.users.Delete(txCtx, user.ID)
	})
	if err != nil {
		return storageError(err)
	}

	s.logger.Info("user removed",
		"username", user.Username,
		"cascaded_plates", len(removed),
	)

	// Notificar os painéis das placas que saíram junto
	for _, plate := range removed {
		s.notifier.Broadcast(ports.Event{Type: ports.EventPlateRemoved, Plate: plate})
	}
	return nil
}
