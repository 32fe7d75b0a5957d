package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/domain/repositories"
)

func intPtr(v int) *int { return &v }

// defaultUsers são as contas criadas no primeiro boot de um banco vazio
var defaultUsers = []struct {
	username  string
	password  string
	name      string
	role      entities.Role
	maxPlates *int
}{
	{"admin", "admin123", "Administrador", entities.RoleAdmin, nil},
	{"transportadora1", "trans123", "Transportes ABC", entities.RoleTransportadora, intPtr(5)},
	{"transportadora2", "trans456", "Logística XYZ", entities.RoleTransportadora, intPtr(3)},
	{"portaria", "portaria123", "Portaria Principal", entities.RolePortaria, nil},
}

// SeedDefaultUsers popula as contas padrão quando o banco está vazio.
// Execução repetida é inofensiva: com qualquer conta existente, nada é
// feito.
func SeedDefaultUsers(ctx context.Context, users repositories.UserRepository, uow ports.UnitOfWork, logger ports.Logger) error {
	count, err := users.Count(ctx)
	if err != nil {
		return storageError(err)
	}
	if count > 0 {
		return nil
	}

	err = uow.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, seed := range defaultUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			user := &entities.User{
				ID:           uuid.NewString(),
				Username:     seed.username,
				PasswordHash: string(hash),
				Name:         seed.name,
				Role:         seed.role,
				MaxPlates:    seed.maxPlates,
			}
			if err := users.Create(txCtx, user); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storageError(err)
	}

	logger.Info("default users seeded", "count", len(defaultUsers))
	return nil
}
