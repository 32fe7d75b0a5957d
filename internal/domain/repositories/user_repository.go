package repositories

import (
	"context"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de contas.
// Buscas por id/username retornam (nil, nil) quando não há registro.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
	ListTransportadoras(ctx context.Context) ([]*entities.User, error)
	Count(ctx context.Context) (int64, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Role     *entities.Role
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}
