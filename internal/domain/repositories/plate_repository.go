package repositories

import (
	"context"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
)

// PlateRepository define a interface para persistência de placas.
// Buscas por id/número retornam (nil, nil) quando não há registro.
// A unicidade global do número é garantida por índice no storage;
// Create devolve errors.ErrDuplicatePlate quando o índice rejeita.
type PlateRepository interface {
	Create(ctx context.Context, plate *entities.Plate) error
	FindByID(ctx context.Context, id string) (*entities.Plate, error)
	FindByNumber(ctx context.Context, number string) (*entities.Plate, error)
	Update(ctx context.Context, plate *entities.Plate) error
	Delete(ctx context.Context, id string) error
	DeleteByTransportadora(ctx context.Context, transportadoraID string) error
	List(ctx context.Context) ([]*entities.Plate, error)
	ListByTransportadora(ctx context.Context, transportadoraID string) ([]*entities.Plate, error)
	Count(ctx context.Context) (int64, error)
	CountByTransportadora(ctx context.Context, transportadoraID string) (int64, error)
}
