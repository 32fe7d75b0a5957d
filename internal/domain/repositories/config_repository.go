package repositories

import (
	"context"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
)

// ConfigRepository persiste o registro singleton de configuração.
// Get devolve os padrões quando o registro ainda não foi gravado.
type ConfigRepository interface {
	Get(ctx context.Context) (*entities.SystemConfig, error)
	Save(ctx context.Context, cfg *entities.SystemConfig) error
}

// WindowRepository persiste as janelas de agendamento
type WindowRepository interface {
	Create(ctx context.Context, window *entities.SchedulingWindow) error
	FindByID(ctx context.Context, id string) (*entities.SchedulingWindow, error)
	Update(ctx context.Context, window *entities.SchedulingWindow) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.SchedulingWindow, error)
}
