package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/domain/repositories"
)

// ConfigService gerencia o registro singleton de configuração
type ConfigService struct {
	config repositories.ConfigRepository
	logger ports.Logger
}

// NewConfigService cria um novo ConfigService
func NewConfigService(config repositories.ConfigRepository, logger ports.Logger) *ConfigService {
	return &ConfigService{config: config, logger: logger}
}

// Get retorna a configuração vigente
func (s *ConfigService) Get(ctx context.Context) (*entities.SystemConfig, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return cfg, nil
}

// Update substitui a configuração vigente
func (s *ConfigService) Update(ctx context.Context, cfg *entities.SystemConfig) (*entities.SystemConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.config.Save(ctx, cfg); err != nil {
		return nil, storageError(err)
	}

	s.logger.Info("system config updated",
		"allowed_start", cfg.AllowedStart,
		"allowed_end", cfg.AllowedEnd,
		"max_per_transportadora", cfg.MaxPlatesPerTransportadora,
	)
	return cfg, nil
}

// WindowService gerencia as janelas de agendamento
type WindowService struct {
	windows repositories.WindowRepository
	logger  ports.Logger
}

// NewWindowService cria um novo WindowService
func NewWindowService(windows repositories.WindowRepository, logger ports.Logger) *WindowService {
	return &WindowService{windows: windows, logger: logger}
}

// List retorna todas as janelas
func (s *WindowService) List(ctx context.Context) ([]*entities.SchedulingWindow, error) {
	windows, err := s.windows.List(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return windows, nil
}

// Create adiciona uma janela
func (s *WindowService) Create(ctx context.Context, window *entities.SchedulingWindow) (*entities.SchedulingWindow, error) {
	if err := window.Validate(); err != nil {
		return nil, validationError(err)
	}

	window.ID = uuid.NewString()
	if err := s.windows.Create(ctx, window); err != nil {
		return nil, storageError(err)
	}

	s.logger.Info("scheduling window created", "id", window.ID)
	return window, nil
}

// Update atualiza uma janela existente
func (s *WindowService) Update(ctx context.Context, id string, apply func(*entities.SchedulingWindow)) (*entities.SchedulingWindow, error) {
	window, err := s.windows.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if window == nil {
		return nil, domainerrors.ErrWindowNotFound
	}

	apply(window)
	if err := window.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.windows.Update(ctx, window); err != nil {
		return nil, storageError(err)
	}

	s.logger.Info("scheduling window updated", "id", window.ID)
	return window, nil
}

// Delete remove uma janela
func (s *WindowService) Delete(ctx context.Context, id string) error {
	window, err := s.windows.FindByID(ctx, id)
	if err != nil {
		return storageError(err)
	}
	if window == nil {
		return domainerrors.ErrWindowNotFound
	}

	if err := s.windows.Delete(ctx, id); err != nil {
		return storageError(err)
	}

	s.logger.Info("scheduling window removed", "id", id)
	return nil
}
