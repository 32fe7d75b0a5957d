package gormstore

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	"github.com/placasafe/placasafe-backend/internal/domain/repositories"
)

// configRowID é o id fixo da linha singleton
const configRowID = 1

// ConfigRepository implementa repositories.ConfigRepository
type ConfigRepository struct {
	db *gorm.DB
}

// NewConfigRepository cria um novo ConfigRepository
func NewConfigRepository(db *gorm.DB) repositories.ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) Get(ctx context.Context) (*entities.SystemConfig, error) {
	var model SystemConfigModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", configRowID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.DefaultSystemConfig(), nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ConfigRepository) Save(ctx context.Context, cfg *entities.SystemConfig) error {
	model := r.toModel(cfg)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

// Conversores
func (r *ConfigRepository) toModel(cfg *entities.SystemConfig) *SystemConfigModel {
	days := make([]string, 0, len(cfg.AllowedDays))
	for _, d := range cfg.AllowedDays {
		days = append(days, strconv.Itoa(d))
	}

	return &SystemConfigModel{
		ID:                         configRowID,
		MaxTotalPlates:             cfg.MaxTotalPlates,
		MaxPlatesPerTransportadora: cfg.MaxPlatesPerTransportadora,
		AllowedStart:               cfg.AllowedStart,
		AllowedEnd:                 cfg.AllowedEnd,
		AllowedDays:                strings.Join(days, ","),
	}
}

func (r *ConfigRepository) toEntity(model *SystemConfigModel) *entities.SystemConfig {
	var days []int
	for _, part := range strings.Split(model.AllowedDays, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		days = append(days, d)
	}

	return &entities.SystemConfig{
		MaxTotalPlates:             model.MaxTotalPlates,
		MaxPlatesPerTransportadora: model.MaxPlatesPerTransportadora,
		AllowedStart:               model.AllowedStart,
		AllowedEnd:                 model.AllowedEnd,
		AllowedDays:                days,
	}
}
