package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	"github.com/placasafe/placasafe-backend/internal/domain/repositories"
)

// WindowRepository implementa repositories.WindowRepository
type WindowRepository struct {
	db *gorm.DB
}

// NewWindowRepository cria um novo WindowRepository
func NewWindowRepository(db *gorm.DB) repositories.WindowRepository {
	return &WindowRepository{db: db}
}

func (r *WindowRepository) Create(ctx context.Context, window *entities.SchedulingWindow) error {
	model := r.toModel(window)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	window.CreatedAt = model.CreatedAt
	window.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *WindowRepository) FindByID(ctx context.Context, id string) (*entities.SchedulingWindow, error) {
	var model SchedulingWindowModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *WindowRepository) Update(ctx context.Context, window *entities.SchedulingWindow) error {
	model := r.toModel(window)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *WindowRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("id = ?", id).Delete(&SchedulingWindowModel{}).Error
}

func (r *WindowRepository) List(ctx context.Context) ([]*entities.SchedulingWindow, error) {
	var models []*SchedulingWindowModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("start_date ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	windows := make([]*entities.SchedulingWindow, 0, len(models))
	for _, model := range models {
		windows = append(windows, r.toEntity(model))
	}
	return windows, nil
}

// Conversores
func (r *WindowRepository) toModel(window *entities.SchedulingWindow) *SchedulingWindowModel {
	return &SchedulingWindowModel{
		ID:        window.ID,
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
		StartTime: window.StartTime,
		EndTime:   window.EndTime,
		IsActive:  window.IsActive,
		CreatedAt: window.CreatedAt,
		UpdatedAt: window.UpdatedAt,
	}
}

func (r *WindowRepository) toEntity(model *SchedulingWindowModel) *entities.SchedulingWindow {
	return &entities.SchedulingWindow{
		ID:        model.ID,
		StartDate: model.StartDate,
		EndDate:   model.EndDate,
		StartTime: model.StartTime,
		EndTime:   model.EndTime,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
