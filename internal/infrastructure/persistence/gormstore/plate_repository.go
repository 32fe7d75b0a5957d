package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
	"github.com/placasafe/placasafe-backend/internal/domain/repositories"
)

// PlateRepository implementa repositories.PlateRepository
type PlateRepository struct {
	db *gorm.DB
}

// NewPlateRepository cria um novo PlateRepository
func NewPlateRepository(db *gorm.DB) repositories.PlateRepository {
	return &PlateRepository{db: db}
}

func (r *PlateRepository) Create(ctx context.Context, plate *entities.Plate) error {
	model := r.toModel(plate)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		// O índice único em number decide cadastros concorrentes
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrDuplicatePlate
		}
		return err
	}

	plate.CreatedAt = model.CreatedAt
	return nil
}

func (r *PlateRepository) FindByID(ctx context.Context, id string) (*entities.Plate, error) {
	var model PlateModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PlateRepository) FindByNumber(ctx context.Context, number string) (*entities.Plate, error) {
	var model PlateModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PlateRepository) Update(ctx context.Context, plate *entities.Plate) error {
	model := r.toModel(plate)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *PlateRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("id = ?", id).Delete(&PlateModel{}).Error
}

func (r *PlateRepository) DeleteByTransportadora(ctx context.Context, transportadoraID string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("transportadora_id = ?", transportadoraID).Delete(&PlateModel{}).Error
}

func (r *PlateRepository) List(ctx context.Context) ([]*entities.Plate, error) {
	var models []*PlateModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PlateRepository) ListByTransportadora(ctx context.Context, transportadoraID string) ([]*entities.Plate, error) {
	var models []*PlateModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("transportadora_id = ?", transportadoraID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PlateRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	if err := db.Model(&PlateModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PlateRepository) CountByTransportadora(ctx context.Context, transportadoraID string) (int64, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&PlateModel{}).
		Where("transportadora_id = ?", transportadoraID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Conversores
func (r *PlateRepository) toModel(plate *entities.Plate) *PlateModel {
	return &PlateModel{
		ID:                 plate.ID,
		Number:             plate.Number,
		TransportadoraID:   plate.TransportadoraID,
		TransportadoraName: plate.TransportadoraName,
		CreatedAt:          plate.CreatedAt,
		ScheduledDate:      plate.ScheduledDate,
		Observations:       plate.Observations,
		ArrivalConfirmed:   plate.ArrivalConfirmed,
		DepartureConfirmed: plate.DepartureConfirmed,
	}
}

func (r *PlateRepository) toEntity(model *PlateModel) *entities.Plate {
	return &entities.Plate{
		ID:                 model.ID,
		Number:             model.Number,
		TransportadoraID:   model.TransportadoraID,
		TransportadoraName: model.TransportadoraName,
		CreatedAt:          model.CreatedAt,
		ScheduledDate:      model.ScheduledDate,
		Observations:       model.Observations,
		ArrivalConfirmed:   model.ArrivalConfirmed,
		DepartureConfirmed: model.DepartureConfirmed,
	}
}

func (r *PlateRepository) toEntities(models []*PlateModel) []*entities.Plate {
	plates := make([]*entities.Plate, 0, len(models))
	for _, model := range models {
		plates = append(plates, r.toEntity(model))
	}
	return plates
}
