package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
	"github.com/placasafe/placasafe-backend/internal/domain/repositories"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrUsernameTaken
		}
		return err
	}

	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("id = ?", id).Delete(&UserModel{}).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&UserModel{}).Order("created_at ASC")

	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	query = query.Limit(pageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *UserRepository) ListTransportadoras(ctx context.Context) ([]*entities.User, error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("role = ?", string(entities.RoleTransportadora)).Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	if err := db.Model(&UserModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		Role:         string(user.Role),
		MaxPlates:    user.MaxPlates,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) *entities.User {
	return &entities.User{
		ID:           model.ID,
		Username:     model.Username,
		PasswordHash: model.PasswordHash,
		Name:         model.Name,
		Role:         entities.Role(model.Role),
		MaxPlates:    model.MaxPlates,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (r *UserRepository) toEntities(models []*UserModel) []*entities.User {
	users := make([]*entities.User, 0, len(models))
	for _, model := range models {
		users = append(users, r.toEntity(model))
	}
	return users
}
