package entities

import (
	"errors"
	"time"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa uma conta do sistema (admin, transportadora ou portaria)
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Role         Role
	// MaxPlates é o limite individual de placas; relevante apenas para
	// transportadoras. Quando nil, vale o padrão do SystemConfig.
	MaxPlates *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsTransportadora verifica se o usuário é uma transportadora
func (u *User) IsTransportadora() bool {
	return u.Role == RoleTransportadora
}

// PlateLimit retorna o limite de placas da transportadora,
// usando defaultLimit quando não há override individual
func (u *User) PlateLimit(defaultLimit int) int {
	if u.MaxPlates != nil && *u.MaxPlates > 0 {
		return *u.MaxPlates
	}
	return defaultLimit
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	if u.Role != RoleTransportadora && u.MaxPlates != nil {
		return errors.New("max plates only applies to transportadora accounts")
	}

	return nil
}
