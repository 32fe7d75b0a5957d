package dto

import (
	"time"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
)

// CreateUserRequest representa a requisição de criação de usuário
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=6"`
	Name      string `json:"name" binding:"required,max=100"`
	Type      string `json:"type" binding:"required,oneof=admin transportadora portaria"`
	MaxPlates *int   `json:"maxPlates,omitempty" binding:"omitempty,min=1"`
}

// UpdateUserRequest representa a requisição de atualização de usuário
type UpdateUserRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,max=100"`
	MaxPlates *int    `json:"maxPlates,omitempty" binding:"omitempty,min=1"`
}

// UpdatePasswordRequest representa a requisição de troca de senha
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// UserResponse representa um usuário na resposta da API.
// O papel é serializado como "type" para manter compatibilidade com
// os clientes existentes
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	MaxPlates *int      `json:"maxPlates,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse converte a entidade User para o DTO de resposta
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Type:      user.Role.String(),
		MaxPlates: user.MaxPlates,
		CreatedAt: user.CreatedAt,
	}
}

// NewUserListResponse converte uma lista de entidades para DTOs
func NewUserListResponse(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}
