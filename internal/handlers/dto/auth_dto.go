package dto

import "github.com/placasafe/placasafe-backend/internal/domain/entities"

// LoginRequest representa a requisição de autenticação
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de autenticação com token JWT
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewLoginResponse cria a resposta de login a partir do usuário autenticado
func NewLoginResponse(token string, user *entities.User) LoginResponse {
	return LoginResponse{
		Token: token,
		User:  NewUserResponse(user),
	}
}
