package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placasafe/placasafe-backend/internal/handlers/dto"
	"github.com/placasafe/placasafe-backend/internal/services"
)

// AuthHandler lida com requisições de autenticação
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login autentica um usuário e retorna o token JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLoginResponse(token, user))
}
