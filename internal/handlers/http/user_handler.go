package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	"github.com/placasafe/placasafe-backend/internal/domain/repositories"
	"github.com/placasafe/placasafe-backend/internal/handlers/dto"
	"github.com/placasafe/placasafe-backend/internal/handlers/middleware"
	"github.com/placasafe/placasafe-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser cria um novo usuário
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		Name:      req.Name,
		Role:      entities.Role(req.Type),
		MaxPlates: req.MaxPlates,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// GetUser busca um usuário por ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListUsers lista usuários, com filtro opcional por papel
func (h *UserHandler) ListUsers(c *gin.Context) {
	var filters repositories.UserFilters
	if roleQuery := c.Query("type"); roleQuery != "" {
		role := entities.Role(roleQuery)
		filters.Role = &role
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filters.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("pageSize")); err == nil && pageSize > 0 {
		filters.PageSize = pageSize
	}

	users, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// UpdateUser atualiza nome e limite de placas de um usuário
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), services.UpdateUserInput{
		Name:      req.Name,
		MaxPlates: req.MaxPlates,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdatePassword troca a senha de um usuário
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), c.Param("id"), req.Password); err != nil {
		RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteUser remove um usuário e as placas da sua transportadora
func (h *UserHandler) DeleteUser(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
