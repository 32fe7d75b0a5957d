package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placasafe/placasafe-backend/internal/handlers/dto"
	"github.com/placasafe/placasafe-backend/internal/services"
)

// ConfigHandler lida com requisições das regras do sistema
type ConfigHandler struct {
	configService *services.ConfigService
}

// NewConfigHandler cria um novo ConfigHandler
func NewConfigHandler(configService *services.ConfigService) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
	}
}

// GetConfig retorna as regras vigentes
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.configService.Get(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewConfigResponse(cfg))
}

// UpdateConfig substitui as regras do sistema
func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	var req dto.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return
	}

	cfg, err := h.configService.Update(c.Request.Context(), req.ToEntity())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewConfigResponse(cfg))
}
