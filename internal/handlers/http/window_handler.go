package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	"github.com/placasafe/placasafe-backend/internal/handlers/dto"
	"github.com/placasafe/placasafe-backend/internal/services"
)

// WindowHandler lida com requisições das janelas de agendamento
type WindowHandler struct {
	windowService *services.WindowService
}

// NewWindowHandler cria um novo WindowHandler
func NewWindowHandler(windowService *services.WindowService) *WindowHandler {
	return &WindowHandler{
		windowService: windowService,
	}
}

// ListWindows lista todas as janelas de agendamento
func (h *WindowHandler) ListWindows(c *gin.Context) {
	windows, err := h.windowService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWindowListResponse(windows))
}

// CreateWindow cria uma janela de agendamento
func (h *WindowHandler) CreateWindow(c *gin.Context) {
	var req dto.CreateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	window, err := h.windowService.Create(c.Request.Context(), &entities.SchedulingWindow{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  isActive,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewWindowResponse(window))
}

// UpdateWindow atualiza parcialmente uma janela de agendamento
func (h *WindowHandler) UpdateWindow(c *gin.Context) {
	var req dto.UpdateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return
	}

	window, err := h.windowService.Update(c.Request.Context(), c.Param("windowId"), func(w *entities.SchedulingWindow) {
		if req.StartDate != nil {
			w.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			w.EndDate = *req.EndDate
		}
		if req.StartTime != nil {
			w.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			w.EndTime = *req.EndTime
		}
		if req.IsActive != nil {
			w.IsActive = *req.IsActive
		}
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWindowResponse(window))
}

// DeleteWindow remove uma janela de agendamento
func (h *WindowHandler) DeleteWindow(c *gin.Context) {
	if err := h.windowService.Delete(c.Request.Context(), c.Param("windowId")); err != nil {
		RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
