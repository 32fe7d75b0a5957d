package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placasafe/placasafe-backend/internal/handlers/dto"
	"github.com/placasafe/placasafe-backend/internal/handlers/middleware"
	"github.com/placasafe/placasafe-backend/internal/services"
)

// PlateHandler lida com requisições HTTP do ciclo de vida das placas
type PlateHandler struct {
	plateService *services.PlateService
}

// NewPlateHandler cria um novo PlateHandler
func NewPlateHandler(plateService *services.PlateService) *PlateHandler {
	return &PlateHandler{
		plateService: plateService,
	}
}

// MarkPlate cadastra uma placa para a transportadora autenticada
func (h *PlateHandler) MarkPlate(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	var req dto.MarkPlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return
	}

	plate, err := h.plateService.Register(c.Request.Context(), claims.UserID, services.RegisterPlateInput{
		Number:        req.PlateNumber,
		ScheduledDate: req.ScheduledDate,
		Observations:  req.Observations,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPlateResponse(plate))
}

// ListPlates lista as placas visíveis ao usuário autenticado.
// Transportadoras enxergam apenas as próprias placas
func (h *PlateHandler) ListPlates(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	plates, err := h.plateService.List(c.Request.Context(), claims)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlateListResponse(plates))
}

// ConfirmArrival registra a chegada do veículo no pátio
func (h *PlateHandler) ConfirmArrival(c *gin.Context) {
	plate, err := h.plateService.ConfirmArrival(c.Request.Context(), c.Param("plateId"))
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlateResponse(plate))
}

// ConfirmDeparture registra a saída do veículo do pátio
func (h *PlateHandler) ConfirmDeparture(c *gin.Context) {
	plate, err := h.plateService.ConfirmDeparture(c.Request.Context(), c.Param("plateId"))
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlateResponse(plate))
}

// DeletePlate remove uma placa. Admin remove qualquer placa,
// transportadora remove apenas as próprias
func (h *PlateHandler) DeletePlate(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	if err := h.plateService.Delete(c.Request.Context(), claims, c.Param("plateId")); err != nil {
		RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats retorna o resumo operacional do pátio
func (h *PlateHandler) Stats(c *gin.Context) {
	stats, err := h.plateService.Stats(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatsResponse(stats))
}
