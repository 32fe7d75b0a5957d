package dto

import (
	"time"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
)

// CreateWindowRequest representa a criação de uma janela de agendamento
type CreateWindowRequest struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	StartTime string    `json:"startTime" binding:"required"`
	EndTime   string    `json:"endTime" binding:"required"`
	IsActive  *bool     `json:"isActive,omitempty"`
}

// UpdateWindowRequest representa a atualização parcial de uma janela
type UpdateWindowRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	StartTime *string    `json:"startTime,omitempty"`
	EndTime   *string    `json:"endTime,omitempty"`
	IsActive  *bool      `json:"isActive,omitempty"`
}

// WindowResponse representa uma janela de agendamento na API
type WindowResponse struct {
	ID        string    `json:"id"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewWindowResponse converte a entidade para o DTO de resposta
func NewWindowResponse(window *entities.SchedulingWindow) WindowResponse {
	return WindowResponse{
		ID:        window.ID,
		StartDate: window.StartDate,
		EndDate:   window.EndDate,
		StartTime: window.StartTime,
		EndTime:   window.EndTime,
		IsActive:  window.IsActive,
		CreatedAt: window.CreatedAt,
	}
}

// NewWindowListResponse converte uma lista de janelas para DTOs
func NewWindowListResponse(windows []*entities.SchedulingWindow) []WindowResponse {
	responses := make([]WindowResponse, 0, len(windows))
	for _, window := range windows {
		responses = append(responses, NewWindowResponse(window))
	}
	return responses
}
