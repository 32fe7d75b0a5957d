package dto

import (
	"time"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	"github.com/placasafe/placasafe-backend/internal/services"
)

// MarkPlateRequest representa a requisição de cadastro de placa
type MarkPlateRequest struct {
	PlateNumber   string     `json:"plateNumber" binding:"required,placa"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	Observations  string     `json:"observations,omitempty" binding:"max=500"`
}

// PlateResponse representa uma placa na resposta da API
type PlateResponse struct {
	ID                 string     `json:"id"`
	Number             string     `json:"number"`
	TransportadoraID   string     `json:"transportadoraId"`
	TransportadoraName string     `json:"transportadoraName"`
	CreatedAt          time.Time  `json:"createdAt"`
	ArrivalConfirmed   *time.Time `json:"arrivalConfirmed,omitempty"`
	DepartureConfirmed *time.Time `json:"departureConfirmed,omitempty"`
	ScheduledDate      *time.Time `json:"scheduledDate,omitempty"`
	Observations       *string    `json:"observations,omitempty"`
	Status             string     `json:"status"`
}

// NewPlateResponse converte a entidade Plate para o DTO de resposta
func NewPlateResponse(plate *entities.Plate) PlateResponse {
	return PlateResponse{
		ID:                 plate.ID,
		Number:             plate.Number,
		TransportadoraID:   plate.TransportadoraID,
		TransportadoraName: plate.TransportadoraName,
		CreatedAt:          plate.CreatedAt,
		ArrivalConfirmed:   plate.ArrivalConfirmed,
		DepartureConfirmed: plate.DepartureConfirmed,
		ScheduledDate:      plate.ScheduledDate,
		Observations:       plate.Observations,
		Status:             string(plate.Status()),
	}
}

// NewPlateListResponse converte uma lista de entidades para DTOs
func NewPlateListResponse(plates []*entities.Plate) []PlateResponse {
	responses := make([]PlateResponse, 0, len(plates))
	for _, plate := range plates {
		responses = append(responses, NewPlateResponse(plate))
	}
	return responses
}

// StatsResponse representa o resumo operacional do pátio
type StatsResponse struct {
	Total              int `json:"total"`
	Aguardando         int `json:"aguardando"`
	NoPatio            int `json:"noPatio"`
	Finalizadas        int `json:"finalizadas"`
	ViagensDisponiveis int `json:"viagensDisponiveis"`
}

// NewStatsResponse converte as estatísticas do serviço para o DTO
func NewStatsResponse(stats *services.Stats) StatsResponse {
	return StatsResponse{
		Total:              stats.Total,
		Aguardando:         stats.Aguardando,
		NoPatio:            stats.NoPatio,
		Finalizadas:        stats.Finalizadas,
		ViagensDisponiveis: stats.ViagensDisponiveis,
	}
}
