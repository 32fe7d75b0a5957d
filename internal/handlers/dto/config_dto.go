package dto

import "github.com/placasafe/placasafe-backend/internal/domain/entities"

// UpdateConfigRequest representa a atualização das regras do sistema
type UpdateConfigRequest struct {
	MaxTotalPlates             int    `json:"maxTotalPlates" binding:"required,min=1"`
	MaxPlatesPerTransportadora int    `json:"maxPlatesPerTransportadora" binding:"required,min=1"`
	AllowedStart               string `json:"allowedStart" binding:"required"`
	AllowedEnd                 string `json:"allowedEnd" binding:"required"`
	AllowedDays                []int  `json:"allowedDays" binding:"required,min=1,dive,min=0,max=6"`
}

// ConfigResponse representa as regras vigentes do sistema
type ConfigResponse struct {
	MaxTotalPlates             int    `json:"maxTotalPlates"`
	MaxPlatesPerTransportadora int    `json:"maxPlatesPerTransportadora"`
	AllowedStart               string `json:"allowedStart"`
	AllowedEnd                 string `json:"allowedEnd"`
	AllowedDays                []int  `json:"allowedDays"`
}

// ToEntity converte a requisição para a entidade de configuração
func (r UpdateConfigRequest) ToEntity() *entities.SystemConfig {
	return &entities.SystemConfig{
		MaxTotalPlates:             r.MaxTotalPlates,
		MaxPlatesPerTransportadora: r.MaxPlatesPerTransportadora,
		AllowedStart:               r.AllowedStart,
		AllowedEnd:                 r.AllowedEnd,
		AllowedDays:                r.AllowedDays,
	}
}

// NewConfigResponse converte a entidade de configuração para o DTO
func NewConfigResponse(cfg *entities.SystemConfig) ConfigResponse {
	return ConfigResponse{
		MaxTotalPlates:             cfg.MaxTotalPlates,
		MaxPlatesPerTransportadora: cfg.MaxPlatesPerTransportadora,
		AllowedStart:               cfg.AllowedStart,
		AllowedEnd:                 cfg.AllowedEnd,
		AllowedDays:                cfg.AllowedDays,
	}
}
