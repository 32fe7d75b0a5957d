package policy

import (
	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
)

// TotalAvailableTrips calcula o limite total do sistema dinamicamente:
// a soma, sobre todas as transportadoras, do limite individual de cada
// uma (ou do padrão do sistema quando não há override).
func TotalAvailableTrips(carriers []*entities.User, cfg *entities.SystemConfig) int {
	total := 0
	for _, u := range carriers {
		if !u.IsTransportadora() {
			continue
		}
		total += u.PlateLimit(cfg.MaxPlatesPerTransportadora)
	}
	return total
}

// CanRegister aplica os dois limites independentes de cota. Ambos
// precisam passar; a falha identifica qual limite foi atingido e o
// respectivo valor.
func CanRegister(carrierCount int, carrierLimit int, totalCount int, totalAvailable int) error {
	if carrierCount >= carrierLimit {
		return domainerrors.NewCarrierQuotaError(carrierLimit)
	}
	if totalCount >= totalAvailable {
		return domainerrors.NewSystemQuotaError(totalAvailable)
	}
	return nil
}
