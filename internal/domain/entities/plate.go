package entities

import (
	"time"

	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
)

// Plate representa o registro de uma placa de veículo no pátio.
// Ciclo de vida monotônico: cadastrada -> chegou -> saiu.
type Plate struct {
	ID                 string
	Number             string
	TransportadoraID   string
	TransportadoraName string
	CreatedAt          time.Time
	ScheduledDate      *time.Time
	Observations       *string
	ArrivalConfirmed   *time.Time
	DepartureConfirmed *time.Time
}

// Status do ciclo de vida, usado nos painéis e nas estatísticas
type PlateStatus string

const (
	StatusAguardando PlateStatus = "aguardando"
	StatusNoPatio    PlateStatus = "no_patio"
	StatusFinalizada PlateStatus = "finalizada"
)

// Status retorna o estado atual da placa no ciclo de vida
func (p *Plate) Status() PlateStatus {
	switch {
	case p.DepartureConfirmed != nil:
		return StatusFinalizada
	case p.ArrivalConfirmed != nil:
		return StatusNoPatio
	default:
		return StatusAguardando
	}
}

// ConfirmArrival marca a chegada física do veículo.
// O timestamp é gravado uma única vez.
func (p *Plate) ConfirmArrival(now time.Time) error {
	if p.ArrivalConfirmed != nil {
		return domainerrors.ErrAlreadyArrived
	}
	p.ArrivalConfirmed = &now
	return nil
}

// ConfirmDeparture marca a saída física do veículo.
// Exige chegada confirmada; o timestamp é gravado uma única vez.
func (p *Plate) ConfirmDeparture(now time.Time) error {
	if p.ArrivalConfirmed == nil {
		return domainerrors.ErrArrivalRequired
	}
	if p.DepartureConfirmed != nil {
		return domainerrors.ErrAlreadyDeparted
	}
	p.DepartureConfirmed = &now
	return nil
}
