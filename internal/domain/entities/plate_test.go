package entities

import (
	"errors"
	"testing"
	"time"

	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
)

func TestPlateLifecycle(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	later := now.Add(2 * time.Hour)

	t.Run("placa nova está aguardando", func(t *testing.T) {
		plate := &Plate{Number: "ABC-1234"}
		if plate.Status() != StatusAguardando {
			t.Errorf("esperava %s, obteve %s", StatusAguardando, plate.Status())
		}
	})

	t.Run("chegada confirmada coloca a placa no pátio", func(t *testing.T) {
		plate := &Plate{Number: "ABC-1234"}
		if err := plate.ConfirmArrival(now); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if plate.Status() != StatusNoPatio {
			t.Errorf("esperava %s, obteve %s", StatusNoPatio, plate.Status())
		}
		if plate.ArrivalConfirmed == nil || !plate.ArrivalConfirmed.Equal(now) {
			t.Error("timestamp de chegada não foi gravado")
		}
	})

	t.Run("chegada repetida preserva o primeiro timestamp", func(t *testing.T) {
		plate := &Plate{Number: "ABC-1234"}
		_ = plate.ConfirmArrival(now)

		err := plate.ConfirmArrival(later)
		if !errors.Is(err, domainerrors.ErrAlreadyArrived) {
			t.Fatalf("esperava ErrAlreadyArrived, obteve %v", err)
		}
		if !plate.ArrivalConfirmed.Equal(now) {
			t.Error("timestamp original de chegada foi sobrescrito")
		}
	})

	t.Run("saída exige chegada confirmada", func(t *testing.T) {
		plate := &Plate{Number: "ABC-1234"}
		err := plate.ConfirmDeparture(now)
		if !errors.Is(err, domainerrors.ErrArrivalRequired) {
			t.Fatalf("esperava ErrArrivalRequired, obteve %v", err)
		}
	})

	t.Run("saída confirmada finaliza a viagem", func(t *testing.T) {
		plate := &Plate{Number: "ABC-1234"}
		_ = plate.ConfirmArrival(now)
		if err := plate.ConfirmDeparture(later); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if plate.Status() != StatusFinalizada {
			t.Errorf("esperava %s, obteve %s", StatusFinalizada, plate.Status())
		}
	})

	t.Run("saída repetida é rejeitada", func(t *testing.T) {
		plate := &Plate{Number: "ABC-1234"}
		_ = plate.ConfirmArrival(now)
		_ = plate.ConfirmDeparture(later)

		err := plate.ConfirmDeparture(later.Add(time.Hour))
		if !errors.Is(err, domainerrors.ErrAlreadyDeparted) {
			t.Fatalf("esperava ErrAlreadyDeparted, obteve %v", err)
		}
	})
}
