package entities

import (
	"errors"
	"fmt"
	"time"
)

// SchedulingWindow é uma janela de agendamento definida pelo admin.
// Quando existe ao menos uma janela ativa, a data agendada de uma nova
// placa precisa cair dentro de alguma delas.
type SchedulingWindow struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	// StartTime e EndTime no formato HH:MM, inclusivos
	StartTime string
	EndTime   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate valida os campos da janela
func (w *SchedulingWindow) Validate() error {
	if w.EndDate.Before(w.StartDate) {
		return errors.New("end date must not be before start date")
	}
	start, err := ParseMinuteOfDay(w.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	end, err := ParseMinuteOfDay(w.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}
	if end < start {
		return errors.New("end time must not be before start time")
	}
	return nil
}

// Contains verifica se a data/hora cai dentro da janela: o dia do
// calendário dentro de [StartDate, EndDate] (comparação só de data) e o
// horário dentro de [StartTime, EndTime].
func (w *SchedulingWindow) Contains(t time.Time) bool {
	day := truncateToDay(t)
	if day.Before(truncateToDay(w.StartDate)) || day.After(truncateToDay(w.EndDate)) {
		return false
	}

	start, err := ParseMinuteOfDay(w.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseMinuteOfDay(w.EndTime)
	if err != nil {
		return false
	}

	minute := t.Hour()*60 + t.Minute()
	return minute >= start && minute <= end
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
