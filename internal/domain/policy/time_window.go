// Package policy contém as regras puras de cadastro de placas:
// janela de horário global, janelas de agendamento e limites de cota.
// Sem dependência de storage ou transporte.
package policy

import (
	"time"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
)

// WithinAllowedTime verifica se o instante cai dentro do horário global:
// dia da semana liberado e minuto do dia dentro de [início, fim],
// com as bordas inclusivas.
func WithinAllowedTime(t time.Time, cfg *entities.SystemConfig) bool {
	if !cfg.AllowsDay(int(t.Weekday())) {
		return false
	}

	start, err := entities.ParseMinuteOfDay(cfg.AllowedStart)
	if err != nil {
		return false
	}
	end, err := entities.ParseMinuteOfDay(cfg.AllowedEnd)
	if err != nil {
		return false
	}

	minute := t.Hour()*60 + t.Minute()
	return minute >= start && minute <= end
}

// WithinActiveWindows verifica a data agendada contra as janelas de
// agendamento: se existe ao menos uma janela ativa, a data precisa cair
// dentro de alguma delas (OR entre janelas). Sem janelas ativas, o
// horário global sozinho governa e o resultado é verdadeiro.
func WithinActiveWindows(t time.Time, windows []*entities.SchedulingWindow) bool {
	active := 0
	for _, w := range windows {
		if !w.IsActive {
			continue
		}
		active++
		if w.Contains(t) {
			return true
		}
	}
	return active == 0
}
