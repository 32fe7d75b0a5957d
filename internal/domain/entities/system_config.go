package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SystemConfig é o registro singleton de configuração do sistema.
// Mutado apenas pelo admin; lido pelas políticas de horário e de limite.
type SystemConfig struct {
	// MaxTotalPlates é mantido para exibição/compatibilidade; o limite
	// total efetivo é a soma dinâmica dos limites das transportadoras.
	MaxTotalPlates             int
	MaxPlatesPerTransportadora int
	// AllowedStart e AllowedEnd no formato HH:MM, inclusivos
	AllowedStart string
	AllowedEnd   string
	// AllowedDays usa índices de dia da semana 0-6 (domingo-sábado)
	AllowedDays []int
}

// DefaultSystemConfig retorna a configuração inicial do sistema:
// segunda a sexta, das 08:00 às 18:00.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		MaxTotalPlates:             50,
		MaxPlatesPerTransportadora: 10,
		AllowedStart:               "08:00",
		AllowedEnd:                 "18:00",
		AllowedDays:                []int{1, 2, 3, 4, 5},
	}
}

// Validate valida os campos da configuração
func (c *SystemConfig) Validate() error {
	if c.MaxPlatesPerTransportadora < 1 {
		return errors.New("max plates per transportadora must be positive")
	}
	if _, err := ParseMinuteOfDay(c.AllowedStart); err != nil {
		return fmt.Errorf("invalid allowed start: %w", err)
	}
	if _, err := ParseMinuteOfDay(c.AllowedEnd); err != nil {
		return fmt.Errorf("invalid allowed end: %w", err)
	}
	if len(c.AllowedDays) == 0 {
		return errors.New("at least one allowed day is required")
	}
	for _, d := range c.AllowedDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("invalid weekday index: %d", d)
		}
	}
	return nil
}

// AllowsDay verifica se o dia da semana (0-6) está liberado
func (c *SystemConfig) AllowsDay(weekday int) bool {
	for _, d := range c.AllowedDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// ParseMinuteOfDay converte "HH:MM" em minutos desde a meia-noite
func ParseMinuteOfDay(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", hhmm)
	}
	return hour*60 + minute, nil
}
