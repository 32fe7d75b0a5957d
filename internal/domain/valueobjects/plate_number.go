package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPlateNumber = errors.New("invalid plate number format")
)

// Dois formatos aceitos, e apenas dois:
//   - padrão antigo: ABC-1234 (três letras, hífen, quatro dígitos)
//   - padrão Mercosul: ABC1D23 (três letras, dígito, letra, dois dígitos)
//
// O padrão antigo sem hífen (ABC1234) é rejeitado.
var (
	legacyPattern   = regexp.MustCompile(`^[A-Z]{3}-[0-9]{4}$`)
	mercosulPattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

// PlateNumber é um value object que garante que números de placa sejam
// sempre válidos e normalizados em maiúsculas
type PlateNumber struct {
	value string
}

// NewPlateNumber cria um novo PlateNumber validado
func NewPlateNumber(raw string) (PlateNumber, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))

	if !isValidPlateFormat(normalized) {
		return PlateNumber{}, ErrInvalidPlateNumber
	}

	return PlateNumber{value: normalized}, nil
}

// String retorna o número da placa normalizado
func (p PlateNumber) String() string {
	return p.value
}

// IsValidPlateFormat verifica se a string (normalizada em maiúsculas)
// corresponde a um dos dois formatos aceitos
func IsValidPlateFormat(raw string) bool {
	return isValidPlateFormat(strings.ToUpper(strings.TrimSpace(raw)))
}

func isValidPlateFormat(normalized string) bool {
	return legacyPattern.MatchString(normalized) || mercosulPattern.MatchString(normalized)
}
