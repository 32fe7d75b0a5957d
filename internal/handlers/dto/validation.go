package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ExtractValidationErrors converte erros de binding do Gin em uma
// lista de erros de validação por campo
func ExtractValidationErrors(err error) []ValidationError {
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []ValidationError{{
			Field:   "body",
			Message: "corpo da requisição inválido",
		}}
	}

	result := make([]ValidationError, 0, len(validatorErrs))
	for _, fieldErr := range validatorErrs {
		result = append(result, ValidationError{
			Field:   strings.ToLower(fieldErr.Field()),
			Message: messageForTag(fieldErr),
			Tag:     fieldErr.Tag(),
			Value:   fmt.Sprintf("%v", fieldErr.Value()),
		})
	}
	return result
}

func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "campo obrigatório"
	case "min":
		return fmt.Sprintf("valor mínimo: %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("valor máximo: %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("valores aceitos: %s", fieldErr.Param())
	case "placa":
		return "formato de placa inválido. Use ABC-1234 ou ABC1D23"
	default:
		return fmt.Sprintf("falhou na validação '%s'", fieldErr.Tag())
	}
}
