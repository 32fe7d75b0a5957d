package services

import (
	"fmt"

	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
)

// storageError deixa erros de negócio passarem intactos e traduz
// falhas cruas do storage para ErrStorage, preservando a causa
func storageError(err error) error {
	if err == nil || domainerrors.IsDomain(err) {
		return err
	}
	return fmt.Errorf("%w: %v", domainerrors.ErrStorage, err)
}

// validationError marca falhas de validação de entidade para que a
// camada HTTP responda 400 em vez de 500
func validationError(err error) error {
	if err == nil {
		return nil
	}
	return &domainerrors.DomainError{
		Type:    domainerrors.ProblemTypeValidation,
		Title:   "error.validation.title",
		Message: err.Error(),
		Err:     err,
	}
}
