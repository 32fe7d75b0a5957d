package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
	"github.com/placasafe/placasafe-backend/internal/handlers/dto"
)

// RespondError traduz um erro da camada de serviço para a resposta
// HTTP correspondente (RFC 7807), com mensagens via i18n
func RespondError(c *gin.Context, err error) {
	var quotaErr *domainerrors.QuotaError
	if errors.As(err, &quotaErr) {
		dto.RespondProblem(c, dto.QuotaErrorResponseI18n(c, quotaErr.Err.Error(), quotaErr.Limit))
		return
	}

	var domErr *domainerrors.DomainError
	if errors.As(err, &domErr) && domErr.Type == domainerrors.ProblemTypeValidation {
		response := dto.ValidationErrorResponseI18n(c, nil)
		response.Detail = domErr.Message
		dto.RespondProblem(c, response)
		return
	}

	switch {
	case errors.Is(err, domainerrors.ErrInvalidPlateFormat),
		errors.Is(err, domainerrors.ErrOutsideAllowedTime),
		errors.Is(err, domainerrors.ErrOutsideSchedulingWindow),
		errors.Is(err, domainerrors.ErrArrivalRequired),
		errors.Is(err, domainerrors.ErrAlreadyArrived),
		errors.Is(err, domainerrors.ErrAlreadyDeparted),
		errors.Is(err, domainerrors.ErrCannotRemoveSelf):
		dto.RespondProblem(c, dto.BadRequestErrorResponseI18n(c, err.Error()))

	case errors.Is(err, domainerrors.ErrDuplicatePlate),
		errors.Is(err, domainerrors.ErrUsernameTaken):
		dto.RespondProblem(c, dto.ConflictErrorResponseI18n(c, err.Error()))

	case errors.Is(err, domainerrors.ErrPlateNotFound):
		dto.RespondProblem(c, dto.NotFoundErrorResponseI18n(c, domainerrors.ErrPlateNotFound.Error()))

	case errors.Is(err, domainerrors.ErrUserNotFound):
		dto.RespondProblem(c, dto.NotFoundErrorResponseI18n(c, domainerrors.ErrUserNotFound.Error()))

	case errors.Is(err, domainerrors.ErrWindowNotFound):
		dto.RespondProblem(c, dto.NotFoundErrorResponseI18n(c, domainerrors.ErrWindowNotFound.Error()))

	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		response := dto.NewErrorResponseI18n(c,
			domainerrors.ProblemTypeUnauthorized,
			"error.unauthorized.title",
			domainerrors.ErrInvalidCredentials.Error(),
			401,
		)
		dto.RespondProblem(c, response)

	case errors.Is(err, domainerrors.ErrUnauthorized):
		dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c))

	case errors.Is(err, domainerrors.ErrForbidden):
		dto.RespondProblem(c, dto.ForbiddenErrorResponseI18n(c))

	default:
		dto.RespondProblem(c, dto.InternalErrorResponseI18n(c))
	}
}

// RespondValidationError traduz erros de binding do Gin para a
// resposta de validação
func RespondValidationError(c *gin.Context, err error) {
	validationErrors := dto.ExtractValidationErrors(err)
	dto.RespondProblem(c, dto.ValidationErrorResponseI18n(c, validationErrors))
}
