package errors

import (
	"errors"
	"fmt"
)

// Erros de negócio do cadastro de placas.
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidPlateFormat      = errors.New("error.invalid_plate_format")
	ErrOutsideAllowedTime      = errors.New("error.outside_allowed_time")
	ErrOutsideSchedulingWindow = errors.New("error.outside_scheduling_window")
	ErrDuplicatePlate          = errors.New("error.duplicate_plate")
	ErrCarrierQuotaExceeded    = errors.New("error.carrier_quota_exceeded")
	ErrSystemQuotaExceeded     = errors.New("error.system_quota_exceeded")
)

// Erros do ciclo de vida da placa
var (
	ErrPlateNotFound   = errors.New("error.plate_not_found")
	ErrArrivalRequired = errors.New("error.arrival_required")
	ErrAlreadyArrived  = errors.New("error.already_arrived")
	ErrAlreadyDeparted = errors.New("error.already_departed")
)

// Erros de contas e autenticação
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrWindowNotFound     = errors.New("error.window_not_found")
	ErrUsernameTaken      = errors.New("error.username_taken")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")
	ErrCannotRemoveSelf   = errors.New("error.cannot_remove_self")
)

// Erros de infraestrutura, traduzidos a partir da camada de storage
var (
	ErrStorage = errors.New("error.storage")
)

// sentinels lista os erros de negócio conhecidos, para distingui-los
// de falhas cruas de infraestrutura
var sentinels = []error{
	ErrInvalidPlateFormat,
	ErrOutsideAllowedTime,
	ErrOutsideSchedulingWindow,
	ErrDuplicatePlate,
	ErrCarrierQuotaExceeded,
	ErrSystemQuotaExceeded,
	ErrPlateNotFound,
	ErrArrivalRequired,
	ErrAlreadyArrived,
	ErrAlreadyDeparted,
	ErrUserNotFound,
	ErrWindowNotFound,
	ErrUsernameTaken,
	ErrInvalidCredentials,
	ErrUnauthorized,
	ErrForbidden,
	ErrCannotRemoveSelf,
	ErrStorage,
}

// IsDomain verifica se o erro pertence à taxonomia de negócio
func IsDomain(err error) bool {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeQuota        = "/problems/quota-exceeded"
)

// QuotaError indica qual limite foi atingido, carregando o valor do
// limite para a mensagem ao usuário
type QuotaError struct {
	Err   error // ErrCarrierQuotaExceeded ou ErrSystemQuotaExceeded
	Limit int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("%s: limit=%d", e.Err.Error(), e.Limit)
}

func (e *QuotaError) Unwrap() error {
	return e.Err
}

// NewCarrierQuotaError cria o erro de limite por transportadora
func NewCarrierQuotaError(limit int) error {
	return &QuotaError{Err: ErrCarrierQuotaExceeded, Limit: limit}
}

// NewSystemQuotaError cria o erro de limite total do sistema
func NewSystemQuotaError(limit int) error {
	return &QuotaError{Err: ErrSystemQuotaExceeded, Limit: limit}
}

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
