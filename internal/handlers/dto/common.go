package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs),
// estendendo o problem document com a lista de erros de validação
type ErrorResponse struct {
	problems.DefaultProblem
	Errors []ValidationError      `json:"errors,omitempty"`
	Meta   map[string]interface{} `json:"meta,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// RespondProblem escreve o problem document com o media type RFC 7807
func RespondProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(response.Status, response)
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	title := T(c, titleKey, params...)
	detail := T(c, detailKey, params...)

	return ErrorResponse{
		DefaultProblem: problems.DefaultProblem{
			Type:     baseURL + problemType,
			Title:    title,
			Status:   status,
			Detail:   detail,
			Instance: c.Request.URL.Path,
		},
	}
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		"/problems/validation-error",
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/not-found",
		"error.not_found.title",
		detailKey,
		404,
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/conflict",
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// BadRequestErrorResponseI18n cria uma resposta de erro 400 com a
// mensagem da regra de negócio violada
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/bad-request",
		"error.bad_request.title",
		detailKey,
		400,
		params...,
	)
}

// QuotaErrorResponseI18n cria uma resposta 422 para limite atingido
func QuotaErrorResponseI18n(c *gin.Context, detailKey string, limit int) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/quota-exceeded",
		"error.quota.title",
		detailKey,
		422,
		map[string]interface{}{"Limite": limit},
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/unauthorized",
		"error.unauthorized.title",
		"error.unauthorized.detail",
		401,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/forbidden",
		"error.forbidden.title",
		"error.forbidden.detail",
		403,
	)
}

// TooManyRequestsResponseI18n cria uma resposta de erro 429
func TooManyRequestsResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/too-many-requests",
		"error.too_many_requests.title",
		"error.too_many_requests.detail",
		429,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		"/problems/internal-error",
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
