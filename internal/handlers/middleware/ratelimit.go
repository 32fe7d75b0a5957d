package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/placasafe/placasafe-backend/internal/handlers/dto"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/metrics"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/ratelimit"
)

// RateLimitMiddleware limita requisições por endereço IP de origem
type RateLimitMiddleware struct {
	store *ratelimit.Store
}

// NewRateLimitMiddleware cria um novo middleware de rate limit
func NewRateLimitMiddleware(store *ratelimit.Store) *RateLimitMiddleware {
	return &RateLimitMiddleware{store: store}
}

// Limit rejeita com 429 quando o IP de origem excede o limite
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.store.Allow(c.ClientIP()) {
			metrics.LoginThrottled.Inc()
			dto.RespondProblem(c, dto.TooManyRequestsResponseI18n(c))
			c.Abort()
			return
		}
		c.Next()
	}
}
