package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/handlers/dto"
)

const (
	// ClaimsContextKey é a chave usada para armazenar as claims no contexto do Gin
	ClaimsContextKey = "auth_claims"
)

// AuthMiddleware valida o token JWT e injeta as claims no contexto
type AuthMiddleware struct {
	issuer ports.TokenIssuer
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(issuer ports.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer}
}

// RequireAuth exige um token válido via header Authorization (Bearer)
// ou query parameter ?token= (usado pelo handshake do WebSocket)
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c))
			c.Abort()
			return
		}

		claims, err := m.issuer.Verify(token)
		if err != nil {
			dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c))
			c.Abort()
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequireRoles exige que o usuário autenticado tenha um dos papéis informados
func (m *AuthMiddleware) RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil {
			dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c))
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		dto.RespondProblem(c, dto.ForbiddenErrorResponseI18n(c))
		c.Abort()
	}
}

// CurrentClaims retorna as claims do usuário autenticado, ou nil
func CurrentClaims(c *gin.Context) *ports.TokenClaims {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil
	}

	claims, ok := value.(*ports.TokenClaims)
	if !ok {
		return nil
	}

	return claims
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	return c.Query("token")
}
