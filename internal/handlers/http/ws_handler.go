package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/handlers/dto"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/notification"
)

// WSHandler faz o upgrade da conexão WebSocket e registra o cliente
// no hub de notificações
type WSHandler struct {
	hub    *notification.Hub
	issuer ports.TokenIssuer
	logger ports.Logger

	upgrader websocket.Upgrader
}

// NewWSHandler cria um novo WSHandler
func NewWSHandler(hub *notification.Hub, issuer ports.TokenIssuer, logger ports.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		issuer: issuer,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// O token JWT no handshake já autentica o cliente
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve autentica via query parameter ?token= e mantém a conexão
// recebendo os eventos de placas em tempo real
func (h *WSHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	claims, err := h.issuer.Verify(token)
	if err != nil {
		dto.RespondProblem(c, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err, "user", claims.Username)
		return
	}

	h.logger.Debug("websocket client connected", "user", claims.Username)
	h.hub.ServeClient(conn)
}
