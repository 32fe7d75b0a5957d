// Package notification implementa o fan-out de eventos de placa para as
// sessões de painel conectadas por WebSocket, com ponte opcional via
// Redis pub/sub para múltiplas instâncias.
package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/metrics"
)

// wireEvent é o formato JSON dos eventos no canal, igual ao consumido
// pelos painéis: {"type": "...", "plate": {...}}
type wireEvent struct {
	Type  ports.EventType `json:"type"`
	Plate platePayload    `json:"plate"`
}

type platePayload struct {
	ID                 string     `json:"id"`
	Number             string     `json:"number"`
	TransportadoraID   string     `json:"transportadoraId"`
	TransportadoraName string     `json:"transportadoraName"`
	CreatedAt          time.Time  `json:"createdAt"`
	ScheduledDate      *time.Time `json:"scheduledDate,omitempty"`
	Observations       *string    `json:"observations,omitempty"`
	ArrivalConfirmed   *time.Time `json:"arrivalConfirmed,omitempty"`
	DepartureConfirmed *time.Time `json:"departureConfirmed,omitempty"`
}

func toPayload(p *entities.Plate) platePayload {
	return platePayload{
		ID:                 p.ID,
		Number:             p.Number,
		TransportadoraID:   p.TransportadoraID,
		TransportadoraName: p.TransportadoraName,
		CreatedAt:          p.CreatedAt,
		ScheduledDate:      p.ScheduledDate,
		Observations:       p.Observations,
		ArrivalConfirmed:   p.ArrivalConfirmed,
		DepartureConfirmed: p.DepartureConfirmed,
	}
}

// Hub mantém o conjunto de clientes conectados e distribui mensagens.
// A entrega é best-effort: cliente com buffer cheio é descartado e deve
// ressincronizar buscando a lista completa ao reconectar.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	logger     ports.Logger
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

// Run processa registros, desconexões e broadcasts até o contexto
// encerrar
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			metrics.ConnectedClients.Set(float64(len(h.clients)))
			h.logger.Info("websocket client connected", "clients", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Info("websocket client disconnected", "clients", len(h.clients))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Cliente lento: descartar ao invés de bloquear
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	metrics.ConnectedClients.Set(float64(len(h.clients)))
}

// Broadcast implementa ports.Notifier. Nunca bloqueia o chamador; se o
// canal do hub estiver cheio, o evento é descartado e os painéis
// ressincronizam pelo re-fetch.
func (h *Hub) Broadcast(event ports.Event) {
	data, err := json.Marshal(wireEvent{Type: event.Type, Plate: toPayload(event.Plate)})
	if err != nil {
		h.logger.Error("failed to marshal event", "error", err)
		return
	}
	h.BroadcastRaw(data)
	metrics.EventsBroadcast.WithLabelValues(string(event.Type)).Inc()
}

// BroadcastRaw envia uma mensagem já serializada a todos os clientes
func (h *Hub) BroadcastRaw(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("hub broadcast buffer full, dropping event")
	}
}
