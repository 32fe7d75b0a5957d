package ports

import "github.com/placasafe/placasafe-backend/internal/domain/entities"

// EventType identifica o tipo de evento de placa enviado aos painéis
type EventType string

const (
	EventPlateAdded   EventType = "PLATE_ADDED"
	EventPlateUpdated EventType = "PLATE_UPDATED"
	EventPlateRemoved EventType = "PLATE_REMOVED"
)

// Event é o evento tipado enviado a todas as sessões conectadas,
// com o payload completo da placa
type Event struct {
	Type  EventType       `json:"type"`
	Plate *entities.Plate `json:"plate"`
}

// Notifier faz o fan-out de eventos para os painéis abertos.
// Entrega best-effort, no máximo uma vez por cliente conectado; nunca
// bloqueia nem falha a operação que disparou o evento.
type Notifier interface {
	Broadcast(event Event)
}
