package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/logging"
)

func testPlate() *entities.Plate {
	obs := "carga refrigerada"
	return &entities.Plate{
		ID:                 "plate-1",
		Number:             "ABC-1234",
		TransportadoraID:   "carrier-1",
		TransportadoraName: "Transportes ABC",
		CreatedAt:          time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC),
		Observations:       &obs,
	}
}

func TestHubBroadcastWireFormat(t *testing.T) {
	hub := NewHub(logging.NewSlogLogger("error"))

	hub.Broadcast(ports.Event{Type: ports.EventPlateAdded, Plate: testPlate()})

	select {
	case raw := <-hub.broadcast:
		var decoded map[string]json.RawMessage
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("mensagem não é JSON válido: %v", err)
		}

		var eventType string
		if err := json.Unmarshal(decoded["type"], &eventType); err != nil {
			t.Fatalf("campo type ausente: %v", err)
		}
		if eventType != "PLATE_ADDED" {
			t.Errorf("esperava PLATE_ADDED, obteve %s", eventType)
		}

		var plate map[string]interface{}
		if err := json.Unmarshal(decoded["plate"], &plate); err != nil {
			t.Fatalf("campo plate ausente: %v", err)
		}
		for _, field := range []string{"id", "number", "transportadoraId", "transportadoraName", "createdAt", "observations"} {
			if _, ok := plate[field]; !ok {
				t.Errorf("campo %q ausente no payload", field)
			}
		}
		if _, ok := plate["arrivalConfirmed"]; ok {
			t.Error("arrivalConfirmed deveria ser omitido quando nulo")
		}
	case <-time.After(time.Second):
		t.Fatal("nenhuma mensagem chegou ao canal de broadcast")
	}
}

func TestHubDeliversToRegisteredClients(t *testing.T) {
	hub := NewHub(logging.NewSlogLogger("error"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := &Client{hub: hub, send: make(chan []byte, sendBufferSize)}
	hub.register <- client

	hub.Broadcast(ports.Event{Type: ports.EventPlateUpdated, Plate: testPlate()})

	select {
	case msg := <-client.send:
		if len(msg) == 0 {
			t.Error("mensagem vazia entregue ao cliente")
		}
	case <-time.After(time.Second):
		t.Fatal("cliente registrado não recebeu o broadcast")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub(logging.NewSlogLogger("error"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	// Sem buffer e sem leitor: a primeira entrega falha e o hub
	// descarta o cliente fechando o canal
	client := &Client{hub: hub, send: make(chan []byte)}
	hub.register <- client

	hub.Broadcast(ports.Event{Type: ports.EventPlateRemoved, Plate: testPlate()})

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("esperava canal fechado para cliente lento")
		}
	case <-time.After(time.Second):
		t.Fatal("canal do cliente lento não foi fechado")
	}
}
