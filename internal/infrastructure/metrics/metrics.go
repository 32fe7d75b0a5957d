// Package metrics expõe os contadores Prometheus do serviço.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlatesRegistered conta cadastros de placa aceitos
	PlatesRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "placasafe",
		Name:      "plates_registered_total",
		Help:      "Total de placas cadastradas com sucesso.",
	})

	// RegistrationsDenied conta cadastros rejeitados, por motivo
	RegistrationsDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "placasafe",
		Name:      "plate_registrations_denied_total",
		Help:      "Total de cadastros de placa rejeitados, por motivo.",
	}, []string{"reason"})

	// EventsBroadcast conta eventos enviados ao hub, por tipo
	EventsBroadcast = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "placasafe",
		Name:      "events_broadcast_total",
		Help:      "Total de eventos de placa enviados aos painéis, por tipo.",
	}, []string{"type"})

	// ConnectedClients registra o número de sessões WebSocket ativas
	ConnectedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "placasafe",
		Name:      "websocket_clients",
		Help:      "Sessões WebSocket conectadas no momento.",
	})

	// LoginThrottled conta logins barrados pelo rate limit
	LoginThrottled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "placasafe",
		Name:      "login_throttled_total",
		Help:      "Tentativas de login barradas pelo rate limit.",
	})
)
