package notification

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/placasafe/placasafe-backend/internal/domain/ports"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/metrics"
)

// RedisBridge implementa ports.Notifier publicando os eventos num canal
// pub/sub do Redis e repassando tudo que chega no canal para o hub
// local. Com mais de uma instância do serviço, todas recebem os eventos
// umas das outras (inclusive os próprios, que voltam pela assinatura).
type RedisBridge struct {
	client  *redis.Client
	hub     *Hub
	channel string
	logger  ports.Logger
}

// NewRedisBridge conecta no Redis da URL e cria a ponte
func NewRedisBridge(url, channel string, hub *Hub, logger ports.Logger) (*RedisBridge, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisBridge{
		client:  client,
		hub:     hub,
		channel: channel,
		logger:  logger,
	}, nil
}

// Broadcast implementa ports.Notifier. Fire-and-forget: falha de
// publicação é logada e nunca propaga para a operação que disparou.
func (b *RedisBridge) Broadcast(event ports.Event) {
	data, err := json.Marshal(wireEvent{Type: event.Type, Plate: toPayload(event.Plate)})
	if err != nil {
		b.logger.Error("failed to marshal event", "error", err)
		return
	}

	if err := b.client.Publish(context.Background(), b.channel, data).Err(); err != nil {
		b.logger.Error("failed to publish event to redis", "error", err)
		// Fallback local para não perder o evento nesta instância
		b.hub.BroadcastRaw(data)
		return
	}
	metrics.EventsBroadcast.WithLabelValues(string(event.Type)).Inc()
}

// Run assina o canal e repassa as mensagens ao hub local até o
// contexto encerrar
func (b *RedisBridge) Run(ctx context.Context) {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			b.hub.BroadcastRaw([]byte(msg.Payload))
		}
	}
}

// Close encerra a conexão com o Redis
func (b *RedisBridge) Close() error {
	return b.client.Close()
}
