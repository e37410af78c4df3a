package port

import (
	"context"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/domain"
)

// PubSubPort define el contrato para consumir eventos externos (Kafka).
type PubSubPort interface {
	Consume(ctx context.Context, topic string, handler func(*domain.Message) error) error
}

// Broadcaster define el contrato para enviar mensajes a los clientes WebSocket.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// TopicHandler define la interfaz que deben implementar los handlers registrados por tópico.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}

// Invalidador marca una colección del catálogo como obsoleta tras un evento.
type Invalidador interface {
	Invalidar(entidad string)
}
