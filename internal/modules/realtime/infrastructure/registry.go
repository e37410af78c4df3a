package infrastructure

import (
	"context"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/domain"
)

// HandlerRegistry enruta cada mensaje del broker al handler de su tópico.
type HandlerRegistry struct {
	handlers map[string]port.TopicHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string]port.TopicHandler)}
}

func (r *HandlerRegistry) Register(h port.TopicHandler) {
	r.handlers[h.Topic()] = h
}

// Dispatch entrega el mensaje al handler del tópico Kafka de origen. El topic
// del mensaje ya viene normalizado a entidad.acción para los clientes ws.
func (r *HandlerRegistry) Dispatch(ctx context.Context, kafkaTopic string, msg *domain.Message) error {
	if handler, ok := r.handlers[kafkaTopic]; ok {
		return handler.Handle(ctx, msg)
	}
	return nil
}
