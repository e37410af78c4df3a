package broker

import (
	"context"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/domain"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/infrastructure"
)

// StartKafkaConsumers lanza un consumidor por tópico y enruta cada mensaje al
// handler registrado. Sin brokers configurados no arranca nada; las pantallas
// siguen funcionando sin refresco en vivo.
func StartKafkaConsumers(
	ctx context.Context,
	registry *infrastructure.HandlerRegistry,
	brokers []string,
	groupID string,
	topics []string,
) {
	if len(brokers) == 0 {
		return
	}
	for _, topic := range topics {
		go func(tp string) {
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			_ = consumer.Consume(ctx, func(msg *domain.Message) error {
				return registry.Dispatch(ctx, tp, msg)
			})
		}(topic)
	}
}
