package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/domain"
)

// EntityStreamHandler reenvía los eventos de un tópico Kafka a los clientes
// WebSocket y marca como obsoleta la colección del catálogo afectada, para que
// la siguiente carga de pantalla la refetchee. Las acciones no permitidas se
// descartan para evitar ruido.
type EntityStreamHandler struct {
	entity         string
	kafkaTopic     string
	allowedActions map[string]struct{}
	broadcaster    port.Broadcaster
	invalidador    port.Invalidador
}

func NewEntityStreamHandler(entity, kafkaTopic string, allowedActions []string, broadcaster port.Broadcaster, invalidador port.Invalidador) *EntityStreamHandler {
	actionSet := make(map[string]struct{}, len(allowedActions))
	for _, a := range allowedActions {
		if v := strings.TrimSpace(strings.ToLower(a)); v != "" {
			actionSet[v] = struct{}{}
		}
	}
	return &EntityStreamHandler{
		entity:         strings.TrimSpace(entity),
		kafkaTopic:     kafkaTopic,
		allowedActions: actionSet,
		broadcaster:    broadcaster,
		invalidador:    invalidador,
	}
}

func (h *EntityStreamHandler) Topic() string { return h.kafkaTopic }

func (h *EntityStreamHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if len(h.allowedActions) > 0 {
		if _, ok := h.allowedActions[strings.ToLower(msg.Action)]; !ok {
			return nil
		}
	}
	if msg.Entity == "" {
		msg.Entity = h.entity
	}
	if msg.Topic == "" || !strings.Contains(msg.Topic, ".") {
		msg.Topic = domain.EntityTopic(msg.Entity, msg.Action)
	}
	h.broadcaster.Broadcast(ctx, msg)
	h.invalidarCatalogo(msg)
	return nil
}

func (h *EntityStreamHandler) invalidarCatalogo(msg *domain.Message) {
	if h.invalidador == nil {
		return
	}
	entity := strings.ToLower(strings.TrimSpace(msg.Entity))
	switch entity {
	case "platillos", "mesas", "clientes", "meseros":
		slog.Info("entity-stream invalidating catalogo", slog.String("entity", entity), slog.String("action", msg.Action))
		h.invalidador.Invalidar(entity)
	}
}

var _ port.TopicHandler = (*EntityStreamHandler)(nil)
