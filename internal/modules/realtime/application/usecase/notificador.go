package usecase

import (
	"context"
	"log/slog"

	comandas "github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/domain"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/domain"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/realtime/infrastructure"
)

// NotificadorHub publica los cambios de comandas en el hub para que las
// pantallas conectadas refresquen sin sondear.
type NotificadorHub struct {
	hub *infrastructure.Hub
}

func NewNotificadorHub(hub *infrastructure.Hub) *NotificadorHub {
	return &NotificadorHub{hub: hub}
}

func (n *NotificadorHub) ComandaCambiada(accion string, comanda *comandas.Comanda) {
	if comanda == nil {
		return
	}
	msg := domain.NewEvento("comandas", accion, comanda.Codigo, map[string]any{
		"codigo": comanda.Codigo,
		"estado": string(comanda.Estado),
		"total":  comanda.Total.StringFixed(2),
	})
	n.hub.Broadcast(context.Background(), msg)
	slog.Debug("comanda change broadcast", slog.String("codigo", comanda.Codigo), slog.String("accion", accion))
}
