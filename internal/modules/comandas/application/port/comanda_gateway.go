package port

import (
	"context"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/domain"
)

// ComandaGateway habla con las rutas de comandas del backend. Los errores de
// transporte/estado llegan envueltos en los centinelas de restclient.
type ComandaGateway interface {
	CrearComanda(ctx context.Context, token string, payload domain.Payload) (*domain.Comanda, error)
	ListarComandas(ctx context.Context, token string) ([]domain.Comanda, error)
	ObtenerComanda(ctx context.Context, token, codigo string) (*domain.Comanda, error)
	ActualizarEstado(ctx context.Context, token, codigo string, estado domain.EstadoComanda) (*domain.Comanda, error)
}

// Notificador avisa a las vistas dependientes (websocket) que el estado del
// backend cambió y conviene refrescar.
type Notificador interface {
	ComandaCambiada(accion string, comanda *domain.Comanda)
}

// NotificadorNulo descarta los avisos; útil cuando el hub no está configurado.
type NotificadorNulo struct{}

func (NotificadorNulo) ComandaCambiada(string, *domain.Comanda) {}
