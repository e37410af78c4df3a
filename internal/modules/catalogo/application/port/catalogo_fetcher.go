package port

import (
	"context"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/domain"
)

// CatalogoFetcher lee las colecciones de referencia del backend. Cada método
// devuelve la colección completa; el gateway nunca muta estas entidades.
type CatalogoFetcher interface {
	ListarPlatillos(ctx context.Context, token string) ([]domain.Platillo, error)
	ListarMesas(ctx context.Context, token string) ([]domain.Mesa, error)
	ListarClientes(ctx context.Context, token string) ([]domain.Usuario, error)
	ListarMeseros(ctx context.Context, token string) ([]domain.Usuario, error)
}
