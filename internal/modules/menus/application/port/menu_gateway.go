package port

import (
	"context"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/menus/domain"
)

// EscrituraMenu es el cuerpo de creación y actualización de menús.
type EscrituraMenu struct {
	IDUsuario int      `json:"idUsuario"`
	Categoria string   `json:"categoria"`
	Platillos []string `json:"platillos"`
}

// MenuGateway habla con el backend de menús.
type MenuGateway interface {
	ListarMenus(ctx context.Context, token string) ([]domain.Menu, error)
	CrearMenu(ctx context.Context, token string, escritura EscrituraMenu) (*domain.Menu, error)
	ActualizarMenu(ctx context.Context, token, codigo string, escritura EscrituraMenu) (*domain.Menu, error)
	EliminarMenu(ctx context.Context, token, codigo string) error
}
