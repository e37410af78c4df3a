package infrastructure

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/domain"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/restclient"
)

// Rutas del backend para las colecciones de referencia.
const (
	rutaPlatillos = "/api/platillos"
	rutaMesas     = "/api/mesas"
	rutaClientes  = "/api/usuarios/clientes"
	rutaMeseros   = "/api/usuarios/meseros"
)

// CatalogoHTTPClient implements port.CatalogoFetcher over the backend REST API.
type CatalogoHTTPClient struct {
	rest *restclient.Cliente
}

func NewCatalogoHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *CatalogoHTTPClient {
	return &CatalogoHTTPClient{rest: restclient.New(baseURL, timeout, client)}
}

func (c *CatalogoHTTPClient) ListarPlatillos(ctx context.Context, token string) ([]domain.Platillo, error) {
	items, err := c.listar(ctx, token, rutaPlatillos)
	if err != nil {
		return nil, err
	}
	return domain.NormalizePlatillos(items), nil
}

func (c *CatalogoHTTPClient) ListarMesas(ctx context.Context, token string) ([]domain.Mesa, error) {
	items, err := c.listar(ctx, token, rutaMesas)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeMesas(items), nil
}

func (c *CatalogoHTTPClient) ListarClientes(ctx context.Context, token string) ([]domain.Usuario, error) {
	items, err := c.listar(ctx, token, rutaClientes)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeUsuarios(items), nil
}

func (c *CatalogoHTTPClient) ListarMeseros(ctx context.Context, token string) ([]domain.Usuario, error) {
	items, err := c.listar(ctx, token, rutaMeseros)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeUsuarios(items), nil
}

func (c *CatalogoHTTPClient) listar(ctx context.Context, token, path string) ([]any, error) {
	var payload []any
	if err := c.rest.GetJSON(ctx, token, path, nil, &payload); err != nil {
		slog.Error("catalogo list fetch failed", slog.String("path", path), slog.Any("error", err))
		return nil, err
	}
	slog.Debug("catalogo list fetched", slog.String("path", path), slog.Int("count", len(payload)))
	return payload, nil
}
