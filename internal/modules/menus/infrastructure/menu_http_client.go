package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/menus/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/menus/domain"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/restclient"
)

const rutaMenus = "/api/menus"

// MenuHTTPClient implements port.MenuGateway over the backend REST API.
type MenuHTTPClient struct {
	rest *restclient.Cliente
}

func NewMenuHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *MenuHTTPClient {
	return &MenuHTTPClient{rest: restclient.New(baseURL, timeout, client)}
}

func (c *MenuHTTPClient) ListarMenus(ctx context.Context, token string) ([]domain.Menu, error) {
	var payload []any
	if err := c.rest.GetJSON(ctx, token, rutaMenus, nil, &payload); err != nil {
		return nil, err
	}
	return domain.NormalizeMenus(payload), nil
}

func (c *MenuHTTPClient) CrearMenu(ctx context.Context, token string, escritura port.EscrituraMenu) (*domain.Menu, error) {
	var respuesta map[string]any
	if err := c.rest.SendJSON(ctx, http.MethodPost, token, rutaMenus, escritura, &respuesta); err != nil {
		return nil, err
	}
	menu, ok := domain.NormalizeMenu(respuesta)
	if !ok {
		return nil, fmt.Errorf("backend returned a menu without codigo")
	}
	slog.Info("menu created", slog.String("codigo", menu.CodigoMenu))
	return &menu, nil
}

func (c *MenuHTTPClient) ActualizarMenu(ctx context.Context, token, codigo string, escritura port.EscrituraMenu) (*domain.Menu, error) {
	var respuesta map[string]any
	path := rutaMenus + "/" + url.PathEscape(codigo)
	if err := c.rest.SendJSON(ctx, http.MethodPut, token, path, escritura, &respuesta); err != nil {
		return nil, err
	}
	menu, ok := domain.NormalizeMenu(respuesta)
	if !ok {
		// El backend puede confirmar sin reenviar el menú completo.
		menu = domain.Menu{
			CodigoMenu: codigo,
			IDUsuario:  escritura.IDUsuario,
			Categoria:  escritura.Categoria,
			Platillos:  escritura.Platillos,
		}
	}
	return &menu, nil
}

func (c *MenuHTTPClient) EliminarMenu(ctx context.Context, token, codigo string) error {
	path := rutaMenus + "/" + url.PathEscape(codigo)
	return c.rest.Delete(ctx, token, path)
}
