package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/domain"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/restclient"
)

const rutaComandas = "/api/comandas"

// ComandaHTTPClient implements port.ComandaGateway over the backend REST API.
type ComandaHTTPClient struct {
	rest *restclient.Cliente
}

func NewComandaHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *ComandaHTTPClient {
	return &ComandaHTTPClient{rest: restclient.New(baseURL, timeout, client)}
}

func (c *ComandaHTTPClient) CrearComanda(ctx context.Context, token string, payload domain.Payload) (*domain.Comanda, error) {
	var respuesta map[string]any
	if err := c.rest.SendJSON(ctx, http.MethodPost, token, rutaComandas, payload, &respuesta); err != nil {
		slog.Error("comanda create failed", slog.Any("error", err))
		return nil, err
	}
	comanda, ok := domain.NormalizeComanda(respuesta)
	if !ok {
		return nil, fmt.Errorf("backend returned a comanda without codigo")
	}
	slog.Info("comanda created", slog.String("codigo", comanda.Codigo))
	return &comanda, nil
}

func (c *ComandaHTTPClient) ListarComandas(ctx context.Context, token string) ([]domain.Comanda, error) {
	var payload []any
	if err := c.rest.GetJSON(ctx, token, rutaComandas, nil, &payload); err != nil {
		return nil, err
	}
	return domain.NormalizeComandas(payload), nil
}

func (c *ComandaHTTPClient) ObtenerComanda(ctx context.Context, token, codigo string) (*domain.Comanda, error) {
	var respuesta map[string]any
	path := rutaComandas + "/" + url.PathEscape(codigo)
	if err := c.rest.GetJSON(ctx, token, path, nil, &respuesta); err != nil {
		return nil, err
	}
	comanda, ok := domain.NormalizeComanda(respuesta)
	if !ok {
		return nil, fmt.Errorf("backend returned a comanda without codigo: %s", codigo)
	}
	return &comanda, nil
}

func (c *ComandaHTTPClient) ActualizarEstado(ctx context.Context, token, codigo string, estado domain.EstadoComanda) (*domain.Comanda, error) {
	var respuesta map[string]any
	path := rutaComandas + "/" + url.PathEscape(codigo) + "/estado"
	body := map[string]string{"estado": string(estado)}
	if err := c.rest.SendJSON(ctx, http.MethodPut, token, path, body, &respuesta); err != nil {
		slog.Error("comanda estado update failed", slog.String("codigo", codigo), slog.Any("error", err))
		return nil, err
	}
	comanda, ok := domain.NormalizeComanda(respuesta)
	if !ok {
		// Algunos backends responden el estado sin reenviar la comanda entera.
		comanda = domain.Comanda{Codigo: codigo, Estado: domain.NormalizeEstadoComanda(respuesta["estado"])}
	}
	return &comanda, nil
}
