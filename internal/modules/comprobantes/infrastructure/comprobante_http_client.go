package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comprobantes/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comprobantes/domain"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/restclient"
)

const rutaComprobantes = "/api/comprobantes"

// ComprobanteHTTPClient implements port.ComprobanteGateway over the backend REST API.
type ComprobanteHTTPClient struct {
	rest *restclient.Cliente
}

func NewComprobanteHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *ComprobanteHTTPClient {
	return &ComprobanteHTTPClient{rest: restclient.New(baseURL, timeout, client)}
}

func (c *ComprobanteHTTPClient) EmitirComprobante(ctx context.Context, token string, emision port.EmisionComprobante) (*domain.Comprobante, error) {
	var respuesta map[string]any
	if err := c.rest.SendJSON(ctx, http.MethodPost, token, rutaComprobantes, emision, &respuesta); err != nil {
		slog.Error("comprobante emit failed", slog.String("codigoComanda", emision.CodigoComanda), slog.Any("error", err))
		return nil, err
	}
	comprobante, ok := domain.NormalizeComprobante(respuesta)
	if !ok {
		// El backend confirma sin cuerpo completo; conservamos lo enviado.
		comprobante = domain.Comprobante{
			CodigoComanda: emision.CodigoComanda,
			Tipo:          emision.Tipo,
			FechaEmision:  emision.FechaEmision,
			HoraEmision:   emision.HoraEmision,
		}
	}
	slog.Info("comprobante emitted", slog.String("codigoComanda", emision.CodigoComanda), slog.String("tipo", string(emision.Tipo)))
	return &comprobante, nil
}

func (c *ComprobanteHTTPClient) ListarComprobantes(ctx context.Context, token string) ([]domain.Comprobante, error) {
	var payload []any
	if err := c.rest.GetJSON(ctx, token, rutaComprobantes, nil, &payload); err != nil {
		return nil, err
	}
	comprobantes := make([]domain.Comprobante, 0, len(payload))
	for _, item := range payload {
		comprobante, ok := domain.NormalizeComprobante(item)
		if !ok {
			slog.Debug("comprobante payload skipped", slog.Any("item", fmt.Sprintf("%T", item)))
			continue
		}
		comprobantes = append(comprobantes, comprobante)
	}
	return comprobantes, nil
}
