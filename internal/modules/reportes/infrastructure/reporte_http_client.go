package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/reportes/domain"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/restclient"
)

// ReporteHTTPClient implements port.ReporteFetcher over the backend REST API.
type ReporteHTTPClient struct {
	rest *restclient.Cliente
}

func NewReporteHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *ReporteHTTPClient {
	return &ReporteHTTPClient{rest: restclient.New(baseURL, timeout, client)}
}

func rangoQuery(rango domain.RangoFechas) url.Values {
	query := url.Values{}
	query.Set("inicio", rango.Inicio.Format("2006-01-02"))
	query.Set("fin", rango.Fin.Format("2006-01-02"))
	return query
}

func (c *ReporteHTTPClient) ObtenerResumen(ctx context.Context, token string, rango domain.RangoFechas) (*domain.Resumen, error) {
	var respuesta map[string]any
	if err := c.rest.GetJSON(ctx, token, "/reportes/resumen", rangoQuery(rango), &respuesta); err != nil {
		return nil, err
	}
	resumen, ok := domain.NormalizeResumen(respuesta)
	if !ok {
		return nil, fmt.Errorf("backend returned an empty resumen")
	}
	if resumen.FechaInicio == "" {
		resumen.FechaInicio = rango.Inicio.Format("2006-01-02")
	}
	if resumen.FechaFin == "" {
		resumen.FechaFin = rango.Fin.Format("2006-01-02")
	}
	return &resumen, nil
}

func (c *ReporteHTTPClient) ListarVentas(ctx context.Context, token string, rango domain.RangoFechas) ([]domain.Venta, error) {
	var payload []any
	if err := c.rest.GetJSON(ctx, token, "/reportes/ventas", rangoQuery(rango), &payload); err != nil {
		return nil, err
	}
	return domain.NormalizeVentas(payload), nil
}
