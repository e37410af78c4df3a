package port

import (
	"context"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/reportes/domain"
)

// ReporteFetcher habla con el backend de reportes.
type ReporteFetcher interface {
	ObtenerResumen(ctx context.Context, token string, rango domain.RangoFechas) (*domain.Resumen, error)
	ListarVentas(ctx context.Context, token string, rango domain.RangoFechas) ([]domain.Venta, error)
}
