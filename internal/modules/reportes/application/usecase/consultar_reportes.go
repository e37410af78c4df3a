package usecase

import (
	"context"
	"log/slog"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/reportes/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/reportes/domain"
)

// ConsultarReportesUseCase valida el rango y delega la consulta al backend.
type ConsultarReportesUseCase struct {
	fetcher port.ReporteFetcher
}

func NewConsultarReportesUseCase(fetcher port.ReporteFetcher) *ConsultarReportesUseCase {
	return &ConsultarReportesUseCase{fetcher: fetcher}
}

func (uc *ConsultarReportesUseCase) Resumen(ctx context.Context, token, inicio, fin string) (*domain.Resumen, error) {
	rango, err := domain.NuevoRangoFechas(inicio, fin)
	if err != nil {
		return nil, err
	}
	resumen, err := uc.fetcher.ObtenerResumen(ctx, token, rango)
	if err != nil {
		slog.Error("reporte resumen failed", slog.String("inicio", inicio), slog.String("fin", fin), slog.Any("error", err))
		return nil, err
	}
	return resumen, nil
}

func (uc *ConsultarReportesUseCase) Ventas(ctx context.Context, token, inicio, fin string) ([]domain.Venta, error) {
	rango, err := domain.NuevoRangoFechas(inicio, fin)
	if err != nil {
		return nil, err
	}
	ventas, err := uc.fetcher.ListarVentas(ctx, token, rango)
	if err != nil {
		slog.Error("reporte ventas failed", slog.String("inicio", inicio), slog.String("fin", fin), slog.Any("error", err))
		return nil, err
	}
	slog.Debug("reporte ventas listed", slog.Int("count", len(ventas)))
	return ventas, nil
}
