package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/reportes/application/usecase"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/reportes/domain"
	sesion "github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/interface"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/httputil"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/restclient"
)

// ReporteHandler expone el resumen y el detalle de ventas por rango de fechas.
type ReporteHandler struct {
	reportes *usecase.ConsultarReportesUseCase
	mapper   *httputil.ErrorMapper
}

func NewReporteHandler(reportes *usecase.ConsultarReportesUseCase) *ReporteHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrRangoIncompleto, http.StatusBadRequest, "inicio y fin son obligatorios").
		WithMapping(domain.ErrFechaInvalida, http.StatusBadRequest, "la fecha debe tener formato AAAA-MM-DD").
		WithMapping(domain.ErrRangoInvertido, http.StatusBadRequest, "la fecha de inicio debe ser anterior o igual a la de fin").
		WithMapping(restclient.ErrNoAutorizado, http.StatusUnauthorized, "sesión expirada").
		WithMapping(restclient.ErrProhibido, http.StatusForbidden, "operación no permitida").
		WithMapping(restclient.ErrBackend, http.StatusBadGateway, "el backend no está disponible").
		WithDefault(http.StatusBadGateway, "el backend no está disponible")
	return &ReporteHandler{reportes: reportes, mapper: mapper}
}

func (h *ReporteHandler) Registrar(e *echo.Echo) {
	e.GET("/api/reportes/resumen", h.Resumen)
	e.GET("/api/reportes/ventas", h.Ventas)
}

type resumenView struct {
	TotalVentas       string `json:"totalVentas"`
	PlatoMasVendido   string `json:"platoMasVendido"`
	PlatoMenosVendido string `json:"platoMenosVendido"`
	FechaInicio       string `json:"fechaInicio"`
	FechaFin          string `json:"fechaFin"`
}

type ventaView struct {
	CodigoComprobante string `json:"codigoComprobante"`
	CodigoComanda     string `json:"codigoComanda"`
	TotalVenta        string `json:"totalVenta"`
	IDUsuario         int    `json:"idUsuario"`
}

func (h *ReporteHandler) Resumen(c echo.Context) error {
	resumen, err := h.reportes.Resumen(c.Request().Context(), sesion.TokenDe(c), c.QueryParam("inicio"), c.QueryParam("fin"))
	if err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	return c.JSON(http.StatusOK, resumenView{
		TotalVentas:       resumen.TotalVentas.StringFixed(2),
		PlatoMasVendido:   resumen.PlatoMasVendido,
		PlatoMenosVendido: resumen.PlatoMenosVendido,
		FechaInicio:       resumen.FechaInicio,
		FechaFin:          resumen.FechaFin,
	})
}

func (h *ReporteHandler) Ventas(c echo.Context) error {
	ventas, err := h.reportes.Ventas(c.Request().Context(), sesion.TokenDe(c), c.QueryParam("inicio"), c.QueryParam("fin"))
	if err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	views := make([]ventaView, 0, len(ventas))
	for _, venta := range ventas {
		views = append(views, ventaView{
			CodigoComprobante: venta.CodigoComprobante,
			CodigoComanda:     venta.CodigoComanda,
			TotalVenta:        venta.TotalVenta.StringFixed(2),
			IDUsuario:         venta.IDUsuario,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"ventas": views})
}
