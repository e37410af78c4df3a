package transport

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comprobantes/application/usecase"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comprobantes/domain"
	sesion "github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/interface"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/httputil"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/restclient"
)

// ComprobanteHandler expone la emisión de boletas y facturas.
type ComprobanteHandler struct {
	emisiones *usecase.EmitirComprobanteUseCase
	mapper    *httputil.ErrorMapper
}

func NewComprobanteHandler(emisiones *usecase.EmitirComprobanteUseCase) *ComprobanteHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(usecase.ErrCodigoVacio, http.StatusBadRequest, "código de comanda requerido").
		WithMapping(usecase.ErrComandaNoServida, http.StatusConflict, "solo una comanda servida admite comprobante").
		WithMapping(restclient.ErrNoAutorizado, http.StatusUnauthorized, "sesión expirada").
		WithMapping(restclient.ErrProhibido, http.StatusForbidden, "operación no permitida").
		WithMapping(restclient.ErrNoEncontrado, http.StatusNotFound, "comanda no encontrada").
		WithMapping(restclient.ErrPeticionInvalida, http.StatusBadRequest, "el backend rechazó los datos").
		WithMapping(restclient.ErrBackend, http.StatusBadGateway, "el backend no está disponible").
		WithDefault(http.StatusBadGateway, "el backend no está disponible")
	return &ComprobanteHandler{emisiones: emisiones, mapper: mapper}
}

func (h *ComprobanteHandler) Registrar(e *echo.Echo) {
	e.GET("/api/comprobantes", h.Listar)
	e.POST("/api/comprobantes", h.Emitir)
}

type datosClienteRequest struct {
	DNI         string `json:"dni"`
	Nombre      string `json:"nombre"`
	RUC         string `json:"ruc"`
	RazonSocial string `json:"razonSocial"`
	Direccion   string `json:"direccion"`
}

type emitirRequest struct {
	CodigoComanda string              `json:"codigoComanda"`
	Tipo          string              `json:"tipo"`
	DatosCliente  datosClienteRequest `json:"datosCliente"`
}

type infraccionView struct {
	Campo   string `json:"campo"`
	Detalle string `json:"detalle"`
}

type comprobanteView struct {
	Codigo        string `json:"codigo,omitempty"`
	CodigoComanda string `json:"codigoComanda"`
	Tipo          string `json:"tipo"`
	FechaEmision  string `json:"fechaEmision"`
	HoraEmision   string `json:"horaEmision"`
	Total         string `json:"total"`
}

func comprobanteVista(comprobante *domain.Comprobante) comprobanteView {
	return comprobanteView{
		Codigo:        comprobante.Codigo,
		CodigoComanda: comprobante.CodigoComanda,
		Tipo:          string(comprobante.Tipo),
		FechaEmision:  comprobante.FechaEmision,
		HoraEmision:   comprobante.HoraEmision,
		Total:         comprobante.Total.StringFixed(2),
	}
}

// Emitir valida la rama fiscal elegida y emite el documento. Un tipo
// desconocido o datos incompletos responden 422 sin llamar al backend.
func (h *ComprobanteHandler) Emitir(c echo.Context) error {
	var req emitirRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo inválido")
	}

	tipo, _ := domain.NormalizeTipoComprobante(req.Tipo)
	resultado, err := h.emisiones.Emitir(c.Request().Context(), sesion.TokenDe(c), usecase.Emision{
		CodigoComanda: req.CodigoComanda,
		Tipo:          tipo,
		Datos: domain.DatosCliente{
			DNI:         req.DatosCliente.DNI,
			Nombre:      req.DatosCliente.Nombre,
			RUC:         req.DatosCliente.RUC,
			RazonSocial: req.DatosCliente.RazonSocial,
			Direccion:   req.DatosCliente.Direccion,
		},
	})
	if err != nil {
		if errors.Is(err, usecase.ErrDatosInvalidos) {
			views := make([]infraccionView, 0, len(resultado.Infracciones))
			for _, inf := range resultado.Infracciones {
				views = append(views, infraccionView{Campo: inf.Campo, Detalle: inf.Detalle})
			}
			return c.JSON(http.StatusUnprocessableEntity, map[string]any{
				"message":      "datos fiscales inválidos",
				"infracciones": views,
			})
		}
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}

	return c.JSON(http.StatusCreated, comprobanteVista(resultado.Comprobante))
}

func (h *ComprobanteHandler) Listar(c echo.Context) error {
	comprobantes, err := h.emisiones.Listar(c.Request().Context(), sesion.TokenDe(c))
	if err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	views := make([]comprobanteView, 0, len(comprobantes))
	for i := range comprobantes {
		views = append(views, comprobanteVista(&comprobantes[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"comprobantes": views})
}
