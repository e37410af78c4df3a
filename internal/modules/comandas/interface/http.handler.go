package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/application/usecase"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/domain"
	sesion "github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/interface"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/httputil"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/restclient"
)

// ComandaHandler expone el borrador de sesión y las vistas de comandas.
type ComandaHandler struct {
	almacen   *usecase.Almacen
	envios    *usecase.EnviarComandaUseCase
	consultas *usecase.ConsultarComandasUseCase
	resolutor domain.Resolutor
	mapper    *httputil.ErrorMapper
}

func NewComandaHandler(
	almacen *usecase.Almacen,
	envios *usecase.EnviarComandaUseCase,
	consultas *usecase.ConsultarComandasUseCase,
	resolutor domain.Resolutor,
) *ComandaHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(usecase.ErrSesionVacia, http.StatusUnauthorized, "sesión no identificada").
		WithMapping(usecase.ErrEnvioEnCurso, http.StatusConflict, "hay un envío en curso para este borrador").
		WithMapping(usecase.ErrCodigoVacio, http.StatusBadRequest, "código de comanda requerido").
		WithMapping(usecase.ErrEstadoNoCanonico, http.StatusBadRequest, "estado fuera del conjunto permitido").
		WithMapping(domain.ErrPlatilloInvalido, http.StatusBadRequest, "platillo inválido").
		WithMapping(domain.ErrCantidadMaxima, http.StatusBadRequest, "cantidad fuera del límite permitido").
		WithMapping(restclient.ErrNoAutorizado, http.StatusUnauthorized, "sesión expirada").
		WithMapping(restclient.ErrProhibido, http.StatusForbidden, "operación no permitida").
		WithMapping(restclient.ErrNoEncontrado, http.StatusNotFound, "comanda no encontrada").
		WithMapping(restclient.ErrPeticionInvalida, http.StatusBadRequest, "el backend rechazó los datos").
		WithMapping(restclient.ErrBackend, http.StatusBadGateway, "el backend no está disponible").
		WithDefault(http.StatusBadGateway, "el backend no está disponible")
	return &ComandaHandler{
		almacen:   almacen,
		envios:    envios,
		consultas: consultas,
		resolutor: resolutor,
		mapper:    mapper,
	}
}

// Registrar wires the draft and comanda routes behind the gatekeeper.
func (h *ComandaHandler) Registrar(e *echo.Echo) {
	e.GET("/api/borrador", h.VerBorrador)
	e.PUT("/api/borrador", h.ActualizarCabecera)
	e.DELETE("/api/borrador", h.ReiniciarBorrador)
	e.POST("/api/borrador/platillos", h.AgregarPlatillo)
	e.PUT("/api/borrador/platillos/:id", h.FijarCantidad)
	e.DELETE("/api/borrador/platillos/:id", h.QuitarPlatillo)
	e.POST("/api/borrador/enviar", h.EnviarBorrador)

	e.GET("/api/comandas", h.ListarComandas)
	e.GET("/api/comandas/:codigo", h.ObtenerComanda)
	e.PUT("/api/comandas/:codigo/estado", h.CambiarEstado)
}

type lineaView struct {
	PlatilloID     int    `json:"platilloId"`
	Nombre         string `json:"nombre"`
	Cantidad       int    `json:"cantidad"`
	PrecioUnitario string `json:"precioUnitario"`
	Subtotal       string `json:"subtotal"`
}

type infraccionView struct {
	Campo   string `json:"campo"`
	Detalle string `json:"detalle"`
}

type borradorView struct {
	BorradorID    string           `json:"borradorId"`
	CodigoComanda string           `json:"codigoComanda,omitempty"`
	ClienteID     int              `json:"clienteId"`
	MeseroID      int              `json:"meseroId"`
	MesaID        int              `json:"mesaId"`
	Estado        string           `json:"estado"`
	Fecha         string           `json:"fecha"`
	Lineas        []lineaView      `json:"lineas"`
	Total         string           `json:"total"`
	Valido        bool             `json:"valido"`
	Infracciones  []infraccionView `json:"infracciones"`
}

// vista resuelve nombres y precios contra el catálogo y adjunta el resultado
// de la validación en vivo, sin tocar la red.
func (h *ComandaHandler) vista(id string, snapshot domain.Snapshot) borradorView {
	lineas := make([]lineaView, 0, len(snapshot.Lineas))
	total := decimal.Zero
	for _, linea := range snapshot.Lineas {
		view := lineaView{
			PlatilloID:     linea.IDPlatillo,
			Cantidad:       linea.Cantidad,
			PrecioUnitario: "0.00",
			Subtotal:       "0.00",
		}
		if platillo, ok := h.resolutor.Platillo(linea.IDPlatillo); ok {
			subtotal := platillo.Precio.Mul(decimal.NewFromInt(int64(linea.Cantidad)))
			view.Nombre = platillo.Nombre
			view.PrecioUnitario = platillo.Precio.StringFixed(2)
			view.Subtotal = subtotal.StringFixed(2)
			total = total.Add(subtotal)
		}
		lineas = append(lineas, view)
	}

	infracciones := domain.ValidarSnapshot(snapshot, h.resolutor)
	views := make([]infraccionView, 0, len(infracciones))
	for _, inf := range infracciones {
		views = append(views, infraccionView{Campo: inf.Campo, Detalle: inf.Detalle})
	}

	return borradorView{
		BorradorID:    id,
		CodigoComanda: snapshot.CodigoComanda,
		ClienteID:     snapshot.ClienteID,
		MeseroID:      snapshot.MeseroID,
		MesaID:        snapshot.MesaID,
		Estado:        string(snapshot.Estado),
		Fecha:         snapshot.Fecha.Format("2006-01-02"),
		Lineas:        lineas,
		Total:         total.StringFixed(2),
		Valido:        len(infracciones) == 0,
		Infracciones:  views,
	}
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, domain.ErrPlatilloInvalido
	}
	return id, nil
}

func (h *ComandaHandler) sessionID(c echo.Context) string {
	claims := sesion.ClaimsDe(c)
	if claims == nil {
		return ""
	}
	return claims.SessionID
}

func (h *ComandaHandler) fallar(err error) error {
	info := h.mapper.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

func (h *ComandaHandler) responderBorrador(c echo.Context, status int) error {
	id, snapshot, err := h.almacen.Consultar(h.sessionID(c))
	if err != nil {
		return h.fallar(err)
	}
	return c.JSON(status, h.vista(id, snapshot))
}

func (h *ComandaHandler) VerBorrador(c echo.Context) error {
	return h.responderBorrador(c, http.StatusOK)
}

type agregarPlatilloRequest struct {
	PlatilloID int `json:"platilloId"`
}

func (h *ComandaHandler) AgregarPlatillo(c echo.Context) error {
	var req agregarPlatilloRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo inválido")
	}
	err := h.almacen.Mutar(h.sessionID(c), func(b *domain.Borrador) error {
		return b.AgregarPlatillo(req.PlatilloID)
	})
	if err != nil {
		return h.fallar(err)
	}
	return h.responderBorrador(c, http.StatusOK)
}

type fijarCantidadRequest struct {
	Cantidad json.Number `json:"cantidad"`
}

// FijarCantidad fija la cantidad de una línea. Una cantidad no numérica se
// rechaza sin tocar el borrador; una cantidad menor a 1 elimina la línea.
func (h *ComandaHandler) FijarCantidad(c echo.Context) error {
	platilloID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "identificador de platillo inválido")
	}
	var req fijarCantidadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo inválido")
	}
	cantidad, err := req.Cantidad.Int64()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "la cantidad debe ser un número entero")
	}
	err = h.almacen.Mutar(h.sessionID(c), func(b *domain.Borrador) error {
		return b.FijarCantidad(platilloID, int(cantidad))
	})
	if err != nil {
		return h.fallar(err)
	}
	return h.responderBorrador(c, http.StatusOK)
}

func (h *ComandaHandler) QuitarPlatillo(c echo.Context) error {
	platilloID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "identificador de platillo inválido")
	}
	err = h.almacen.Mutar(h.sessionID(c), func(b *domain.Borrador) error {
		b.Quitar(platilloID)
		return nil
	})
	if err != nil {
		return h.fallar(err)
	}
	return h.responderBorrador(c, http.StatusOK)
}

type cabeceraRequest struct {
	CodigoComanda *string `json:"codigoComanda"`
	ClienteID     *int    `json:"clienteId"`
	MeseroID      *int    `json:"meseroId"`
	MesaID        *int    `json:"mesaId"`
	Estado        *string `json:"estado"`
}

// ActualizarCabecera aplica una actualización parcial de los campos de
// cabecera. Los campos ausentes del cuerpo no se tocan.
func (h *ComandaHandler) ActualizarCabecera(c echo.Context) error {
	var req cabeceraRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo inválido")
	}
	err := h.almacen.Mutar(h.sessionID(c), func(b *domain.Borrador) error {
		if req.CodigoComanda != nil {
			b.CodigoComanda = strings.TrimSpace(*req.CodigoComanda)
		}
		if req.ClienteID != nil {
			b.ClienteID = *req.ClienteID
		}
		if req.MeseroID != nil {
			b.MeseroID = *req.MeseroID
		}
		if req.MesaID != nil {
			b.MesaID = *req.MesaID
		}
		if req.Estado != nil {
			b.Estado = domain.NormalizeEstadoComanda(*req.Estado)
		}
		return nil
	})
	if err != nil {
		return h.fallar(err)
	}
	return h.responderBorrador(c, http.StatusOK)
}

func (h *ComandaHandler) ReiniciarBorrador(c echo.Context) error {
	err := h.almacen.Mutar(h.sessionID(c), func(b *domain.Borrador) error {
		b.Reiniciar()
		return nil
	})
	if err != nil {
		return h.fallar(err)
	}
	return h.responderBorrador(c, http.StatusOK)
}

// EnviarBorrador corre el pipeline de envío completo. Un borrador inválido
// responde 422 con las infracciones y nunca llega al backend.
func (h *ComandaHandler) EnviarBorrador(c echo.Context) error {
	resultado, err := h.envios.Ejecutar(c.Request().Context(), sesion.TokenDe(c), h.sessionID(c))
	if err != nil {
		if errors.Is(err, usecase.ErrBorradorInvalido) {
			views := make([]infraccionView, 0, len(resultado.Infracciones))
			for _, inf := range resultado.Infracciones {
				views = append(views, infraccionView{Campo: inf.Campo, Detalle: inf.Detalle})
			}
			return c.JSON(http.StatusUnprocessableEntity, map[string]any{
				"message":      "el borrador tiene errores de validación",
				"infracciones": views,
			})
		}
		return h.fallar(err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"comanda": comandaVista(resultado.Comanda),
		"total":   resultado.Total.StringFixed(2),
	})
}

type comandaItemView struct {
	PlatilloID     int    `json:"platilloId"`
	Nombre         string `json:"nombre"`
	Cantidad       int    `json:"cantidad"`
	PrecioUnitario string `json:"precioUnitario"`
	Subtotal       string `json:"subtotal"`
}

type comandaView struct {
	Codigo      string            `json:"codigo"`
	NumMesa     int               `json:"numMesa"`
	FechaPedido string            `json:"fechaPedido"`
	HoraPedido  string            `json:"horaPedido"`
	Estado      string            `json:"estado"`
	Total       string            `json:"total"`
	Items       []comandaItemView `json:"items"`
}

func comandaVista(comanda *domain.Comanda) comandaView {
	items := make([]comandaItemView, 0, len(comanda.Items))
	for _, item := range comanda.Items {
		items = append(items, comandaItemView{
			PlatilloID:     item.IDPlatillo,
			Nombre:         item.NombrePlatillo,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario.StringFixed(2),
			Subtotal:       item.Subtotal.StringFixed(2),
		})
	}
	return comandaView{
		Codigo:      comanda.Codigo,
		NumMesa:     comanda.NumMesa,
		FechaPedido: comanda.FechaPedido,
		HoraPedido:  comanda.HoraPedido,
		Estado:      string(comanda.Estado),
		Total:       comanda.Total.StringFixed(2),
		Items:       items,
	}
}

func (h *ComandaHandler) ListarComandas(c echo.Context) error {
	comandas, err := h.consultas.Listar(c.Request().Context(), sesion.TokenDe(c))
	if err != nil {
		return h.fallar(err)
	}
	views := make([]comandaView, 0, len(comandas))
	for i := range comandas {
		views = append(views, comandaVista(&comandas[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"comandas": views})
}

func (h *ComandaHandler) ObtenerComanda(c echo.Context) error {
	comanda, err := h.consultas.Obtener(c.Request().Context(), sesion.TokenDe(c), c.Param("codigo"))
	if err != nil {
		return h.fallar(err)
	}
	return c.JSON(http.StatusOK, comandaVista(comanda))
}

type cambiarEstadoRequest struct {
	Estado string `json:"estado"`
}

func (h *ComandaHandler) CambiarEstado(c echo.Context) error {
	var req cambiarEstadoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo inválido")
	}
	estado := domain.NormalizeEstadoComanda(req.Estado)
	comanda, err := h.consultas.CambiarEstado(c.Request().Context(), sesion.TokenDe(c), c.Param("codigo"), estado)
	if err != nil {
		return h.fallar(err)
	}
	return c.JSON(http.StatusOK, comandaVista(comanda))
}
