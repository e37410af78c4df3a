package transport

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/menus/application/usecase"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/menus/domain"
	sesion "github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/interface"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/httputil"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/restclient"
)

// MenuHandler expone el CRUD de menús.
type MenuHandler struct {
	menus  *usecase.GestionarMenusUseCase
	mapper *httputil.ErrorMapper
}

func NewMenuHandler(menus *usecase.GestionarMenusUseCase) *MenuHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(usecase.ErrCodigoVacio, http.StatusBadRequest, "código de menú requerido").
		WithMapping(domain.ErrCategoriaVacia, http.StatusBadRequest, "la categoría es obligatoria").
		WithMapping(domain.ErrSinPlatillos, http.StatusBadRequest, "un menú necesita al menos un platillo").
		WithMapping(restclient.ErrNoAutorizado, http.StatusUnauthorized, "sesión expirada").
		WithMapping(restclient.ErrProhibido, http.StatusForbidden, "operación no permitida").
		WithMapping(restclient.ErrNoEncontrado, http.StatusNotFound, "menú no encontrado").
		WithMapping(restclient.ErrPeticionInvalida, http.StatusBadRequest, "el backend rechazó los datos").
		WithMapping(restclient.ErrBackend, http.StatusBadGateway, "el backend no está disponible").
		WithDefault(http.StatusBadGateway, "el backend no está disponible")
	return &MenuHandler{menus: menus, mapper: mapper}
}

func (h *MenuHandler) Registrar(e *echo.Echo) {
	e.GET("/api/menus", h.Listar)
	e.POST("/api/menus", h.Crear)
	e.PUT("/api/menus/:codigo", h.Actualizar)
	e.DELETE("/api/menus/:codigo", h.Eliminar)
}

type menuRequest struct {
	IDUsuario int      `json:"idUsuario"`
	Categoria string   `json:"categoria"`
	Platillos []string `json:"platillos"`
}

type menuView struct {
	CodigoMenu string   `json:"codigoMenu"`
	IDUsuario  int      `json:"idUsuario"`
	Categoria  string   `json:"categoria"`
	Platillos  []string `json:"platillos"`
}

func menuVista(menu *domain.Menu) menuView {
	platillos := menu.Platillos
	if platillos == nil {
		platillos = []string{}
	}
	return menuView{
		CodigoMenu: menu.CodigoMenu,
		IDUsuario:  menu.IDUsuario,
		Categoria:  menu.Categoria,
		Platillos:  platillos,
	}
}

// fallar traduce el error a HTTP. Un 400 del backend con errores por campo
// se reenvía con el detalle para que el formulario lo pinte.
func (h *MenuHandler) fallar(c echo.Context, err error) error {
	var apiErr *restclient.APIError
	if errors.As(err, &apiErr) && len(apiErr.Campos) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"message": "errores de validación",
			"campos":  apiErr.Campos,
		})
	}
	info := h.mapper.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

func (h *MenuHandler) Listar(c echo.Context) error {
	menus, err := h.menus.Listar(c.Request().Context(), sesion.TokenDe(c))
	if err != nil {
		return h.fallar(c, err)
	}
	views := make([]menuView, 0, len(menus))
	for i := range menus {
		views = append(views, menuVista(&menus[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"menus": views})
}

func (h *MenuHandler) Crear(c echo.Context) error {
	var req menuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo inválido")
	}
	menu, err := h.menus.Crear(c.Request().Context(), sesion.TokenDe(c), domain.Menu{
		IDUsuario: req.IDUsuario,
		Categoria: req.Categoria,
		Platillos: req.Platillos,
	})
	if err != nil {
		return h.fallar(c, err)
	}
	return c.JSON(http.StatusCreated, menuVista(menu))
}

func (h *MenuHandler) Actualizar(c echo.Context) error {
	var req menuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo inválido")
	}
	menu, err := h.menus.Actualizar(c.Request().Context(), sesion.TokenDe(c), c.Param("codigo"), domain.Menu{
		IDUsuario: req.IDUsuario,
		Categoria: req.Categoria,
		Platillos: req.Platillos,
	})
	if err != nil {
		return h.fallar(c, err)
	}
	return c.JSON(http.StatusOK, menuVista(menu))
}

func (h *MenuHandler) Eliminar(c echo.Context) error {
	if err := h.menus.Eliminar(c.Request().Context(), sesion.TokenDe(c), c.Param("codigo")); err != nil {
		return h.fallar(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
