package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/application/usecase"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/catalogo/domain"
	sesion "github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/interface"
)

// CatalogoHandler sirve las colecciones de referencia ya cargadas en memoria.
type CatalogoHandler struct {
	cache *usecase.Cache
}

func NewCatalogoHandler(cache *usecase.Cache) *CatalogoHandler {
	return &CatalogoHandler{cache: cache}
}

func (h *CatalogoHandler) Registrar(e *echo.Echo) {
	e.GET("/api/catalogo", h.VerCatalogo)
	e.POST("/api/catalogo/refrescar", h.Refrescar)
	e.GET("/api/catalogo/platillos", h.ListarPlatillos)
	e.GET("/api/catalogo/mesas", h.ListarMesas)
	e.GET("/api/catalogo/clientes", h.ListarClientes)
	e.GET("/api/catalogo/meseros", h.ListarMeseros)
}

type platilloView struct {
	ID        int    `json:"id"`
	Codigo    string `json:"codigo,omitempty"`
	Nombre    string `json:"nombre"`
	Detalle   string `json:"detalle,omitempty"`
	Precio    string `json:"precio"`
	ImagenURL string `json:"imagenUrl,omitempty"`
}

type mesaView struct {
	ID        int    `json:"id"`
	Numero    int    `json:"numero"`
	Capacidad int    `json:"capacidad"`
	Estado    string `json:"estado"`
}

type usuarioView struct {
	ID     int      `json:"id"`
	Nombre string   `json:"nombre"`
	Roles  []string `json:"roles,omitempty"`
}

type estadoRecursoView struct {
	Fase  string `json:"fase"`
	Error string `json:"error,omitempty"`
}

func platillosVista(items []domain.Platillo) []platilloView {
	views := make([]platilloView, 0, len(items))
	for _, p := range items {
		views = append(views, platilloView{
			ID:        p.ID,
			Codigo:    p.Codigo,
			Nombre:    p.Nombre,
			Detalle:   p.Detalle,
			Precio:    p.Precio.StringFixed(2),
			ImagenURL: p.ImagenURL,
		})
	}
	return views
}

func mesasVista(items []domain.Mesa) []mesaView {
	views := make([]mesaView, 0, len(items))
	for _, m := range items {
		views = append(views, mesaView{ID: m.ID, Numero: m.Numero, Capacidad: m.Capacidad, Estado: string(m.Estado)})
	}
	return views
}

func usuariosVista(items []domain.Usuario) []usuarioView {
	views := make([]usuarioView, 0, len(items))
	for _, u := range items {
		views = append(views, usuarioView{ID: u.ID, Nombre: u.Nombre, Roles: u.Roles})
	}
	return views
}

func estadosVista(estados map[string]domain.EstadoRecurso) map[string]estadoRecursoView {
	views := make(map[string]estadoRecursoView, len(estados))
	for entidad, estado := range estados {
		view := estadoRecursoView{Fase: string(estado.Fase)}
		if estado.Err != nil {
			view.Error = estado.Err.Error()
		}
		views[entidad] = view
	}
	return views
}

// VerCatalogo entrega todas las colecciones junto con su fase de carga. Las
// mesas se filtran a las disponibles, las únicas que un borrador puede referir.
func (h *CatalogoHandler) VerCatalogo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"platillos": platillosVista(h.cache.Platillos()),
		"mesas":     mesasVista(h.cache.MesasDisponibles()),
		"clientes":  usuariosVista(h.cache.Clientes()),
		"meseros":   usuariosVista(h.cache.Meseros()),
		"estados":   estadosVista(h.cache.Estados()),
	})
}

// Refrescar recarga el catálogo en paralelo. Una recarga parcial responde 207
// con los estados por colección para que la vista reintente solo lo fallido.
func (h *CatalogoHandler) Refrescar(c echo.Context) error {
	err := h.cache.Refrescar(c.Request().Context(), sesion.TokenDe(c))
	estados := estadosVista(h.cache.Estados())
	if err != nil {
		return c.JSON(http.StatusMultiStatus, map[string]any{
			"message": "recarga incompleta",
			"estados": estados,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"estados": estados})
}

func (h *CatalogoHandler) ListarPlatillos(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"platillos": platillosVista(h.cache.Platillos())})
}

func (h *CatalogoHandler) ListarMesas(c echo.Context) error {
	if c.QueryParam("disponibles") == "true" {
		return c.JSON(http.StatusOK, map[string]any{"mesas": mesasVista(h.cache.MesasDisponibles())})
	}
	return c.JSON(http.StatusOK, map[string]any{"mesas": mesasVista(h.cache.Mesas())})
}

func (h *CatalogoHandler) ListarClientes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"clientes": usuariosVista(h.cache.Clientes())})
}

func (h *CatalogoHandler) ListarMeseros(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"meseros": usuariosVista(h.cache.Meseros())})
}
