package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/application/usecase"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/httputil"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/restclient"
)

// CookieConfig describe la cookie auth_token emitida tras el login.
type CookieConfig struct {
	Nombre string
	MaxAge time.Duration
	Secure bool
}

// SesionHandler expone login, registro y logout.
type SesionHandler struct {
	sesiones *usecase.SesionUseCase
	cookie   CookieConfig
	mapper   *httputil.ErrorMapper
	// alCerrar permite soltar estado por sesión (el borrador) en el logout.
	alCerrar func(sessionID string)
}

func NewSesionHandler(sesiones *usecase.SesionUseCase, cookie CookieConfig, alCerrar func(string)) *SesionHandler {
	if alCerrar == nil {
		alCerrar = func(string) {}
	}
	mapper := httputil.NewErrorMapper().
		WithMapping(usecase.ErrCredencialesIncompletas, http.StatusBadRequest, "usuario y contraseña son obligatorios").
		WithMapping(usecase.ErrRegistroIncompleto, http.StatusBadRequest, "nombre, contraseña y al menos un rol son obligatorios").
		WithMapping(restclient.ErrNoAutorizado, http.StatusUnauthorized, "usuario o contraseña incorrectos").
		WithMapping(restclient.ErrPeticionInvalida, http.StatusBadRequest, "el backend rechazó los datos").
		WithMapping(restclient.ErrBackend, http.StatusBadGateway, "el backend no está disponible").
		WithDefault(http.StatusBadGateway, "el backend no está disponible")
	return &SesionHandler{sesiones: sesiones, cookie: cookie, mapper: mapper, alCerrar: alCerrar}
}

// Registrar wires the session routes. These stay outside the gatekeeper.
func (h *SesionHandler) Registrar(e *echo.Echo) {
	e.POST("/api/login", h.IniciarSesion)
	e.POST("/api/registro", h.RegistrarUsuario)
	e.POST("/api/logout", h.CerrarSesion)
}

type loginRequest struct {
	Nombre     string `json:"nombre"`
	Contrasena string `json:"contraseña"`
}

func (h *SesionHandler) IniciarSesion(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo inválido")
	}

	token, claims, err := h.sesiones.IniciarSesion(c.Request().Context(), port.Credenciales{
		Nombre:     req.Nombre,
		Contrasena: req.Contrasena,
	})
	if err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Nombre,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]any{
		"usuario": map[string]any{
			"id":     claims.UserID(),
			"nombre": claims.Nombre,
			"roles":  claims.Roles,
		},
	})
}

type registroRequest struct {
	Nombre     string `json:"nombre"`
	Contrasena string `json:"contraseña"`
	Roles      []int  `json:"roles"`
}

func (h *SesionHandler) RegistrarUsuario(c echo.Context) error {
	var req registroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo inválido")
	}

	err := h.sesiones.Registrar(c.Request().Context(), port.Registro{
		Nombre:     req.Nombre,
		Contrasena: req.Contrasena,
		Roles:      req.Roles,
	})
	if err != nil {
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
	return c.JSON(http.StatusCreated, map[string]string{"message": "usuario registrado"})
}

func (h *SesionHandler) CerrarSesion(c echo.Context) error {
	if claims := ClaimsDe(c); claims != nil {
		h.alCerrar(claims.SessionID)
	}
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Nombre,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}
