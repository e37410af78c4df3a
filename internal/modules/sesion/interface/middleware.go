package transport

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/auth"
)

const (
	claimsContextKey = "sesion.claims"
	tokenContextKey  = "sesion.token"
)

// ClaimsDe returns the validated session claims stored by the gatekeeper.
func ClaimsDe(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsContextKey).(*auth.Claims)
	return claims
}

// TokenDe returns the raw backend token stored by the gatekeeper, forwarded
// on every outbound call.
func TokenDe(c echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}

// GatekeeperConfig controls the request gatekeeper.
type GatekeeperConfig struct {
	CookieName string
	Validator  auth.TokenValidator
	// RutasPublicas se atienden sin sesión (login, registro, assets).
	RutasPublicas []string
}

// Gatekeeper guards protected paths: API requests without a valid auth_token
// get 401; page navigation gets redirected to /login, and an authenticated
// session hitting /login is sent to /dashboard.
func Gatekeeper(cfg GatekeeperConfig) echo.MiddlewareFunc {
	publicas := cfg.RutasPublicas
	if len(publicas) == 0 {
		publicas = []string{"/api/login", "/api/registro", "/login", "/favicon.ico"}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			token := auth.ExtractToken(c.Request(), cfg.CookieName, "token")

			if esPublica(path, publicas) {
				// Una sesión vigente no tiene nada que hacer en /login.
				if path == "/login" && token != "" {
					if _, err := cfg.Validator.Validate(token); err == nil {
						slog.Debug("gatekeeper redirecting authenticated session", slog.String("path", path))
						return c.Redirect(http.StatusFound, "/dashboard")
					}
				}
				return next(c)
			}

			claims, err := cfg.Validator.Validate(token)
			if err != nil {
				slog.Debug("gatekeeper rejected request", slog.String("path", path), slog.Any("error", err))
				if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/ws/") {
					return echo.NewHTTPError(http.StatusUnauthorized, "sesión requerida")
				}
				return c.Redirect(http.StatusFound, "/login")
			}

			c.Set(claimsContextKey, claims)
			c.Set(tokenContextKey, token)
			return next(c)
		}
	}
}

func esPublica(path string, publicas []string) bool {
	for _, publica := range publicas {
		if path == publica || strings.HasPrefix(path, publica+"/") {
			return true
		}
	}
	return false
}
