package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/auth"
)

type validadorFalso struct {
	claims *auth.Claims
}

func (v *validadorFalso) Validate(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, auth.ErrMissingToken
	}
	if v.claims == nil || token != "token-valido" {
		return nil, auth.ErrInvalidToken
	}
	return v.claims, nil
}

func servidorConGatekeeper(validator auth.TokenValidator) *echo.Echo {
	e := echo.New()
	e.Use(Gatekeeper(GatekeeperConfig{CookieName: "auth_token", Validator: validator}))
	e.GET("/api/catalogo", func(c echo.Context) error {
		claims := ClaimsDe(c)
		if claims == nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, map[string]string{"usuario": claims.UserID(), "token": TokenDe(c)})
	})
	e.GET("/dashboard", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/api/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return e
}

func claimsDePrueba() *auth.Claims {
	claims := &auth.Claims{SessionID: "ses-001"}
	claims.RegisteredClaims.Subject = "42"
	return claims
}

func peticion(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	}
	return req
}

func TestGatekeeperRutaPublicaSinSesion(t *testing.T) {
	e := servidorConGatekeeper(&validadorFalso{})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, peticion(http.MethodPost, "/api/login", ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("ruta pública bloqueada: %d", rec.Code)
	}
}

func TestGatekeeperAPIRechazaSinToken(t *testing.T) {
	e := servidorConGatekeeper(&validadorFalso{})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, peticion(http.MethodGet, "/api/catalogo", ""))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("esperaba 401, obtuve %d", rec.Code)
	}
}

func TestGatekeeperAPIRechazaTokenInvalido(t *testing.T) {
	e := servidorConGatekeeper(&validadorFalso{claims: claimsDePrueba()})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, peticion(http.MethodGet, "/api/catalogo", "token-roto"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("esperaba 401, obtuve %d", rec.Code)
	}
}

func TestGatekeeperNavegacionRedirigeALogin(t *testing.T) {
	e := servidorConGatekeeper(&validadorFalso{})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, peticion(http.MethodGet, "/dashboard", ""))
	if rec.Code != http.StatusFound {
		t.Fatalf("esperaba 302, obtuve %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/login" {
		t.Fatalf("Location = %q", got)
	}
}

func TestGatekeeperSesionValidaPasaYExponeClaims(t *testing.T) {
	e := servidorConGatekeeper(&validadorFalso{claims: claimsDePrueba()})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, peticion(http.MethodGet, "/api/catalogo", "token-valido"))
	if rec.Code != http.StatusOK {
		t.Fatalf("esperaba 200, obtuve %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, fragmento := range []string{`"usuario":"42"`, `"token":"token-valido"`} {
		if !strings.Contains(body, fragmento) {
			t.Fatalf("respuesta sin %s: %s", fragmento, body)
		}
	}
}

func TestGatekeeperSesionActivaEnLoginVaAlDashboard(t *testing.T) {
	e := servidorConGatekeeper(&validadorFalso{claims: claimsDePrueba()})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, peticion(http.MethodGet, "/login", "token-valido"))
	if rec.Code != http.StatusFound {
		t.Fatalf("esperaba 302, obtuve %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/dashboard" {
		t.Fatalf("Location = %q", got)
	}
}

func TestGatekeeperLoginConTokenRotoSigueSiendoPublico(t *testing.T) {
	e := servidorConGatekeeper(&validadorFalso{claims: claimsDePrueba()})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, peticion(http.MethodGet, "/login", "token-roto"))
	if rec.Code != http.StatusOK {
		t.Fatalf("login con token vencido debe servirse: %d", rec.Code)
	}
}
