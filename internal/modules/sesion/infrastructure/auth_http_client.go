package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/restclient"
)

const (
	rutaLogin    = "/api/login"
	rutaRegistro = "/api/registro"
)

// AuthHTTPClient implements port.AuthGateway over the backend auth routes.
type AuthHTTPClient struct {
	rest *restclient.Cliente
}

func NewAuthHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *AuthHTTPClient {
	return &AuthHTTPClient{rest: restclient.New(baseURL, timeout, client)}
}

type credencialesBody struct {
	Nombre     string `json:"nombre"`
	Contrasena string `json:"contraseña"`
}

type registroBody struct {
	Nombre     string `json:"nombre"`
	Contrasena string `json:"contraseña"`
	Roles      []int  `json:"roles"`
}

func (c *AuthHTTPClient) IniciarSesion(ctx context.Context, credenciales port.Credenciales) (string, error) {
	body := credencialesBody{Nombre: credenciales.Nombre, Contrasena: credenciales.Contrasena}
	var respuesta map[string]any
	if err := c.rest.SendJSON(ctx, http.MethodPost, "", rutaLogin, body, &respuesta); err != nil {
		return "", err
	}
	token, _ := respuesta["token"].(string)
	if strings.TrimSpace(token) == "" {
		token, _ = respuesta["auth_token"].(string)
	}
	if strings.TrimSpace(token) == "" {
		slog.Error("login response missing token")
		return "", fmt.Errorf("login response missing token")
	}
	return strings.TrimSpace(token), nil
}

func (c *AuthHTTPClient) Registrar(ctx context.Context, registro port.Registro) error {
	body := registroBody{Nombre: registro.Nombre, Contrasena: registro.Contrasena, Roles: registro.Roles}
	return c.rest.SendJSON(ctx, http.MethodPost, "", rutaRegistro, body, nil)
}
