package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/sesion/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/auth"
)

var (
	ErrCredencialesIncompletas = errors.New("nombre and contraseña are required")
	ErrRegistroIncompleto      = errors.New("nombre, contraseña and at least one rol are required")
)

// SesionUseCase maneja login y registro contra el backend. El gateway sólo
// transporta; el token emitido se valida localmente antes de aceptarlo.
type SesionUseCase struct {
	gateway   port.AuthGateway
	validator auth.TokenValidator
}

func NewSesionUseCase(gateway port.AuthGateway, validator auth.TokenValidator) *SesionUseCase {
	return &SesionUseCase{gateway: gateway, validator: validator}
}

// IniciarSesion authenticates against the backend and returns the issued
// token with its parsed claims.
func (uc *SesionUseCase) IniciarSesion(ctx context.Context, credenciales port.Credenciales) (string, *auth.Claims, error) {
	if strings.TrimSpace(credenciales.Nombre) == "" || strings.TrimSpace(credenciales.Contrasena) == "" {
		return "", nil, ErrCredencialesIncompletas
	}
	token, err := uc.gateway.IniciarSesion(ctx, credenciales)
	if err != nil {
		slog.Warn("login failed", slog.String("nombre", credenciales.Nombre), slog.Any("error", err))
		return "", nil, err
	}
	claims, err := uc.validator.Validate(token)
	if err != nil {
		slog.Error("backend issued an unusable token", slog.Any("error", err))
		return "", nil, fmt.Errorf("backend token rejected: %w", err)
	}
	slog.Info("login succeeded", slog.String("userId", claims.UserID()), slog.Any("roles", claims.Roles))
	return token, claims, nil
}

// Registrar proxies user registration after checking required fields locally,
// so an obviously incomplete form never reaches the backend.
func (uc *SesionUseCase) Registrar(ctx context.Context, registro port.Registro) error {
	if strings.TrimSpace(registro.Nombre) == "" || strings.TrimSpace(registro.Contrasena) == "" || len(registro.Roles) == 0 {
		return ErrRegistroIncompleto
	}
	if err := uc.gateway.Registrar(ctx, registro); err != nil {
		slog.Warn("registro failed", slog.String("nombre", registro.Nombre), slog.Any("error", err))
		return err
	}
	slog.Info("registro succeeded", slog.String("nombre", registro.Nombre))
	return nil
}
