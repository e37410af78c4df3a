package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/menus/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/menus/domain"
)

var ErrCodigoVacio = errors.New("missing menu code")

// GestionarMenusUseCase cubre el CRUD de menús contra el backend.
type GestionarMenusUseCase struct {
	gateway port.MenuGateway
}

func NewGestionarMenusUseCase(gateway port.MenuGateway) *GestionarMenusUseCase {
	return &GestionarMenusUseCase{gateway: gateway}
}

func (uc *GestionarMenusUseCase) Listar(ctx context.Context, token string) ([]domain.Menu, error) {
	menus, err := uc.gateway.ListarMenus(ctx, token)
	if err != nil {
		slog.Error("menus list failed", slog.Any("error", err))
		return nil, err
	}
	slog.Debug("menus listed", slog.Int("count", len(menus)))
	return menus, nil
}

func (uc *GestionarMenusUseCase) Crear(ctx context.Context, token string, menu domain.Menu) (*domain.Menu, error) {
	if err := menu.Validar(); err != nil {
		return nil, err
	}
	creado, err := uc.gateway.CrearMenu(ctx, token, escritura(menu))
	if err != nil {
		slog.Error("menu create failed", slog.String("categoria", menu.Categoria), slog.Any("error", err))
		return nil, err
	}
	slog.Info("menu created", slog.String("codigo", creado.CodigoMenu), slog.String("categoria", creado.Categoria))
	return creado, nil
}

func (uc *GestionarMenusUseCase) Actualizar(ctx context.Context, token, codigo string, menu domain.Menu) (*domain.Menu, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, ErrCodigoVacio
	}
	if err := menu.Validar(); err != nil {
		return nil, err
	}
	actualizado, err := uc.gateway.ActualizarMenu(ctx, token, codigo, escritura(menu))
	if err != nil {
		slog.Error("menu update failed", slog.String("codigo", codigo), slog.Any("error", err))
		return nil, err
	}
	slog.Info("menu updated", slog.String("codigo", codigo))
	return actualizado, nil
}

func (uc *GestionarMenusUseCase) Eliminar(ctx context.Context, token, codigo string) error {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return ErrCodigoVacio
	}
	if err := uc.gateway.EliminarMenu(ctx, token, codigo); err != nil {
		slog.Error("menu delete failed", slog.String("codigo", codigo), slog.Any("error", err))
		return err
	}
	slog.Info("menu deleted", slog.String("codigo", codigo))
	return nil
}

func escritura(menu domain.Menu) port.EscrituraMenu {
	return port.EscrituraMenu{
		IDUsuario: menu.IDUsuario,
		Categoria: strings.TrimSpace(menu.Categoria),
		Platillos: menu.Platillos,
	}
}
