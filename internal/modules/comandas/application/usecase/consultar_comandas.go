package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/domain"
)

var (
	ErrCodigoVacio      = errors.New("missing comanda code")
	ErrEstadoNoCanonico = errors.New("estado outside the canonical set")
)

// ConsultarComandasUseCase cubre las vistas de lectura y el cambio de estado.
type ConsultarComandasUseCase struct {
	gateway     port.ComandaGateway
	notificador port.Notificador
}

func NewConsultarComandasUseCase(gateway port.ComandaGateway, notificador port.Notificador) *ConsultarComandasUseCase {
	if notificador == nil {
		notificador = port.NotificadorNulo{}
	}
	return &ConsultarComandasUseCase{gateway: gateway, notificador: notificador}
}

func (uc *ConsultarComandasUseCase) Listar(ctx context.Context, token string) ([]domain.Comanda, error) {
	comandas, err := uc.gateway.ListarComandas(ctx, token)
	if err != nil {
		slog.Error("comandas list failed", slog.Any("error", err))
		return nil, err
	}
	slog.Debug("comandas listed", slog.Int("count", len(comandas)))
	return comandas, nil
}

func (uc *ConsultarComandasUseCase) Obtener(ctx context.Context, token, codigo string) (*domain.Comanda, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, ErrCodigoVacio
	}
	comanda, err := uc.gateway.ObtenerComanda(ctx, token, codigo)
	if err != nil {
		slog.Error("comanda fetch failed", slog.String("codigo", codigo), slog.Any("error", err))
		return nil, err
	}
	return comanda, nil
}

// CambiarEstado valida el estado contra el conjunto canónico antes de llamar
// al backend y confía en la respuesta como autoritativa.
func (uc *ConsultarComandasUseCase) CambiarEstado(ctx context.Context, token, codigo string, estado domain.EstadoComanda) (*domain.Comanda, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, ErrCodigoVacio
	}
	if !estado.EsCanonico() {
		return nil, fmt.Errorf("%w: %q", ErrEstadoNoCanonico, string(estado))
	}
	comanda, err := uc.gateway.ActualizarEstado(ctx, token, codigo, estado)
	if err != nil {
		slog.Error("comanda estado update failed", slog.String("codigo", codigo), slog.String("estado", string(estado)), slog.Any("error", err))
		return nil, err
	}
	uc.notificador.ComandaCambiada("updated", comanda)
	slog.Info("comanda estado updated", slog.String("codigo", codigo), slog.String("estado", string(comanda.Estado)))
	return comanda, nil
}
