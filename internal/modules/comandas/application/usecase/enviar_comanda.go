package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/domain"
)

// ErrBorradorInvalido signals that validation rejected the snapshot; the
// accompanying result lists the violated rules and no network call was made.
var ErrBorradorInvalido = errors.New("borrador failed validation")

// FaseEnvio traces the single-submission state machine. A submission always
// returns to idle; nothing survives a process restart.
type FaseEnvio string

const (
	FaseInactiva   FaseEnvio = "inactiva"
	FaseValidando  FaseEnvio = "validando"
	FaseEnviando   FaseEnvio = "enviando"
	FaseCompletada FaseEnvio = "completada"
	FaseFallida    FaseEnvio = "fallida"
)

// ResultadoEnvio reports the submission outcome to the interface layer.
type ResultadoEnvio struct {
	Fase         FaseEnvio
	Comanda      *domain.Comanda
	Total        decimal.Decimal
	Infracciones []domain.Infraccion
}

// EnviarComandaUseCase is the submission pipeline: it validates the session
// draft, flattens it into the backend wire shape, issues exactly one request,
// and reconciles the draft with the outcome.
type EnviarComandaUseCase struct {
	almacen     *Almacen
	gateway     port.ComandaGateway
	resolutor   domain.Resolutor
	notificador port.Notificador
}

func NewEnviarComandaUseCase(almacen *Almacen, gateway port.ComandaGateway, resolutor domain.Resolutor, notificador port.Notificador) *EnviarComandaUseCase {
	if notificador == nil {
		notificador = port.NotificadorNulo{}
	}
	return &EnviarComandaUseCase{
		almacen:     almacen,
		gateway:     gateway,
		resolutor:   resolutor,
		notificador: notificador,
	}
}

// Ejecutar runs one submission. Validation always completes before any
// network call begins; an invalid draft never reaches the gateway. On a
// backend failure the draft is left untouched for the user to retry; on
// success the draft resets and dependent views are told to refresh.
func (uc *EnviarComandaUseCase) Ejecutar(ctx context.Context, token, sessionID string) (*ResultadoEnvio, error) {
	snapshot, err := uc.almacen.ComenzarEnvio(sessionID)
	if err != nil {
		return nil, err
	}

	slog.Info("envio validating", slog.String("sessionId", sessionID), slog.Int("lineas", len(snapshot.Lineas)))
	if infracciones := domain.ValidarSnapshot(snapshot, uc.resolutor); len(infracciones) > 0 {
		uc.almacen.TerminarEnvio(sessionID, false)
		slog.Warn("envio rejected by validation", slog.String("sessionId", sessionID), slog.Int("infracciones", len(infracciones)))
		return &ResultadoEnvio{Fase: FaseFallida, Infracciones: infracciones}, ErrBorradorInvalido
	}

	payload := domain.BuildPayload(snapshot)
	total := domain.Total(snapshot, uc.resolutor)
	slog.Info("envio submitting",
		slog.String("sessionId", sessionID),
		slog.String("idsPlatillo", payload.IDsPlatillo),
		slog.String("cantidades", payload.Cantidades),
		slog.String("total", total.StringFixed(2)),
	)

	var comanda *domain.Comanda
	if snapshot.CodigoComanda == "" {
		comanda, err = uc.gateway.CrearComanda(ctx, token, payload)
	} else {
		comanda, err = uc.gateway.ActualizarEstado(ctx, token, snapshot.CodigoComanda, snapshot.Estado)
	}
	if err != nil {
		uc.almacen.TerminarEnvio(sessionID, false)
		slog.Error("envio failed", slog.String("sessionId", sessionID), slog.Any("error", err))
		return &ResultadoEnvio{Fase: FaseFallida, Total: total}, err
	}

	uc.almacen.TerminarEnvio(sessionID, true)
	accion := "created"
	if snapshot.CodigoComanda != "" {
		accion = "updated"
	}
	uc.notificador.ComandaCambiada(accion, comanda)
	slog.Info("envio succeeded", slog.String("sessionId", sessionID), slog.String("codigo", comanda.Codigo), slog.String("accion", accion))
	return &ResultadoEnvio{Fase: FaseCompletada, Comanda: comanda, Total: total}, nil
}
