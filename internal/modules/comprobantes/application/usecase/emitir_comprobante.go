package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	comandaport "github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/application/port"
	comandas "github.com/aresrc/gestion-pedidos-frontend/internal/modules/comandas/domain"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comprobantes/application/port"
	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comprobantes/domain"
)

var (
	ErrComandaNoServida = errors.New("solo una comanda servida admite comprobante")
	ErrDatosInvalidos   = errors.New("datos fiscales inválidos")
	ErrCodigoVacio      = errors.New("missing comanda code")
)

// EmitirComprobanteUseCase emite boletas y facturas sobre comandas servidas.
// La comanda se relee del backend justo antes de emitir para no facturar
// sobre un estado obsoleto.
type EmitirComprobanteUseCase struct {
	comprobantes port.ComprobanteGateway
	comandas     comandaport.ComandaGateway
	reloj        func() time.Time
}

func NewEmitirComprobanteUseCase(comprobantes port.ComprobanteGateway, gateway comandaport.ComandaGateway) *EmitirComprobanteUseCase {
	return &EmitirComprobanteUseCase{
		comprobantes: comprobantes,
		comandas:     gateway,
		reloj:        time.Now,
	}
}

// Emision agrupa la entrada del operador.
type Emision struct {
	CodigoComanda string
	Tipo          domain.TipoComprobante
	Datos         domain.DatosCliente
}

// ResultadoEmision reporta el documento emitido o las infracciones fiscales.
type ResultadoEmision struct {
	Comprobante  *domain.Comprobante
	Infracciones []domain.Infraccion
}

func (uc *EmitirComprobanteUseCase) Emitir(ctx context.Context, token string, emision Emision) (*ResultadoEmision, error) {
	codigo := strings.TrimSpace(emision.CodigoComanda)
	if codigo == "" {
		return nil, ErrCodigoVacio
	}

	if infracciones := domain.ValidarDatos(emision.Tipo, emision.Datos); len(infracciones) > 0 {
		slog.Warn("emision rejected", slog.String("codigoComanda", codigo), slog.Int("infracciones", len(infracciones)))
		return &ResultadoEmision{Infracciones: infracciones}, ErrDatosInvalidos
	}

	comanda, err := uc.comandas.ObtenerComanda(ctx, token, codigo)
	if err != nil {
		slog.Error("emision comanda fetch failed", slog.String("codigoComanda", codigo), slog.Any("error", err))
		return nil, err
	}
	if comanda.Estado != comandas.EstadoServido {
		return nil, fmt.Errorf("%w: comanda %s en estado %q", ErrComandaNoServida, codigo, string(comanda.Estado))
	}

	fecha, hora := domain.FechaHoraEmision(uc.reloj().UTC())
	wire := port.EmisionComprobante{
		CodigoComanda: codigo,
		Tipo:          emision.Tipo,
		FechaEmision:  fecha,
		HoraEmision:   hora,
		Total:         comanda.Total.StringFixed(2),
	}
	switch emision.Tipo {
	case domain.TipoBoleta:
		wire.DatosCliente = port.DatosClienteWire{
			DNI:    strings.TrimSpace(emision.Datos.DNI),
			Nombre: strings.TrimSpace(emision.Datos.Nombre),
		}
	case domain.TipoFactura:
		wire.DatosCliente = port.DatosClienteWire{
			RUC:         strings.TrimSpace(emision.Datos.RUC),
			RazonSocial: strings.TrimSpace(emision.Datos.RazonSocial),
			Direccion:   strings.TrimSpace(emision.Datos.Direccion),
		}
	}

	comprobante, err := uc.comprobantes.EmitirComprobante(ctx, token, wire)
	if err != nil {
		slog.Error("emision failed", slog.String("codigoComanda", codigo), slog.String("tipo", string(emision.Tipo)), slog.Any("error", err))
		return nil, err
	}
	slog.Info("comprobante emitido",
		slog.String("codigoComanda", codigo),
		slog.String("tipo", string(emision.Tipo)),
		slog.String("total", wire.Total),
	)
	return &ResultadoEmision{Comprobante: comprobante}, nil
}

func (uc *EmitirComprobanteUseCase) Listar(ctx context.Context, token string) ([]domain.Comprobante, error) {
	comprobantes, err := uc.comprobantes.ListarComprobantes(ctx, token)
	if err != nil {
		slog.Error("comprobantes list failed", slog.Any("error", err))
		return nil, err
	}
	return comprobantes, nil
}
