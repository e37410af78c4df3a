package port

import (
	"context"

	"github.com/aresrc/gestion-pedidos-frontend/internal/modules/comprobantes/domain"
)

// EmisionComprobante es el cuerpo que el backend espera al emitir.
type EmisionComprobante struct {
	CodigoComanda string                 `json:"codigoComanda"`
	Tipo          domain.TipoComprobante `json:"tipo"`
	FechaEmision  string                 `json:"fechaEmision"`
	HoraEmision   string                 `json:"horaEmision"`
	Total         string                 `json:"total"`
	DatosCliente  DatosClienteWire       `json:"datosCliente"`
}

// DatosClienteWire serializa solo los campos de la rama elegida.
type DatosClienteWire struct {
	DNI         string `json:"dni,omitempty"`
	Nombre      string `json:"nombre,omitempty"`
	RUC         string `json:"ruc,omitempty"`
	RazonSocial string `json:"razonSocial,omitempty"`
	Direccion   string `json:"direccion,omitempty"`
}

// ComprobanteGateway habla con el backend de comprobantes.
type ComprobanteGateway interface {
	EmitirComprobante(ctx context.Context, token string, emision EmisionComprobante) (*domain.Comprobante, error)
	ListarComprobantes(ctx context.Context, token string) ([]domain.Comprobante, error)
}
