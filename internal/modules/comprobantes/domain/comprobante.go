package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/normalization"
)

// TipoComprobante distingue los dos documentos de venta emitibles.
type TipoComprobante string

const (
	TipoBoleta  TipoComprobante = "BOLETA"
	TipoFactura TipoComprobante = "FACTURA"
)

// NormalizeTipoComprobante folds case and spacing into the canonical pair.
func NormalizeTipoComprobante(value any) (TipoComprobante, bool) {
	switch strings.ToUpper(normalization.AsString(value)) {
	case "BOLETA":
		return TipoBoleta, true
	case "FACTURA":
		return TipoFactura, true
	default:
		return "", false
	}
}

// DatosCliente carga los campos fiscales del receptor. Boleta usa DNI y
// Nombre; Factura usa RUC, RazonSocial y Direccion. Las ramas son excluyentes.
type DatosCliente struct {
	DNI    string
	Nombre string

	RUC         string
	RazonSocial string
	Direccion   string
}

// Comprobante es el documento emitido sobre una comanda servida.
type Comprobante struct {
	Codigo        string
	CodigoComanda string
	Tipo          TipoComprobante
	FechaEmision  string
	HoraEmision   string
	Total         decimal.Decimal
	Datos         DatosCliente
}

// NormalizeComprobante attempts to construct a Comprobante from an arbitrary
// map payload. A payload without identity is rejected.
func NormalizeComprobante(value any) (Comprobante, bool) {
	raw := normalization.MapFromPayload(value)
	if raw == nil {
		return Comprobante{}, false
	}
	codigo := normalization.AsString(raw["codigoComprobante"])
	if codigo == "" {
		codigo = normalization.AsString(raw["codigo"])
	}
	comprobante := Comprobante{
		Codigo:        codigo,
		CodigoComanda: normalization.AsString(raw["codigoComanda"]),
		FechaEmision:  normalization.AsString(raw["fechaEmision"]),
		HoraEmision:   normalization.AsString(raw["horaEmision"]),
		Total:         normalization.AsDecimal(raw["total"]),
	}
	if tipo, ok := NormalizeTipoComprobante(raw["tipo"]); ok {
		comprobante.Tipo = tipo
	}
	if datos := normalization.MapFromPayload(raw["datosCliente"]); datos != nil {
		comprobante.Datos = DatosCliente{
			DNI:         normalization.AsString(datos["dni"]),
			Nombre:      normalization.AsString(datos["nombre"]),
			RUC:         normalization.AsString(datos["ruc"]),
			RazonSocial: normalization.AsString(datos["razonSocial"]),
			Direccion:   normalization.AsString(datos["direccion"]),
		}
	}
	if comprobante.Codigo == "" && comprobante.CodigoComanda == "" {
		return Comprobante{}, false
	}
	return comprobante, true
}

// FechaHoraEmision formats an emission instant into the wire date and time pair.
func FechaHoraEmision(t time.Time) (string, string) {
	return t.Format("2006-01-02"), t.Format("15:04:05")
}
