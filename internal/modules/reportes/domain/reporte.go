package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/normalization"
)

var (
	ErrFechaInvalida   = errors.New("la fecha debe tener formato AAAA-MM-DD")
	ErrRangoInvertido  = errors.New("la fecha de inicio debe ser anterior o igual a la de fin")
	ErrRangoIncompleto = errors.New("inicio y fin son obligatorios")
)

// RangoFechas acota un reporte a un intervalo cerrado de días.
type RangoFechas struct {
	Inicio time.Time
	Fin    time.Time
}

// NuevoRangoFechas parses and validates an ISO date pair.
func NuevoRangoFechas(inicio, fin string) (RangoFechas, error) {
	inicio = strings.TrimSpace(inicio)
	fin = strings.TrimSpace(fin)
	if inicio == "" || fin == "" {
		return RangoFechas{}, ErrRangoIncompleto
	}
	desde, err := time.Parse("2006-01-02", inicio)
	if err != nil {
		return RangoFechas{}, ErrFechaInvalida
	}
	hasta, err := time.Parse("2006-01-02", fin)
	if err != nil {
		return RangoFechas{}, ErrFechaInvalida
	}
	if desde.After(hasta) {
		return RangoFechas{}, ErrRangoInvertido
	}
	return RangoFechas{Inicio: desde, Fin: hasta}, nil
}

// Resumen condensa las ventas del rango consultado.
type Resumen struct {
	TotalVentas       decimal.Decimal
	PlatoMasVendido   string
	PlatoMenosVendido string
	FechaInicio       string
	FechaFin          string
}

// NormalizeResumen builds a Resumen from a decoded API payload.
func NormalizeResumen(value any) (Resumen, bool) {
	raw := normalization.MapFromPayload(value)
	if raw == nil {
		return Resumen{}, false
	}
	return Resumen{
		TotalVentas:       normalization.AsDecimal(raw["totalVentas"]),
		PlatoMasVendido:   normalization.AsString(raw["platoMasVendido"]),
		PlatoMenosVendido: normalization.AsString(raw["platoMenosVendido"]),
		FechaInicio:       normalization.AsString(raw["fechaInicio"]),
		FechaFin:          normalization.AsString(raw["fechaFin"]),
	}, true
}

// Venta es una fila del reporte detallado de ventas.
type Venta struct {
	CodigoComprobante string
	CodigoComanda     string
	TotalVenta        decimal.Decimal
	IDUsuario         int
}

// NormalizeVenta attempts to construct a Venta from an arbitrary map payload.
func NormalizeVenta(value any) (Venta, bool) {
	raw := normalization.MapFromPayload(value)
	if raw == nil {
		return Venta{}, false
	}
	comprobante := normalization.AsString(raw["codigoComprobante"])
	comanda := normalization.AsString(raw["codigoComanda"])
	if comanda == "" {
		comanda = normalization.AsString(raw["codigo"])
	}
	if comprobante == "" && comanda == "" {
		return Venta{}, false
	}
	idUsuario := normalization.AsInt(raw["idUsuario"])
	if idUsuario == 0 {
		idUsuario = normalization.AsInt(raw["usuarioId"])
	}
	total := normalization.AsDecimal(raw["totalVenta"])
	if total.IsZero() {
		total = normalization.AsDecimal(raw["total"])
	}
	return Venta{
		CodigoComprobante: comprobante,
		CodigoComanda:     comanda,
		TotalVenta:        total,
		IDUsuario:         idUsuario,
	}, true
}

// NormalizeVentas keeps every payload entry that normalizes into a valid Venta.
func NormalizeVentas(items []any) []Venta {
	result := make([]Venta, 0, len(items))
	for _, item := range items {
		if venta, ok := NormalizeVenta(item); ok {
			result = append(result, venta)
		}
	}
	return result
}
