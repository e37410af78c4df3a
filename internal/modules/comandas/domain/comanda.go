package domain

import (
	"github.com/shopspring/decimal"

	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/normalization"
)

// Comanda es una orden ya registrada en el backend, tal como la devuelven las
// rutas de consulta.
type Comanda struct {
	Codigo      string
	NumMesa     int
	FechaPedido string
	HoraPedido  string
	Estado      EstadoComanda
	Total       decimal.Decimal
	Items       []ComandaItem
}

// ComandaItem es una línea de una comanda registrada.
type ComandaItem struct {
	IDPlatillo     int
	NombrePlatillo string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// NormalizeComanda attempts to construct a Comanda from an arbitrary map payload.
func NormalizeComanda(raw map[string]any) (Comanda, bool) {
	codigo := normalization.AsString(raw["codigoComanda"])
	if codigo == "" {
		codigo = normalization.AsString(raw["codigo"])
	}
	if codigo == "" {
		return Comanda{}, false
	}
	numMesa := normalization.AsInt(raw["numMesa"])
	if numMesa == 0 {
		numMesa = normalization.AsInt(raw["mesaId"])
	}
	comanda := Comanda{
		Codigo:      codigo,
		NumMesa:     numMesa,
		FechaPedido: normalization.AsString(raw["fechaPedido"]),
		HoraPedido:  normalization.AsString(raw["horaPedido"]),
		Estado:      NormalizeEstadoComanda(raw["estado"]),
		Total:       normalization.AsDecimal(raw["total"]),
	}
	for _, item := range normalization.AsInterfaceSlice(raw["items"]) {
		rawItem, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if normalized, ok := NormalizeComandaItem(rawItem); ok {
			comanda.Items = append(comanda.Items, normalized)
		}
	}
	return comanda, true
}

// NormalizeComandaItem attempts to construct a ComandaItem from a map payload.
func NormalizeComandaItem(raw map[string]any) (ComandaItem, bool) {
	id := normalization.AsInt(raw["idPlatillo"])
	if id == 0 {
		return ComandaItem{}, false
	}
	return ComandaItem{
		IDPlatillo:     id,
		NombrePlatillo: normalization.AsString(raw["nombrePlatillo"]),
		Cantidad:       normalization.AsInt(raw["cantidad"]),
		PrecioUnitario: normalization.AsDecimal(raw["precioUnitario"]),
		Subtotal:       normalization.AsDecimal(raw["subtotal"]),
	}, true
}

// NormalizeComandas keeps every payload entry that normalizes into a valid Comanda.
func NormalizeComandas(items []any) []Comanda {
	result := make([]Comanda, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if comanda, ok := NormalizeComanda(raw); ok {
			result = append(result, comanda)
		}
	}
	return result
}
