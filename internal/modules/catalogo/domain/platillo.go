package domain

import (
	"github.com/shopspring/decimal"

	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/normalization"
)

// Platillo es una entrada del catálogo de platos, inmutable una vez cargada.
type Platillo struct {
	ID        int
	Codigo    string
	Nombre    string
	Detalle   string
	Precio    decimal.Decimal
	ImagenURL string
}

// NormalizePlatillo attempts to construct a Platillo from an arbitrary map payload.
func NormalizePlatillo(raw map[string]any) (Platillo, bool) {
	id := normalization.AsInt(raw["idPlatillo"])
	if id == 0 {
		id = normalization.AsInt(raw["id"])
	}
	if id == 0 {
		return Platillo{}, false
	}
	precio := normalization.AsDecimal(raw["precio"])
	if precio.IsNegative() {
		return Platillo{}, false
	}
	return Platillo{
		ID:        id,
		Codigo:    normalization.AsString(raw["codigoPlatillo"]),
		Nombre:    normalization.AsString(raw["nombre"]),
		Detalle:   normalization.AsString(raw["detalle"]),
		Precio:    precio,
		ImagenURL: normalization.AsString(raw["imagenUrl"]),
	}, true
}

// NormalizePlatillos keeps every payload entry that normalizes into a valid Platillo.
func NormalizePlatillos(items []any) []Platillo {
	result := make([]Platillo, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if platillo, ok := NormalizePlatillo(raw); ok {
			result = append(result, platillo)
		}
	}
	return result
}
