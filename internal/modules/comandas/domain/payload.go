package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Payload es la forma plana que espera el backend en POST /api/comandas: las
// selecciones multi-valor viajan como listas paralelas separadas por comas,
// no como estructuras anidadas. El orden sigue la inserción en el borrador.
type Payload struct {
	ClienteID   int    `json:"cliente_id"`
	MeseroID    int    `json:"mesero_id"`
	MesaID      int    `json:"mesa_id"`
	Estado      string `json:"estado"`
	IDsPlatillo string `json:"ids_platillo"`
	Cantidades  string `json:"cantidades"`
}

// BuildPayload flattens a validated snapshot into the wire shape. Numeric
// coercion happens here and nowhere earlier.
func BuildPayload(s Snapshot) Payload {
	ids := make([]string, 0, len(s.Lineas))
	cantidades := make([]string, 0, len(s.Lineas))
	for _, linea := range s.Lineas {
		ids = append(ids, strconv.Itoa(linea.IDPlatillo))
		cantidades = append(cantidades, strconv.Itoa(linea.Cantidad))
	}
	return Payload{
		ClienteID:   s.ClienteID,
		MeseroID:    s.MeseroID,
		MesaID:      s.MesaID,
		Estado:      string(s.Estado),
		IDsPlatillo: strings.Join(ids, ","),
		Cantidades:  strings.Join(cantidades, ","),
	}
}

// Total computes Σ cantidad × precio over the snapshot lines at submission
// time. Unresolvable platillos contribute nothing; validation rejects them
// before this runs.
func Total(s Snapshot, resolutor Resolutor) decimal.Decimal {
	total := decimal.Zero
	for _, linea := range s.Lineas {
		platillo, ok := resolutor.Platillo(linea.IDPlatillo)
		if !ok {
			continue
		}
		total = total.Add(platillo.Precio.Mul(decimal.NewFromInt(int64(linea.Cantidad))))
	}
	return total
}
