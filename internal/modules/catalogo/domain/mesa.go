package domain

import (
	"strings"

	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/normalization"
)

// EstadoMesa represents the availability of a table as exposed by the REST API.
type EstadoMesa string

const (
	EstadoMesaDesconocido EstadoMesa = ""
	EstadoMesaDisponible  EstadoMesa = "Disponible"
	EstadoMesaOcupada     EstadoMesa = "Ocupada"
	EstadoMesaReservada   EstadoMesa = "Reservada"
)

var estadosMesa = map[string]EstadoMesa{
	"disponible": EstadoMesaDisponible,
	"ocupada":    EstadoMesaOcupada,
	"reservada":  EstadoMesaReservada,
}

// NormalizeEstadoMesa returns the canonical EstadoMesa for the given input.
// Unknown statuses are trimmed and returned as-is to avoid data loss.
func NormalizeEstadoMesa(value any) EstadoMesa {
	s, ok := value.(string)
	if !ok {
		return EstadoMesaDesconocido
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return EstadoMesaDesconocido
	}
	if estado, ok := estadosMesa[strings.ToLower(trimmed)]; ok {
		return estado
	}
	return EstadoMesa(trimmed)
}

// Mesa es una mesa física del restaurante.
type Mesa struct {
	ID        int
	Numero    int
	Capacidad int
	Estado    EstadoMesa
}

// Disponible reports whether the table can be assigned to a new comanda.
func (m Mesa) Disponible() bool {
	return m.Estado == EstadoMesaDisponible
}

// NormalizeMesa attempts to construct a Mesa from an arbitrary map payload.
func NormalizeMesa(raw map[string]any) (Mesa, bool) {
	id := normalization.AsInt(raw["idMesa"])
	if id == 0 {
		id = normalization.AsInt(raw["id"])
	}
	if id == 0 {
		return Mesa{}, false
	}
	return Mesa{
		ID:        id,
		Numero:    normalization.AsInt(raw["numero"]),
		Capacidad: normalization.AsInt(raw["capacidad"]),
		Estado:    NormalizeEstadoMesa(raw["estado"]),
	}, true
}

// NormalizeMesas keeps every payload entry that normalizes into a valid Mesa.
func NormalizeMesas(items []any) []Mesa {
	result := make([]Mesa, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if mesa, ok := NormalizeMesa(raw); ok {
			result = append(result, mesa)
		}
	}
	return result
}
