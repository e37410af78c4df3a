package domain

import "strings"

// EstadoComanda represents the lifecycle of a comanda as exposed by the REST API.
type EstadoComanda string

const (
	EstadoDesconocido EstadoComanda = ""
	EstadoPendiente   EstadoComanda = "Pendiente"
	EstadoPreparando  EstadoComanda = "Preparando"
	EstadoListo       EstadoComanda = "Listo"
	EstadoServido     EstadoComanda = "Servido"
	EstadoCancelada   EstadoComanda = "Cancelada"
)

var estadosComanda = map[string]EstadoComanda{
	"pendiente":  EstadoPendiente,
	"preparando": EstadoPreparando,
	"listo":      EstadoListo,
	"servido":    EstadoServido,
	"cancelada":  EstadoCancelada,
	// Valores de variantes anteriores del backend, plegados al conjunto canónico.
	"en_preparacion": EstadoPreparando,
	"en_preparación": EstadoPreparando,
	"entregado":      EstadoServido,
}

// EstadosComanda lists the canonical states a draft may choose from.
func EstadosComanda() []EstadoComanda {
	return []EstadoComanda{EstadoPendiente, EstadoPreparando, EstadoListo, EstadoServido, EstadoCancelada}
}

// NormalizeEstadoComanda returns the canonical state for the given input.
// Unknown inbound values are trimmed and preserved to avoid data loss.
func NormalizeEstadoComanda(value any) EstadoComanda {
	s, ok := value.(string)
	if !ok {
		return EstadoDesconocido
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return EstadoDesconocido
	}
	if estado, ok := estadosComanda[strings.ToLower(trimmed)]; ok {
		return estado
	}
	return EstadoComanda(trimmed)
}

// EsCanonico reports whether the state belongs to the canonical enumeration,
// i.e. whether a draft or an estado update may carry it.
func (e EstadoComanda) EsCanonico() bool {
	for _, estado := range EstadosComanda() {
		if e == estado {
			return true
		}
	}
	return false
}
