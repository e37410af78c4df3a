package domain

import (
	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/normalization"
)

// Usuario es un cliente o miembro del personal referenciado por una comanda.
type Usuario struct {
	ID     int
	Nombre string
	Roles  []string
}

// NormalizeUsuario attempts to construct a Usuario from an arbitrary map payload.
func NormalizeUsuario(raw map[string]any) (Usuario, bool) {
	id := normalization.AsInt(raw["idUsuario"])
	if id == 0 {
		id = normalization.AsInt(raw["id"])
	}
	if id == 0 {
		return Usuario{}, false
	}
	return Usuario{
		ID:     id,
		Nombre: normalization.AsString(raw["nombre"]),
		Roles:  normalization.AsStringSlice(raw["roles"]),
	}, true
}

// NormalizeUsuarios keeps every payload entry that normalizes into a valid Usuario.
func NormalizeUsuarios(items []any) []Usuario {
	result := make([]Usuario, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if usuario, ok := NormalizeUsuario(raw); ok {
			result = append(result, usuario)
		}
	}
	return result
}
