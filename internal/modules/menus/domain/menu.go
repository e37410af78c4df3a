package domain

import (
	"errors"
	"strings"

	"github.com/aresrc/gestion-pedidos-frontend/internal/shared/normalization"
)

var (
	ErrCategoriaVacia = errors.New("la categoría es obligatoria")
	ErrSinPlatillos   = errors.New("un menú necesita al menos un platillo")
)

// Menu agrupa platillos bajo una categoría, mantenido por un usuario.
type Menu struct {
	CodigoMenu string
	IDUsuario  int
	Categoria  string
	Platillos  []string
}

// Validar checks the fields a create or update must carry.
func (m Menu) Validar() error {
	if strings.TrimSpace(m.Categoria) == "" {
		return ErrCategoriaVacia
	}
	if len(m.Platillos) == 0 {
		return ErrSinPlatillos
	}
	return nil
}

// NormalizeMenu attempts to construct a Menu from an arbitrary map payload.
func NormalizeMenu(value any) (Menu, bool) {
	raw := normalization.MapFromPayload(value)
	if raw == nil {
		return Menu{}, false
	}
	codigo := normalization.AsString(raw["codigoMenu"])
	if codigo == "" {
		codigo = normalization.AsString(raw["codigo"])
	}
	if codigo == "" {
		return Menu{}, false
	}
	idUsuario := normalization.AsInt(raw["idUsuario"])
	if idUsuario == 0 {
		idUsuario = normalization.AsInt(raw["usuarioId"])
	}
	return Menu{
		CodigoMenu: codigo,
		IDUsuario:  idUsuario,
		Categoria:  normalization.AsString(raw["categoria"]),
		Platillos:  normalization.AsStringSlice(raw["platillos"]),
	}, true
}

// NormalizeMenus keeps every payload entry that normalizes into a valid Menu.
func NormalizeMenus(items []any) []Menu {
	result := make([]Menu, 0, len(items))
	for _, item := range items {
		if menu, ok := NormalizeMenu(item); ok {
			result = append(result, menu)
		}
	}
	return result
}
