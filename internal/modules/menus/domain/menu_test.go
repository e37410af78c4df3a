package domain

import (
	"errors"
	"testing"
)

func TestValidar(t *testing.T) {
	casos := []struct {
		nombre string
		menu   Menu
		err    error
	}{
		{"completo", Menu{Categoria: "Criollos", Platillos: []string{"PLT-7"}}, nil},
		{"categoría vacía", Menu{Platillos: []string{"PLT-7"}}, ErrCategoriaVacia},
		{"categoría en blanco", Menu{Categoria: "   ", Platillos: []string{"PLT-7"}}, ErrCategoriaVacia},
		{"sin platillos", Menu{Categoria: "Criollos"}, ErrSinPlatillos},
		{"platillos vacíos", Menu{Categoria: "Criollos", Platillos: []string{}}, ErrSinPlatillos},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			if err := c.menu.Validar(); !errors.Is(err, c.err) {
				t.Fatalf("Validar() = %v, esperaba %v", err, c.err)
			}
		})
	}
}

func TestNormalizeMenu(t *testing.T) {
	menu, ok := NormalizeMenu(map[string]any{
		"codigoMenu": "MNU-001",
		"idUsuario":  float64(3),
		"categoria":  "Criollos",
		"platillos":  []any{"PLT-7", "PLT-3"},
	})
	if !ok {
		t.Fatal("menú válido rechazado")
	}
	if menu.CodigoMenu != "MNU-001" || menu.IDUsuario != 3 || menu.Categoria != "Criollos" {
		t.Fatalf("menú mal normalizado: %+v", menu)
	}
	if len(menu.Platillos) != 2 || menu.Platillos[0] != "PLT-7" {
		t.Fatalf("platillos mal normalizados: %v", menu.Platillos)
	}
}

func TestNormalizeMenuClavesAlternas(t *testing.T) {
	menu, ok := NormalizeMenu(map[string]any{
		"codigo":    "MNU-002",
		"usuarioId": float64(9),
	})
	if !ok {
		t.Fatal("claves alternas rechazadas")
	}
	if menu.CodigoMenu != "MNU-002" || menu.IDUsuario != 9 {
		t.Fatalf("claves alternas mal leídas: %+v", menu)
	}
}

func TestNormalizeMenuSinCodigo(t *testing.T) {
	if _, ok := NormalizeMenu(map[string]any{"categoria": "Criollos"}); ok {
		t.Fatal("menú sin código aceptado")
	}
}

func TestNormalizeMenusDescartaInvalidos(t *testing.T) {
	menus := NormalizeMenus([]any{
		map[string]any{"codigoMenu": "MNU-001", "categoria": "Criollos"},
		map[string]any{"categoria": "sin código"},
		42,
		map[string]any{"codigoMenu": "MNU-002"},
	})
	if len(menus) != 2 {
		t.Fatalf("esperaba 2 menús, obtuve %d", len(menus))
	}
}
